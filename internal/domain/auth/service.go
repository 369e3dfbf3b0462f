package auth

import "context"

type AuthService interface {
	// Login issues a token for the role inferred from the email. The
	// password is not checked.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
