package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/synczenith/synczenith-backend-go/internal/domain/auth"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	jwt.Service
}

func NewAuthService(jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		Service: jwtService,
	}
}

// Login trusts the email: there are no stored credentials to check the
// password against.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.LoginResponse, error) {
	loginReq.Email = strings.TrimSpace(loginReq.Email)
	if err := loginReq.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	role := auth.RoleForEmail(loginReq.Email)

	token, _, err := a.Service.GenerateAccessToken(loginReq.Email, role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("%w: %v", auth.ErrTokenIssue, err)
	}

	slog.Info("User logged in", "email", loginReq.Email, "role", role)

	return auth.LoginResponse{
		Token:    token,
		Role:     role,
		Redirect: role.Redirect(),
	}, nil
}
