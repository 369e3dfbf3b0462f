package auth

import "errors"

var (
	ErrTokenIssue = errors.New("failed to issue token")
)
