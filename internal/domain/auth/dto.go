package auth

import (
	"strings"

	"github.com/synczenith/synczenith-backend-go/internal/pkg/validator"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleHR         Role = "hr"
	RoleAccountant Role = "accountant"
	RoleEmployee   Role = "employee"
)

// RoleRule maps an email prefix to a role.
type RoleRule struct {
	Prefix string
	Role   Role
}

// RoleRules are evaluated in order; the first matching prefix wins and
// RoleEmployee applies when none match.
var RoleRules = []RoleRule{
	{Prefix: "admin", Role: RoleAdmin},
	{Prefix: "hr", Role: RoleHR},
	{Prefix: "acct", Role: RoleAccountant},
	{Prefix: "employee", Role: RoleEmployee},
}

// RoleForEmail infers the role from the email prefix.
func RoleForEmail(email string) Role {
	for _, rule := range RoleRules {
		if strings.HasPrefix(email, rule.Prefix) {
			return rule.Role
		}
	}
	return RoleEmployee
}

// Redirect is the landing page for a role.
func (r Role) Redirect() string {
	switch r {
	case RoleAdmin, RoleHR, RoleAccountant:
		return "/admin"
	default:
		return "/employee"
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs.Add("email", "is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "must be a valid email address")
	}
	if r.Password == "" {
		errs.Add("password", "is required")
	}

	return errs.Err()
}

type LoginResponse struct {
	Token    string `json:"token"`
	Role     Role   `json:"role"`
	Redirect string `json:"redirect"`
}
