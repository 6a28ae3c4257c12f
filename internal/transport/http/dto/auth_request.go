package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shelbymodels/auth-service/internal/domain"
)

// -------- Core auth --------

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72,password_strength"`
}

func (r *RegisterRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)

	if err := validate.Struct(r); err != nil {
		return mapValidationError(err, "password requirements: min 8 chars, upper, lower, digit")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)

	if err := validate.Struct(r); err != nil {
		return mapValidationError(err, "")
	}
	return nil
}

// mapValidationError converts validator errors into the domain taxonomy.
// Only the first failing field is reported; the client fixes one thing at
// a time anyway.
func mapValidationError(err error, passwordHint string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.ErrInvalidField("body", "invalid")
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return domain.ErrMissingField(field)
	case "email":
		return domain.ErrInvalidField(field, "invalid format")
	case "min", "max", "password_strength":
		if field == "password" {
			return domain.ErrWeakPassword(passwordHint)
		}
		return domain.ErrInvalidField(field, fe.Tag())
	default:
		return domain.ErrInvalidField(field, fe.Tag())
	}
}
