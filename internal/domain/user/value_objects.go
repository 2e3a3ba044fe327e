package user

import (
	"regexp"
	"strings"

	"storefront-orders/internal/pkg/errs"
)

var (
	ErrInvalidEmail = errs.NewKind(errs.ErrValidation, "invalid email format")
	ErrInvalidRole  = errs.NewKind(errs.ErrUnauthorized, "invalid role")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is compared case-insensitively; the normalised form is lower case.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) Equal(other string) bool {
	return strings.EqualFold(e.value, strings.TrimSpace(other))
}
