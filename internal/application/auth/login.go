package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/shelbymodels/auth-service/internal/domain"
)

type LoginResult struct {
	Account   domain.Account
	Token     string
	ExpiresIn int64 // seconds
}

// Login verifies credentials and mints a bearer token.
// IMPORTANT: must not leak whether the email exists (avoid user
// enumeration): unknown email and wrong password return the same error.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || password == "" {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	a, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) && de.Kind == domain.KindInfrastructure {
			// Store outage is not a credential failure; surface it as such.
			return LoginResult{}, err
		}
		// Hide not-found behind invalid credentials.
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	if err := s.hasher.Compare(a.PasswordHash, password); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	token, err := s.issuer.Issue(a)
	if err != nil {
		// Signing only fails on misconfiguration; not retryable per request.
		return LoginResult{}, err
	}

	s.audit("account_logged_in", map[string]string{
		"account_id": a.ID,
	})

	return LoginResult{
		Account:   a,
		Token:     token,
		ExpiresIn: int64(s.accessTTL.Seconds()),
	}, nil
}
