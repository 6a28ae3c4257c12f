package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/shelbymodels/auth-service/internal/domain"
)

type RegisterResult struct {
	Account domain.Account
}

// Register creates one account or nothing: the raw password is hashed
// before anything is persisted, and the repo's atomic insert enforces
// email uniqueness. The plaintext is never retained past hashing.
func (s *Service) Register(ctx context.Context, email, password string) (RegisterResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" {
		return RegisterResult{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return RegisterResult{}, domain.ErrMissingField("password")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return RegisterResult{}, domain.ErrHashFailed(err)
	}

	a := domain.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		ProfileType:  domain.ProfileTypeStandard,
	}

	created, err := s.accounts.Create(ctx, a)
	if err != nil {
		return RegisterResult{}, err
	}

	s.audit("account_registered", map[string]string{
		"account_id": created.ID,
		"email":      created.Email,
	})

	// Best-effort: the email-service picks this up for the welcome mail.
	// A broker outage must not undo a committed registration.
	if s.pub != nil {
		_ = s.pub.PublishAccountRegistered(ctx, AccountRegisteredEvent{
			AccountID: created.ID,
			Email:     created.Email,
		})
	}

	return RegisterResult{Account: created}, nil
}
