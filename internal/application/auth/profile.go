package auth

import (
	"context"
	"strings"

	"github.com/shelbymodels/auth-service/internal/domain"
)

// GetAccountByID serves the authenticated profile read (/me).
func (s *Service) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Account{}, domain.ErrMissingField("id")
	}
	return s.accounts.GetByID(ctx, id)
}
