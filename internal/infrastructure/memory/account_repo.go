package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shelbymodels/auth-service/internal/domain"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AccountRepo is the dev/test credential store. It enforces the same
// contract as Postgres: one account per lower-cased email, insert-or-fail
// under the lock so concurrent registrations see exactly one winner.
type AccountRepo struct {
	mu      sync.RWMutex
	byID    map[string]domain.Account
	byEmail map[string]string // email -> account ID
}

func NewAccountRepo() *AccountRepo {
	return &AccountRepo{
		byID:    make(map[string]domain.Account),
		byEmail: make(map[string]string),
	}
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound()
	}
	return r.byID[id], nil
}

func (r *AccountRepo) GetByID(ctx context.Context, id string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound()
	}
	return a, nil
}

func (r *AccountRepo) Create(ctx context.Context, a domain.Account) (domain.Account, error) {
	a.Email = normalizeEmail(a.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[a.Email]; exists {
		return domain.Account{}, domain.ErrEmailAlreadyExists()
	}

	// ID should already be set by the service; be defensive.
	if a.ID == "" {
		return domain.Account{}, domain.ErrInternal(nil)
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	r.byID[a.ID] = a
	r.byEmail[a.Email] = a.ID
	return a, nil
}
