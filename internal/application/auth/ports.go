package auth

import (
	"context"
	"time"

	"github.com/shelbymodels/auth-service/internal/domain"
)

/*
AccountRepo
-----------
Persistence port for accounts.
Only describes WHAT the auth service needs, not HOW it's stored.

Create must enforce email uniqueness atomically (unique index, insert-or-
fail): concurrent registrations of the same email yield exactly one success
and email_already_exists for the rest. The repo assigns nothing; the
caller supplies the id.
*/
type AccountRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.Account, error)
	GetByID(ctx context.Context, id string) (domain.Account, error)
	Create(ctx context.Context, a domain.Account) (domain.Account, error)
}

/*
PasswordHasher
--------------
Abstracts bcrypt / argon2.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenIssuer
-----------
Mints and verifies the bearer token (JWT).
Used by the service on login and by the auth middleware on protected
routes; both sides share one implementation so issuance and verification
can never disagree on algorithm, key, issuer, or audience.
*/
type TokenClaims struct {
	AccountID string
	Email     string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type TokenIssuer interface {
	Issue(account domain.Account) (token string, err error)
	Verify(token string) (TokenClaims, error)
}

/*
EventPublisher
--------------
Publishes account lifecycle events to the message broker. The
email-service consumes them; auth never sends mail itself. Publishing is
best-effort: a broker outage must not fail registration.
*/
type EventPublisher interface {
	PublishAccountRegistered(ctx context.Context, evt AccountRegisteredEvent) error
}

type AccountRegisteredEvent struct {
	AccountID string
	Email     string
}
