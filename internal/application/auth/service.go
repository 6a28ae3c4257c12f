package auth

import (
	"time"
)

// Service is the single orchestration point for registration and login.
// It owns no mutable state between calls; concurrency correctness is
// delegated to the AccountRepo's uniqueness guarantee.
type Service struct {
	accounts AccountRepo
	hasher   PasswordHasher
	issuer   TokenIssuer
	pub      EventPublisher

	accessTTL time.Duration
	audit     func(action string, fields map[string]string)
}

type Config struct {
	AccessTTL time.Duration
}

func NewService(
	accounts AccountRepo,
	hasher PasswordHasher,
	issuer TokenIssuer,
	pub EventPublisher,
	cfg Config,
) *Service {
	ttl := cfg.AccessTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Service{
		accounts:  accounts,
		hasher:    hasher,
		issuer:    issuer,
		pub:       pub,
		accessTTL: ttl,
		audit:     func(string, map[string]string) {},
	}
}

func (s *Service) WithAudit(fn func(action string, fields map[string]string)) *Service {
	if fn != nil {
		s.audit = fn
	}
	return s
}
