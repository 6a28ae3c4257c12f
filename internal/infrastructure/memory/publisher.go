package memory

import (
	"context"
	"log"

	"github.com/shelbymodels/auth-service/internal/application/auth"
)

type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (p *NoopPublisher) PublishAccountRegistered(ctx context.Context, evt auth.AccountRegisteredEvent) error {
	log.Printf("[noop-pub] account registered: account_id=%s email=%s", evt.AccountID, evt.Email)
	return nil
}
