package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/shelbymodels/auth-service/internal/application/auth"
	"github.com/shelbymodels/auth-service/internal/domain"
)

// CachedAccountRepo is a read-through cache for GetByID (the /me profile
// read). GetByEmail and Create pass straight through: credential checks
// must always hit the source of truth, and accounts are immutable once
// created so the id-keyed entries never go stale within their TTL.
//
// The password hash is stripped before caching; it never leaves the
// primary store.
type CachedAccountRepo struct {
	inner auth.AccountRepo
	rdb   *goredis.Client
	ttl   time.Duration

	keyPrefix string
}

type cachedAccount struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	DisplayName      string    `json:"display_name"`
	ProfileType      string    `json:"profile_type"`
	Languages        string    `json:"languages"`
	Nationality      string    `json:"nationality"`
	OutcallAvailable bool      `json:"outcall_available"`
	IncallAvailable  bool      `json:"incall_available"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewCachedAccountRepo(inner auth.AccountRepo, c *Client, ttl time.Duration) *CachedAccountRepo {
	var rdb *goredis.Client
	if c != nil {
		rdb = c.rdb
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedAccountRepo{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		keyPrefix: "acct:",
	}
}

func (r *CachedAccountRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.inner.GetByEmail(ctx, email)
}

func (r *CachedAccountRepo) Create(ctx context.Context, a domain.Account) (domain.Account, error) {
	return r.inner.Create(ctx, a)
}

func (r *CachedAccountRepo) GetByID(ctx context.Context, id string) (domain.Account, error) {
	if r.rdb == nil {
		return r.inner.GetByID(ctx, id)
	}

	key := r.keyPrefix + id
	if raw, err := r.rdb.Get(ctx, key).Bytes(); err == nil {
		var ca cachedAccount
		if jsonErr := json.Unmarshal(raw, &ca); jsonErr == nil {
			return fromCached(ca), nil
		}
		// corrupt entry; fall through and overwrite
	}

	a, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}

	// Cache failures are invisible to callers.
	if raw, jsonErr := json.Marshal(toCached(a)); jsonErr == nil {
		_ = r.rdb.Set(ctx, key, raw, r.ttl).Err()
	}

	return a, nil
}

func toCached(a domain.Account) cachedAccount {
	return cachedAccount{
		ID:               a.ID,
		Email:            a.Email,
		DisplayName:      a.DisplayName,
		ProfileType:      a.ProfileType,
		Languages:        a.Languages,
		Nationality:      a.Nationality,
		OutcallAvailable: a.OutcallAvailable,
		IncallAvailable:  a.IncallAvailable,
		CreatedAt:        a.CreatedAt,
	}
}

func fromCached(ca cachedAccount) domain.Account {
	return domain.Account{
		ID:               ca.ID,
		Email:            ca.Email,
		DisplayName:      ca.DisplayName,
		ProfileType:      ca.ProfileType,
		Languages:        ca.Languages,
		Nationality:      ca.Nationality,
		OutcallAvailable: ca.OutcallAvailable,
		IncallAvailable:  ca.IncallAvailable,
		CreatedAt:        ca.CreatedAt,
	}
}
