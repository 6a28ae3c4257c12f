package auth

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shelbymodels/auth-service/internal/domain"
)

/*
Shared audit capture
*/

type auditEntry struct {
	action string
	fields map[string]string
}

/*
Fakes for ports
*/

type fakeAccountRepo struct {
	mu sync.Mutex

	byID    map[string]domain.Account
	byEmail map[string]domain.Account

	// injected errors (if set, method returns error)
	getByIDErr    error
	getByEmailErr error
	createErr     error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byID:    map[string]domain.Account{},
		byEmail: map[string]domain.Account{},
	}
}

func (f *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByEmailErr != nil {
		return domain.Account{}, f.getByEmailErr
	}
	a, ok := f.byEmail[email]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound()
	}
	return a, nil
}

func (f *fakeAccountRepo) GetByID(ctx context.Context, id string) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByIDErr != nil {
		return domain.Account{}, f.getByIDErr
	}
	a, ok := f.byID[id]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound()
	}
	return a, nil
}

func (f *fakeAccountRepo) Create(ctx context.Context, a domain.Account) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return domain.Account{}, f.createErr
	}
	if _, exists := f.byEmail[a.Email]; exists {
		return domain.Account{}, domain.ErrEmailAlreadyExists()
	}
	f.byID[a.ID] = a
	f.byEmail[a.Email] = a
	return a, nil
}

func (f *fakeAccountRepo) put(a domain.Account) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[a.ID] = a
	f.byEmail[a.Email] = a
}

type fakeHasher struct {
	hashFn    func(pw string) (string, error)
	compareFn func(hash, pw string) error
}

func newFakeHasher() *fakeHasher {
	return &fakeHasher{}
}

func (f *fakeHasher) Hash(pw string) (string, error) {
	if f.hashFn != nil {
		return f.hashFn(pw)
	}
	return "hash:" + pw, nil
}

func (f *fakeHasher) Compare(hash, pw string) error {
	if f.compareFn != nil {
		return f.compareFn(hash, pw)
	}
	if hash != "hash:"+pw {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type fakeIssuer struct {
	mu sync.Mutex

	issueErr error
	issued   []domain.Account
}

func newFakeIssuer() *fakeIssuer {
	return &fakeIssuer{}
}

func (f *fakeIssuer) Issue(a domain.Account) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.issueErr != nil {
		return "", f.issueErr
	}
	f.issued = append(f.issued, a)
	return "token-for-" + a.ID, nil
}

func (f *fakeIssuer) Verify(token string) (TokenClaims, error) {
	return TokenClaims{}, domain.ErrTokenInvalid()
}

type fakePublisher struct {
	mu sync.Mutex

	publishErr error
	events     []AccountRegisteredEvent
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{}
}

func (f *fakePublisher) PublishAccountRegistered(ctx context.Context, evt AccountRegisteredEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.publishErr != nil {
		return f.publishErr
	}
	f.events = append(f.events, evt)
	return nil
}

/*
Service constructor for tests
*/

func newSvcForTest(t *testing.T) (*Service, *fakeAccountRepo, *fakeHasher, *fakeIssuer, *fakePublisher, *[]auditEntry) {
	t.Helper()

	accounts := newFakeAccountRepo()
	hasher := newFakeHasher()
	issuer := newFakeIssuer()
	pub := newFakePublisher()

	svc := NewService(accounts, hasher, issuer, pub, Config{
		AccessTTL: 30 * time.Minute,
	})

	var audits []auditEntry
	svc = svc.WithAudit(func(action string, fields map[string]string) {
		audits = append(audits, auditEntry{action: action, fields: fields})
	})

	return svc, accounts, hasher, issuer, pub, &audits
}
