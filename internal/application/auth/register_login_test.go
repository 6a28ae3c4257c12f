package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/shelbymodels/auth-service/internal/domain"
)

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()
	svc, _, _, _, _, _ := newSvcForTest(t)

	_, err := svc.Register(context.Background(), "", "Pw123456")
	requireDomainCode(t, err, "missing_field")

	_, err = svc.Register(context.Background(), "a@x.com", "")
	requireDomainCode(t, err, "missing_field")
}

func TestRegister_NormalizesEmail(t *testing.T) {
	t.Parallel()
	svc, accounts, _, _, _, _ := newSvcForTest(t)

	res, err := svc.Register(context.Background(), "  A@X.Com ", "Pw123456")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if res.Account.Email != "a@x.com" {
		t.Fatalf("email not normalized: %q", res.Account.Email)
	}
	if _, ok := accounts.byEmail["a@x.com"]; !ok {
		t.Fatalf("account not stored under normalized email")
	}
}

func TestRegister_HashFailure(t *testing.T) {
	t.Parallel()
	svc, accounts, hasher, _, _, _ := newSvcForTest(t)

	hasher.hashFn = func(string) (string, error) {
		return "", fmt.Errorf("bcrypt blew up")
	}

	_, err := svc.Register(context.Background(), "a@x.com", "Pw123456")
	requireDomainCode(t, err, "hash_failed")

	if len(accounts.byEmail) != 0 {
		t.Fatalf("nothing should be persisted after a hash failure")
	}
}

func TestRegister_NeverStoresPlaintext(t *testing.T) {
	t.Parallel()
	svc, accounts, _, _, _, _ := newSvcForTest(t)

	res, err := svc.Register(context.Background(), "a@x.com", "Pw123456")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if res.Account.PasswordHash == "Pw123456" {
		t.Fatalf("raw password stored as hash")
	}
	stored := accounts.byEmail["a@x.com"]
	if stored.PasswordHash != "hash:Pw123456" {
		t.Fatalf("stored hash = %q, want hashed form", stored.PasswordHash)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc, _, _, _, _, _ := newSvcForTest(t)

	if _, err := svc.Register(context.Background(), "a@x.com", "Pw123456"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), "a@x.com", "Other999")
	requireDomainCode(t, err, "email_already_exists")
}

func TestRegister_AuditsAndPublishes(t *testing.T) {
	t.Parallel()
	svc, _, _, _, pub, audits := newSvcForTest(t)

	res, err := svc.Register(context.Background(), "a@x.com", "Pw123456")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if len(*audits) != 1 || (*audits)[0].action != "account_registered" {
		t.Fatalf("audit entries = %+v", *audits)
	}
	if got := (*audits)[0].fields["account_id"]; got != res.Account.ID {
		t.Fatalf("audit account_id = %q, want %q", got, res.Account.ID)
	}

	if len(pub.events) != 1 {
		t.Fatalf("published events = %d, want 1", len(pub.events))
	}
	if pub.events[0].Email != "a@x.com" || pub.events[0].AccountID != res.Account.ID {
		t.Fatalf("event = %+v", pub.events[0])
	}
}

func TestRegister_PublisherFailureDoesNotFailRegistration(t *testing.T) {
	t.Parallel()
	svc, accounts, _, _, pub, _ := newSvcForTest(t)

	pub.publishErr = fmt.Errorf("broker down")

	if _, err := svc.Register(context.Background(), "a@x.com", "Pw123456"); err != nil {
		t.Fatalf("register should survive a publish failure, got %v", err)
	}
	if _, ok := accounts.byEmail["a@x.com"]; !ok {
		t.Fatalf("account missing after publish failure")
	}
}

func TestLogin_EmptyInput(t *testing.T) {
	t.Parallel()
	svc, _, _, _, _, _ := newSvcForTest(t)

	_, err := svc.Login(context.Background(), "", "Pw123456")
	requireDomainCode(t, err, "invalid_credentials")

	_, err = svc.Login(context.Background(), "a@x.com", "")
	requireDomainCode(t, err, "invalid_credentials")
}

// Unknown email and wrong password must produce the exact same error,
// otherwise a caller can probe which addresses have accounts.
func TestLogin_NoAccountEnumeration(t *testing.T) {
	t.Parallel()
	svc, accounts, _, _, _, _ := newSvcForTest(t)

	accounts.put(domain.Account{ID: "id-1", Email: "a@x.com", PasswordHash: "hash:Pw123456"})

	_, errUnknown := svc.Login(context.Background(), "nobody@x.com", "Pw123456")
	_, errWrongPw := svc.Login(context.Background(), "a@x.com", "WrongPw99")

	requireDomainCode(t, errUnknown, "invalid_credentials")
	requireDomainCode(t, errWrongPw, "invalid_credentials")

	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("distinguishable errors:\n  unknown email: %v\n  wrong password: %v", errUnknown, errWrongPw)
	}
}

func TestLogin_StoreOutagePassesThrough(t *testing.T) {
	t.Parallel()
	svc, accounts, _, _, _, _ := newSvcForTest(t)

	accounts.getByEmailErr = domain.ErrDBUnavailable(fmt.Errorf("dial tcp: refused"))

	_, err := svc.Login(context.Background(), "a@x.com", "Pw123456")
	requireDomainCode(t, err, "db_unavailable")
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	svc, accounts, _, issuer, _, audits := newSvcForTest(t)

	accounts.put(domain.Account{ID: "id-1", Email: "a@x.com", PasswordHash: "hash:Pw123456"})

	res, err := svc.Login(context.Background(), "A@X.com", "Pw123456")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Token != "token-for-id-1" {
		t.Fatalf("token = %q", res.Token)
	}
	if res.ExpiresIn != 30*60 {
		t.Fatalf("expires_in = %d, want 1800", res.ExpiresIn)
	}
	if len(issuer.issued) != 1 || issuer.issued[0].ID != "id-1" {
		t.Fatalf("issuer saw %+v", issuer.issued)
	}
	if len(*audits) != 1 || (*audits)[0].action != "account_logged_in" {
		t.Fatalf("audit entries = %+v", *audits)
	}
}

func TestLogin_IssuerFailure(t *testing.T) {
	t.Parallel()
	svc, accounts, _, issuer, _, _ := newSvcForTest(t)

	accounts.put(domain.Account{ID: "id-1", Email: "a@x.com", PasswordHash: "hash:Pw123456"})
	issuer.issueErr = domain.ErrTokenSignFailed(fmt.Errorf("empty key"))

	_, err := svc.Login(context.Background(), "a@x.com", "Pw123456")
	requireDomainCode(t, err, "token_sign_failed")
}

func TestRegisterThenLogin_Roundtrip(t *testing.T) {
	t.Parallel()
	svc, _, _, _, _, _ := newSvcForTest(t)

	reg, err := svc.Register(context.Background(), "a@x.com", "Pw123456")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := svc.Login(context.Background(), "a@x.com", "Pw123456")
	if err != nil {
		t.Fatalf("login after register: %v", err)
	}
	if res.Account.ID != reg.Account.ID {
		t.Fatalf("login account %q != registered account %q", res.Account.ID, reg.Account.ID)
	}
}
