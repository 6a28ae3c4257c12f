package auth

import (
	"context"
	"testing"

	"github.com/shelbymodels/auth-service/internal/domain"
)

func TestGetAccountByID(t *testing.T) {
	t.Parallel()
	svc, accounts, _, _, _, _ := newSvcForTest(t)

	accounts.put(domain.Account{ID: "id-1", Email: "a@x.com", DisplayName: "A"})

	a, err := svc.GetAccountByID(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if a.Email != "a@x.com" {
		t.Fatalf("email = %q", a.Email)
	}

	_, err = svc.GetAccountByID(context.Background(), "missing")
	requireDomainCode(t, err, "account_not_found")

	_, err = svc.GetAccountByID(context.Background(), "   ")
	requireDomainCode(t, err, "missing_field")
}
