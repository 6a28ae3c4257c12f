package auth

import (
	"testing"

	"github.com/shelbymodels/auth-service/internal/domain"
)

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error with code %q, got nil", code)
	}
	if !domain.Is(err, code) {
		t.Fatalf("expected code %q, got %v", code, err)
	}
}
