package dto

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shelbymodels/auth-service/internal/domain"
)

func TestRegisterRequest_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		req      RegisterRequest
		wantCode string // "" means valid
	}{
		{"valid", RegisterRequest{Email: "a@x.com", Password: "Pw123456"}, ""},
		{"valid long password", RegisterRequest{Email: "a@x.com", Password: "CorrectHorse99"}, ""},
		{"missing email", RegisterRequest{Password: "Pw123456"}, "missing_field"},
		{"missing password", RegisterRequest{Email: "a@x.com"}, "missing_field"},
		{"bad email format", RegisterRequest{Email: "not-an-email", Password: "Pw123456"}, "invalid_field"},
		{"too short", RegisterRequest{Email: "a@x.com", Password: "Pw1"}, "weak_password"},
		{"no uppercase", RegisterRequest{Email: "a@x.com", Password: "pw123456"}, "weak_password"},
		{"no lowercase", RegisterRequest{Email: "a@x.com", Password: "PW123456"}, "weak_password"},
		{"no digit", RegisterRequest{Email: "a@x.com", Password: "PwPwPwPw"}, "weak_password"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.req.Validate()
			if tc.wantCode == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.True(t, domain.Is(err, tc.wantCode), "want %s, got %v", tc.wantCode, err)
		})
	}
}

func TestRegisterRequest_TrimsEmail(t *testing.T) {
	t.Parallel()

	req := RegisterRequest{Email: "  a@x.com  ", Password: "Pw123456"}
	require.NoError(t, req.Validate())
	require.Equal(t, "a@x.com", req.Email)
}

func TestLoginRequest_Validate(t *testing.T) {
	t.Parallel()

	// login only requires presence: format policing at login would leak
	// which historical registration rules an account was created under
	req := LoginRequest{Email: "whatever", Password: "x"}
	require.NoError(t, req.Validate())

	require.True(t, domain.Is((&LoginRequest{Password: "x"}).Validate(), "missing_field"))
	require.True(t, domain.Is((&LoginRequest{Email: "a@x.com"}).Validate(), "missing_field"))
}
