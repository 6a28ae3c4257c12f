package http_handlers

import (
	"net/http"

	"github.com/shelbymodels/auth-service/internal/application/auth"
	"github.com/shelbymodels/auth-service/internal/domain"
	"github.com/shelbymodels/auth-service/internal/logger"
	"github.com/shelbymodels/auth-service/internal/transport/http/dto"
	"github.com/shelbymodels/auth-service/internal/transport/http/middleware"
	"github.com/shelbymodels/auth-service/internal/transport/http/response"
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register handles POST /api/auth/register.
// Success is 200 {message}; duplicate email, validation, and store errors
// all map to 400.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteCredentialError(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		response.WriteCredentialError(w, r, err)
		return
	}

	res, err := h.svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		response.WriteCredentialError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("account_id", res.Account.ID).
		Str("email", res.Account.Email).
		Msg("account_registered")

	response.OK(w, dto.RegisterResponse{Message: "account registered"})
}

// Login handles POST /api/auth/login.
// Success is 200 {token}; invalid credentials are 401 regardless of
// whether the email exists, and every other failure is 400.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteCredentialError(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		response.WriteCredentialError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.WriteCredentialError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("account_id", res.Account.ID).
		Msg("account_logged_in")

	response.OK(w, dto.LoginResponse{Token: res.Token})
}

// Me handles GET /api/auth/me (bearer-authenticated profile read).
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	a, err := h.svc.GetAccountByID(r.Context(), accountID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.MeResponse{
		Account: dto.AccountView{
			ID:               a.ID,
			Email:            a.Email,
			DisplayName:      a.DisplayName,
			ProfileType:      a.ProfileType,
			Languages:        a.Languages,
			Nationality:      a.Nationality,
			OutcallAvailable: a.OutcallAvailable,
			IncallAvailable:  a.IncallAvailable,
		},
	})
}
