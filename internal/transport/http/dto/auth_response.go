package dto

// -------- Core auth --------

// RegisterResponse is the register success body: 200 {message}.
type RegisterResponse struct {
	Message string `json:"message"`
}

// LoginResponse is the login success body: 200 {token}.
type LoginResponse struct {
	Token string `json:"token"`
}

// -------- Me --------

// AccountView is the authenticated profile payload. The password hash has
// no representation here by construction.
type AccountView struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	DisplayName      string `json:"display_name,omitempty"`
	ProfileType      string `json:"profile_type"`
	Languages        string `json:"languages,omitempty"`
	Nationality      string `json:"nationality,omitempty"`
	OutcallAvailable bool   `json:"outcall_available"`
	IncallAvailable  bool   `json:"incall_available"`
}

type MeResponse struct {
	Account AccountView `json:"account"`
}
