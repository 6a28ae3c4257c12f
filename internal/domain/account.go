package domain

import "time"

// ProfileTypeStandard is the placeholder profile assigned at registration.
// Everything beyond it is filled in by the profile-editing flow, not by auth.
const ProfileTypeStandard = "standard"

// Account is a registered identity in the profile directory.
//
// Email is the unique login identifier (compared case-insensitively).
// PasswordHash is opaque hasher output; it is never serialized and never
// logged. The profile attributes live on the same record for persistence
// convenience only; authentication never reads them.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string

	ProfileType      string
	Languages        string
	Nationality      string
	OutcallAvailable bool
	IncallAvailable  bool

	CreatedAt time.Time
}
