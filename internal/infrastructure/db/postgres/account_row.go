package postgres

import "time"

type accountRow struct {
	ID               string
	Email            string
	PasswordHash     string
	DisplayName      string
	ProfileType      string
	Languages        string
	Nationality      string
	OutcallAvailable bool
	IncallAvailable  bool
	CreatedAt        time.Time
}
