package model

import "time"

// IdentityRecord is the remembered player name for a client
type IdentityRecord struct {
	ClientID  ClientID
	Username  string
	ExpiresAt time.Time
}

// Active reports whether the record has not yet expired at now
func (r *IdentityRecord) Active(now time.Time) bool {
	return r.Username != "" && now.Before(r.ExpiresAt)
}
