package model

// ProfileRecord is the per-user profile blob persisted in the KV store
// under user:{id}:profile. Timestamps are RFC3339 strings, matching
// what the API returns verbatim.
//
// swagger:model ProfileRecord
type ProfileRecord struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	CreatedAt   string `json:"createdAt"`
	LastActive  string `json:"lastActive"`
}
