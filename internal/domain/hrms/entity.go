package hrms

import "time"

// Connection is the singleton record of the HR system integration.
type Connection struct {
	Connected bool       `json:"connected"`
	APIKey    *string    `json:"apiKey"`
	LastSync  *time.Time `json:"lastSync"`
}
