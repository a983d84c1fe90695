package domain

import "time"

// Credential is an API key the generation gateway can authenticate with.
type Credential struct {
	ID        string
	Label     string
	APIKey    string
	Source    CredentialSource
	Active    bool
	Valid     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MaskedKey returns the key with everything but the last four characters hidden.
func (c Credential) MaskedKey() string {
	if len(c.APIKey) <= 4 {
		return "****"
	}
	return "****" + c.APIKey[len(c.APIKey)-4:]
}
