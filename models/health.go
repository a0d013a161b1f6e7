package models

import "time"

// Health is the diagnostic snapshot returned by GET /api/health.
// It reports configuration presence only, never secret values.
type Health struct {
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Services  HealthServices `json:"services"`
	Warnings  []string       `json:"warnings"`
	Errors    []string       `json:"errors"`
}

// HealthServices groups per-collaborator diagnostics.
type HealthServices struct {
	Database HealthDatabase `json:"database"`
	Stripe   HealthStripe   `json:"stripe"`
	JWT      HealthJWT      `json:"jwt"`
}

// HealthDatabase reports the result of a liveness ping against Postgres.
type HealthDatabase struct {
	Connected bool `json:"connected"`
}

// HealthStripe reports whether the payment provider key is configured.
// KeyPrefix exposes at most the first characters of the key so operators
// can tell test keys from live keys without leaking the secret.
type HealthStripe struct {
	Configured bool   `json:"configured"`
	KeyPrefix  string `json:"key_prefix,omitempty"`
}

// HealthJWT reports whether the token signing secret is configured and
// whether the insecure development default is in use.
type HealthJWT struct {
	Configured   bool `json:"configured"`
	UsingDefault bool `json:"using_default"`
}
