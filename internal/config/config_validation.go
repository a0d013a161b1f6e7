package config

import "time"

// applyDefaults fills in the values that must always be present for the
// server to boot, matching the defaults of the original deployment.
//
// The token signing key default is deliberately NOT applied here: the empty
// value is preserved so that UsingDefaultTokenSignKey can tell "unset" apart
// from "explicitly configured", and the auth service falls back to
// [DefaultTokenSignKey] on its own.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":5000"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = 24 * time.Hour
	}
	if cfg.Storage.Files.UploadsDir == "" {
		cfg.Storage.Files.UploadsDir = "uploads"
	}
	if cfg.Payments.Currency == "" {
		cfg.Payments.Currency = "usd"
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A missing token signing key is NOT a validation error: the insecure
// default is substituted at use sites and surfaced as a health warning
// instead, so that development instances boot with no environment at all.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
