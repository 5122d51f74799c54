package config

import "time"

// applyDefaults fills zero-valued fields that have a sensible fallback.
// The token audience deliberately has no default: it is the signing secret
// and must be chosen by the operator.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Environment == "" {
		cfg.App.Environment = "production"
	}

	if cfg.Auth.Issuer == "" {
		cfg.Auth.Issuer = "apistarter"
	}

	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = 24 * time.Hour
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":8080"
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The audience is the only hard requirement: the token signing key is
// derived from it, so authentication cannot function when it is absent.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.Audience == "" {
		return ErrAudienceIsRequired
	}

	return nil
}
