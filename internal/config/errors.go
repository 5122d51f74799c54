package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrAudienceIsRequired indicates that no token audience was configured.
	// The audience doubles as the token signing secret, so the service
	// refuses to start without it.
	ErrAudienceIsRequired = errors.New("token audience is required")
)
