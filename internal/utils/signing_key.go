package utils

import (
	"encoding/binary"
	"errors"
	"unicode/utf16"
)

// ErrNoAudienceConfigured is returned by [DeriveSigningKey] when the
// configured audience value is empty. Token validation cannot function
// without key material, so callers treat this as fatal at startup.
var ErrNoAudienceConfigured = errors.New("no token audience configured")

// DeriveSigningKey produces the symmetric HMAC secret used to sign and
// validate access tokens.
//
// The configured audience string is encoded as UTF-16LE and the raw bytes are
// used directly as key material, so the audience value doubles as the shared
// secret. Every process validating tokens issued by another instance must be
// configured with the same audience or validation fails across instances.
//
// Note: the audience is ordinarily a non-secret value; reusing it as the
// signing secret is preserved here for token compatibility and is a known
// weakness, not a recommendation.
func DeriveSigningKey(audience string) ([]byte, error) {
	if audience == "" {
		return nil, ErrNoAudienceConfigured
	}

	units := utf16.Encode([]rune(audience))
	key := make([]byte, 2*len(units))
	for i, unit := range units {
		binary.LittleEndian.PutUint16(key[2*i:], unit)
	}

	return key, nil
}
