package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/krazykeith/apistarter/models"
)

// GenerateAccessToken creates a signed HMAC-SHA256 JWT for the given user.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Audience  (aud): the configured audience value
//   - Subject   (sub): the user identifier
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - name, roles:     the user's display name and role list
//
// Returns an error if any required parameter is empty or zero.
func GenerateAccessToken(issuer, audience string, user models.UserInformation, tokenDuration time.Duration, signKey []byte) (models.Token, error) {
	if issuer == "" || audience == "" || user.UserID == "" || tokenDuration == 0 || len(signKey) == 0 {
		return models.Token{}, errors.New("invalid params for generating access token")
	}

	now := time.Now()
	claims := models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			Subject:   user.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Name:  user.Name,
		Roles: user.Roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing access token: %w", err)
	}

	return models.Token{Token: token, AccessClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseAccessToken validates the given JWT string and extracts its
// claims.
//
// Validation includes:
//   - Signature verification with the provided sign key (HS256 only)
//   - Audience (aud) claim check against the provided audience
//   - Issuer (iss) claim check against the provided issuer
//   - Expiration (exp) claim check
func ValidateAndParseAccessToken(tokenString string, signKey []byte, issuer, audience string) (models.Token, error) {
	var claims models.AccessClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return models.Token{Token: token, AccessClaims: claims, SignedString: tokenString}, nil
}
