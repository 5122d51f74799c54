package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the claim set carried by access tokens accepted by this
// service. Beyond the registered claims (sub, iss, aud, exp, iat) it carries
// the caller's display name and role list.
type AccessClaims struct {
	jwt.RegisteredClaims

	// Name is the display name of the token holder.
	Name string `json:"name,omitempty"`

	// Roles lists the roles granted to the token holder.
	Roles []string `json:"roles,omitempty"`
}

// Token wraps a parsed JWT with convenience accessors for authentication
// flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// AccessClaims is the validated claim set of the token.
	AccessClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// UserInformation derives the request-scoped identity summary from the
// token claims. It fails when the subject claim is missing or empty.
func (t *Token) UserInformation() (UserInformation, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return UserInformation{}, err
	}

	if subject == "" {
		return UserInformation{}, jwt.ErrTokenRequiredClaimMissing
	}

	return UserInformation{
		UserID: subject,
		Name:   t.Name,
		Roles:  append([]string(nil), t.Roles...),
	}, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
