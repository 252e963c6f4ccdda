// Package token decodes session credentials without verifying them.
//
// The backend is the only authority on whether a credential is valid. The
// client reads the payload purely to learn which user record to fetch; any
// request made with the credential can still be rejected by the server.
package token

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload the backend embeds in every credential.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

var parser = jwt.NewParser()

// Decode is a best-effort decode of credential. It returns false when the
// string is not a three-segment JWT with a JSON payload or carries no username.
// The signature is never checked.
func Decode(credential string) (*Claims, bool) {
	if credential == "" {
		return nil, false
	}

	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(credential, claims); err != nil {
		return nil, false
	}
	if claims.Username == "" {
		return nil, false
	}
	return claims, true
}
