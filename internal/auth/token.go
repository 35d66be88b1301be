package auth

import (
	"strings"
	"time"

	"github.com/conradreeve/crm-service/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Custom claim keys carried in every issued token.
const (
	UserIDClaim    = "USER_ID"
	UserEmailClaim = "USER_EMAIL"
	UserNameClaim  = "USER_NAME"
)

// notBeforeSkew backdates NotBefore to tolerate clock drift between the
// service and its callers.
const notBeforeSkew = 7 * 24 * time.Hour

// TokenIssuer creates and inspects signed bearer tokens. It is stateless
// and safe for concurrent shared use.
type TokenIssuer struct {
	settings config.TokenSettings
}

func NewTokenIssuer(settings config.TokenSettings) *TokenIssuer {
	return &TokenIssuer{settings: settings}
}

// Issue signs an HS256 token for the given user identity. Expiry comes from
// the configured hour count.
func (ti *TokenIssuer) Issue(userID, email, displayName string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"iss":          ti.settings.Issuer,
		"aud":          ti.settings.Audience,
		"nbf":          jwt.NewNumericDate(now.Add(-notBeforeSkew)),
		"exp":          jwt.NewNumericDate(now.Add(time.Duration(ti.settings.ExpiryHours) * time.Hour)),
		UserIDClaim:    userID,
		UserEmailClaim: email,
		UserNameClaim:  displayName,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ti.settings.Key))
}

// IsActive reports whether the token is parseable and not yet expired.
// Expiry is read from the unverified payload; a malformed token and a token
// past its expiry both come back false.
func (ti *TokenIssuer) IsActive(tokenString string) bool {
	claims := ti.readClaims(tokenString)
	if claims == nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().UTC().Before(exp.Time)
}

// Claim returns the named string claim from the unverified payload, or ""
// if the token is malformed or the claim is absent.
func (ti *TokenIssuer) Claim(tokenString, key string) string {
	claims := ti.readClaims(tokenString)
	if claims == nil {
		return ""
	}
	value, _ := claims[key].(string)
	return value
}

// UserID pulls the user id claim out of an already-validated token.
func (ti *TokenIssuer) UserID(tokenString string) string {
	return ti.Claim(tokenString, UserIDClaim)
}

func (ti *TokenIssuer) readClaims(tokenString string) jwt.MapClaims {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil
	}
	return claims
}

// ExtractBearerToken strips a case-insensitive "Bearer " scheme prefix from
// an Authorization header value. It returns "" when the header is empty or
// carries a different scheme.
func ExtractBearerToken(header string) string {
	const prefix = "Bearer "
	if header == "" || len(header) < len(prefix) {
		return ""
	}
	if !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
