package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/coffee-shop-env/internal/config"
	"github.com/MKhiriev/coffee-shop-env/internal/logger"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the access token claims the API relies on.
type Claims struct {
	jwt.RegisteredClaims
	// Permissions lists the RBAC permissions granted to the caller,
	// e.g. "get:drinks-detail".
	Permissions []string `json:"permissions"`
}

// Verifier validates Auth0 access tokens: RS256 signature against the
// tenant's JWKS, expiry, audience and issuer.
type Verifier struct {
	keys     KeySource
	audience string
	issuer   string
}

// NewVerifier returns a Verifier for the tenant and audience in a, resolving
// signing keys through keys.
func NewVerifier(a config.Auth0, keys KeySource) *Verifier {
	return &Verifier{
		keys:     keys,
		audience: a.Audience,
		issuer:   Issuer(a),
	}
}

// NewJWKSVerifier returns a Verifier that fetches keys from the tenant's
// JWKS endpoint and caches them for an hour. Key refresh problems are
// logged to log.
func NewJWKSVerifier(a config.Auth0, log *logger.Logger) *Verifier {
	return NewVerifier(a, NewJWKSCache(JWKSURL(a), time.Hour, log))
}

// Verify checks tokenString and returns its claims.
//
// Token failures are reported as *[AuthError] values:
//   - [ErrUnparseableToken] for a token that is not a JWT or fails the
//     signature check;
//   - [ErrMalformedToken] when the header carries no "kid";
//   - [ErrKeyNotFound] when the JWKS has no key for the "kid";
//   - [ErrTokenExpired] for an expired token;
//   - [ErrInvalidClaims] for a wrong audience or issuer, or no expiry.
//
// A failure to reach the JWKS endpoint is returned as a plain wrapped error.
func (v *Verifier) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	unverified, _, err := jwt.NewParser().ParseUnverified(tokenString, &Claims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparseableToken, err)
	}

	kid, _ := unverified.Header["kid"].(string)
	if kid == "" {
		return nil, ErrMalformedToken
	}

	key, err := v.keys.Key(ctx, kid)
	if err != nil {
		if errors.Is(err, errUnknownKid) {
			return nil, fmt.Errorf("%w: %w", ErrKeyNotFound, err)
		}
		return nil, fmt.Errorf("error resolving signing key: %w", err)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(v.audience),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)

	claims := &Claims{}
	_, err = parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return key, nil
	})
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenInvalidAudience),
		errors.Is(err, jwt.ErrTokenInvalidIssuer),
		errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return nil, fmt.Errorf("%w: %w", ErrInvalidClaims, err)
	default:
		return nil, fmt.Errorf("%w: %w", ErrUnparseableToken, err)
	}
}

// TokenFromHeader extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func TokenFromHeader(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) == 0 {
		return "", ErrHeaderMissing
	}

	switch {
	case !strings.EqualFold(parts[0], "bearer"):
		return "", ErrNotBearer
	case len(parts) == 1:
		return "", ErrTokenNotFound
	case len(parts) > 2:
		return "", ErrNotBearerToken
	}

	return parts[1], nil
}

// CheckPermission reports [ErrPermissionNotFound] unless claims grant
// permission. An empty permission only requires a valid token.
func CheckPermission(permission string, claims *Claims) error {
	if permission == "" {
		return nil
	}
	if claims == nil || !slices.Contains(claims.Permissions, permission) {
		return ErrPermissionNotFound
	}
	return nil
}
