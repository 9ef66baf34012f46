package auth

import (
	"errors"
	"net/http"
)

// AuthError is a failure of the bearer token checks. Code is a stable
// machine-readable identifier, Status the HTTP status a handler should
// answer with.
type AuthError struct {
	Code        string
	Description string
	Status      int
}

func (e *AuthError) Error() string {
	return e.Code + ": " + e.Description
}

// Authentication failures. Each one is a distinct value, so callers can
// match them with errors.Is and read the status with errors.As.
var (
	ErrHeaderMissing = &AuthError{
		Code: "authorization_header_missing", Description: "Authorization header is expected", Status: http.StatusUnauthorized,
	}
	ErrNotBearer = &AuthError{
		Code: "invalid_header", Description: "Authorization header must start with 'Bearer'.", Status: http.StatusUnauthorized,
	}
	ErrTokenNotFound = &AuthError{
		Code: "invalid_header", Description: "Token not found", Status: http.StatusUnauthorized,
	}
	ErrNotBearerToken = &AuthError{
		Code: "invalid_header", Description: "Authorization header must be Bearer token", Status: http.StatusUnauthorized,
	}
	ErrMalformedToken = &AuthError{
		Code: "invalid_header", Description: "Authorization malformed.", Status: http.StatusUnauthorized,
	}
	ErrTokenExpired = &AuthError{
		Code: "token_expired", Description: "Token expired.", Status: http.StatusUnauthorized,
	}
	ErrInvalidClaims = &AuthError{
		Code: "invalid_claims", Description: "Incorrect claims. Please, check the audience and issuer.", Status: http.StatusUnauthorized,
	}
	ErrUnparseableToken = &AuthError{
		Code: "invalid_header", Description: "Unable to parse authentication token.", Status: http.StatusBadRequest,
	}
	ErrKeyNotFound = &AuthError{
		Code: "invalid_header", Description: "Unable to find the appropriate key.", Status: http.StatusBadRequest,
	}
	ErrPermissionNotFound = &AuthError{
		Code: "unauthorized", Description: "Permission not found.", Status: http.StatusUnauthorized,
	}
)

// errUnknownKid is returned by a [KeySource] that has no key for a kid.
var errUnknownKid = errors.New("kid not found in JWKS")
