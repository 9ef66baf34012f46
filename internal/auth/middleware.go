package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/coffee-shop-env/internal/logger"
)

// TokenVerifier validates a raw bearer token.
type TokenVerifier interface {
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

type claimsCtxKey struct{}

// ClaimsFromContext returns the claims stored by [RequiresAuth].
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsCtxKey{}).(*Claims)
	return claims, ok
}

// authErrorResponse is the body of an authentication rejection.
type authErrorResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// errorResponse is the generic API error body, used when the failure is not
// an authentication rejection.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// RequiresAuth returns middleware that admits a request only with a valid
// bearer token granting permission. Verified claims are stored in the
// request context for [ClaimsFromContext].
//
// Rejections are logged through the request's context logger, or log when
// the context has none; log is also attached to the context passed on to
// next in that case. They answer with the *[AuthError] status and a
// {"code","description"} body; any other failure answers 500.
func RequiresAuth(v TokenVerifier, permission string, log *logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			reqLog := logger.FromContextOr(ctx, log)
			ctx = reqLog.WithContext(ctx)

			tokenString, err := TokenFromHeader(r.Header.Get("Authorization"))
			if err != nil {
				reqLog.Err(err).Msg("rejected authorization header")
				writeAuthError(w, err)
				return
			}

			claims, err := v.Verify(ctx, tokenString)
			if err != nil {
				reqLog.Err(err).Msg("error occurred during verifying token")
				writeAuthError(w, err)
				return
			}

			if err := CheckPermission(permission, claims); err != nil {
				reqLog.Err(err).Str("permission", permission).Msg("permission denied")
				writeAuthError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, claimsCtxKey{}, claims)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var authErr *AuthError
	if errors.As(err, &authErr) {
		w.WriteHeader(authErr.Status)
		_ = json.NewEncoder(w).Encode(authErrorResponse{
			Code:        authErr.Code,
			Description: authErr.Description,
		})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error:   http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
	})
}
