package auth

import (
	"net/http"
	"strings"

	"github.com/millennial404/mesto-project-plus/internal/platform/httpx"
	"github.com/millennial404/mesto-project-plus/internal/shared"
)

const bearerPrefix = "Bearer "

// RequireAuth gates a route subtree behind bearer-token verification.
// A missing header, a header without the Bearer prefix and a token that
// fails verification all produce the identical Unauthorized response, so
// a caller cannot tell which check rejected it. On success the resolved
// principal is attached to the request context; the gate never touches
// persistence.
func RequireAuth(codec *TokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				httpx.Error(w, nil, shared.Unauthorized(""))
				return
			}
			principal, err := codec.Verify(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				httpx.Error(w, nil, shared.Unauthorized(""))
				return
			}
			ctx := shared.ContextWithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
