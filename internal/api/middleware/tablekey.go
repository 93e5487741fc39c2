package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/ewhitmore/scorepad-go/internal/api/apierr"
	"github.com/ewhitmore/scorepad-go/internal/model"
	"github.com/ewhitmore/scorepad-go/internal/services/access"
)

type contextKey string

const grantContextKey contextKey = "grant"

// TableKey creates middleware requiring a bearer table key bound to the
// {code} route variable
func TableKey(accessService *access.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			code := model.TableCode(mux.Vars(r)["code"])
			grant, err := accessService.ValidateFor(token, code)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), grantContextKey, grant)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the table key from the request
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	// Fall back to query parameter for EventSource clients, which cannot
	// set headers
	return r.URL.Query().Get("table_key")
}

// GetGrant returns the validated grant from the request context
func GetGrant(ctx context.Context) *access.Grant {
	grant, _ := ctx.Value(grantContextKey).(*access.Grant)
	return grant
}

// MustGetGrant returns the validated grant or panics
func MustGetGrant(ctx context.Context) *access.Grant {
	grant := GetGrant(ctx)
	if grant == nil {
		panic("no grant in context - table key middleware not applied?")
	}
	return grant
}
