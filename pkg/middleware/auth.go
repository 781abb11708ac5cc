package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/bronzebyte/customer-stats-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyCustomer contextKey = "customer"
)

// Rotas abertas, sem token
var publicPaths = []string{
	"/healthcheck",
	"/v1/login",
	"/v1/register",
}

// Rotas do dashboard do cliente: acesso sem autenticação não é erro, a
// resposta apenas sai vazia. O token é validado quando presente e as claims
// vão para o contexto; sem token o handler decide o que fazer.
var optionalAuthPaths = []string{
	"/v1/me/stats",
	"/v1/me/orders/export",
}

func pathInList(path string, list []string) bool {
	for _, p := range list {
		if path == p {
			return true
		}
	}
	return false
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if pathInList(r.URL.Path, publicPaths) {
				next.ServeHTTP(w, r)
				return
			}

			optional := pathInList(r.URL.Path, optionalAuthPaths)

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				if optional {
					next.ServeHTTP(w, r)
					return
				}
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				if optional {
					next.ServeHTTP(w, r)
					return
				}
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				if optional {
					next.ServeHTTP(w, r)
					return
				}
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyCustomer, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
