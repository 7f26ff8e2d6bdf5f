package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/markjakearzadon/urbanoasis-gobackend/internal/models"
	"github.com/markjakearzadon/urbanoasis-gobackend/internal/services"
)

// Auth is the access level a route declares.
type Auth int

const (
	// AuthNone lets every request through.
	AuthNone Auth = iota
	// AuthUser requires a valid bearer token.
	AuthUser
	// AuthAdmin requires a valid token whose email belongs to a stored
	// user with role "admin".
	AuthAdmin
	// AuthSelf requires a valid token whose email equals the {email} path
	// parameter.
	AuthSelf
)

func (a Auth) String() string {
	switch a {
	case AuthUser:
		return "user"
	case AuthAdmin:
		return "admin"
	case AuthSelf:
		return "self"
	default:
		return "none"
	}
}

type claimsKey struct{}

// ClaimsFrom returns the token claims attached by the guard.
func ClaimsFrom(ctx context.Context) (*services.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*services.Claims)
	return claims, ok
}

func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

type guard struct {
	tokens TokenVerifier
	users  services.UserStore
}

func (g *guard) wrap(level Auth, next http.HandlerFunc) http.HandlerFunc {
	if level == AuthNone {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized access")
			return
		}
		claims, err := g.tokens.Verify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized access")
			return
		}

		switch level {
		case AuthAdmin:
			user, err := g.users.FindByEmail(r.Context(), claims.Email)
			if err != nil {
				log.Printf("Failed to look up role for %s: %v", claims.Email, err)
				writeError(w, http.StatusInternalServerError, "Failed to verify role")
				return
			}
			if user == nil || user.Role != models.RoleAdmin {
				writeError(w, http.StatusForbidden, "Forbidden access")
				return
			}
		case AuthSelf:
			if claims.Email != mux.Vars(r)["email"] {
				writeError(w, http.StatusForbidden, "Forbidden access")
				return
			}
		}

		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
	}
}
