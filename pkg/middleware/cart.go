package middleware

import (
	"net/http"
	"time"

	"coffee-booking/pkg/utils"

	"github.com/google/uuid"
)

// CartKey resolves the cart identity for the request: the authenticated user
// ID when present, otherwise an anonymous cart cookie (minted on first use).
// The two identities live in separate key namespaces, so a forged cookie
// carrying someone's user ID can never address that user's cart.
func CartKey(cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
				ctx := utils.SetCartKeyContext(r.Context(), UserCartKey(userID.String()))
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			var id string
			if cookie, err := r.Cookie(cookieName); err == nil {
				// Only cookie values this server minted count. Anything
				// else gets a fresh identity.
				if parsed, err := uuid.Parse(cookie.Value); err == nil {
					id = parsed.String()
				}
			}
			if id == "" {
				id = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    id,
					Path:     "/",
					Expires:  time.Now().Add(30 * 24 * time.Hour),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := utils.SetCartKeyContext(r.Context(), AnonCartKey(id))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserCartKey is the cart key for an authenticated user.
func UserCartKey(userID string) string {
	return "user:" + userID
}

// AnonCartKey is the cart key for an anonymous cart cookie identity.
func AnonCartKey(id string) string {
	return "anon:" + id
}
