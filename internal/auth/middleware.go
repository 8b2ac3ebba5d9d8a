package auth

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/legaltech-workflows/internal/session"
)

// Guards are the composable request gates in front of the workflow views
// and APIs: session loading, authentication, category selection and
// role permission. Each guard either proceeds or redirects with a reason;
// none of them short-circuit via panics or hidden control flow.
type Guards struct {
	sessions *session.Store
	service  *Service
	logger   *slog.Logger
}

func NewGuards(sessions *session.Store, service *Service, logger *slog.Logger) *Guards {
	return &Guards{
		sessions: sessions,
		service:  service,
		logger:   logger,
	}
}

// WithSession resolves (or creates) the browser session and stores it in
// the request context. Applied globally so every handler can assume a
// session exists.
func (g *Guards) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := g.sessions.Ensure(w, r)
		next.ServeHTTP(w, r.WithContext(session.ContextWith(r.Context(), sess)))
	})
}

// RequireAuth redirects unauthenticated browsers to the login view and
// attaches the resolved user to the context for downstream guards.
func (g *Guards) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		if !ok || !sess.Authenticated() {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		u, err := g.service.CurrentUser(sess.UserID)
		if err != nil {
			// stale user id in the session; drop it and start over
			g.logger.Warn("session references unknown user", "user_id", sess.UserID)
			g.sessions.Clear(w, r)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), u)))
	})
}

// RequireCategory redirects to the category picker when the session has no
// product category attached.
func (g *Guards) RequireCategory(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		if !ok || !sess.HasCategory() {
			if ok {
				sess.AddFlash(session.FlashWarning, "Please select a product category to continue.")
			}
			http.Redirect(w, r, "/select-category", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePermission gates a workflow view on the user's role including the
// given permission; failures bounce back to the dashboard with a warning.
func (g *Guards) RequirePermission(p Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			role, ok := RoleFor(u.Role)
			if !ok || !role.Has(p) {
				g.logger.Warn("access denied: insufficient permissions",
					"user_id", u.ID,
					"role", u.Role,
					"required_permission", p)
				if sess, ok := session.FromContext(r.Context()); ok {
					sess.AddFlash(session.FlashError, "Access denied. Insufficient permissions.")
				}
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermissionJSON is the API variant of RequirePermission; it answers
// with a 403 body instead of redirecting.
func (g *Guards) RequirePermissionJSON(p Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			role, ok := RoleFor(u.Role)
			if !ok || !role.Has(p) {
				g.logger.Warn("access denied: insufficient permissions",
					"user_id", u.ID,
					"role", u.Role,
					"required_permission", p)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error": "Access denied. Insufficient permissions."}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
