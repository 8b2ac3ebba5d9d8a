package auth

import (
	"fmt"
	"net/http"

	"github.com/frahmantamala/legaltech-workflows/internal/session"
	"github.com/frahmantamala/legaltech-workflows/internal/transport"
	"github.com/frahmantamala/legaltech-workflows/internal/transport/web"
	"github.com/frahmantamala/legaltech-workflows/internal/user"
)

type UserLister interface {
	All() []user.User
}

type Handler struct {
	*transport.BaseHandler
	Service  *Service
	sessions *session.Store
	views    *web.Renderer
	users    UserLister
}

func NewHandler(base *transport.BaseHandler, svc *Service, sessions *session.Store, views *web.Renderer, users UserLister) *Handler {
	return &Handler{
		BaseHandler: base,
		Service:     svc,
		sessions:    sessions,
		views:       views,
		users:       users,
	}
}

// LoginForm renders the identity picker.
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, http.StatusOK)
}

// Login matches the submitted email against the user table and attaches
// the identity to the browser session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid form")
		return
	}

	u, err := h.Service.AuthenticateEmail(LoginDTO{Email: r.PostFormValue("email")})
	if err != nil {
		sess, ok := session.FromContext(r.Context())
		if ok {
			sess.AddFlash(session.FlashError, "Invalid email address. Please try again.")
		}
		h.renderLogin(w, r, http.StatusUnauthorized)
		return
	}

	sess, ok := session.FromContext(r.Context())
	if !ok {
		h.Logger.Error("login: no session in context")
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	sess.UserID = u.ID
	h.sessions.Touch(sess)
	sess.AddFlash(session.FlashSuccess, fmt.Sprintf("Welcome back, %s!", u.Name))

	h.Redirect(w, r, "/select-category")
}

// Logout clears the entire browser session, both identity and selected
// category, then starts a fresh one for the goodbye flash.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w, r)

	fresh := h.sessions.Ensure(w, r)
	fresh.AddFlash(session.FlashInfo, "You have been logged out successfully.")

	h.Redirect(w, r, "/login")
}

func (h *Handler) renderLogin(w http.ResponseWriter, r *http.Request, status int) {
	data := web.Data{"Users": h.users.All()}
	if sess, ok := session.FromContext(r.Context()); ok {
		data["Flashes"] = sess.PopFlashes()
	}
	h.views.Render(w, status, "login.html", data)
}
