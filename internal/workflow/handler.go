package workflow

import (
	"net/http"

	"github.com/frahmantamala/legaltech-workflows/internal/auth"
	"github.com/frahmantamala/legaltech-workflows/internal/category"
	"github.com/frahmantamala/legaltech-workflows/internal/replication"
	"github.com/frahmantamala/legaltech-workflows/internal/session"
	"github.com/frahmantamala/legaltech-workflows/internal/transport"
	"github.com/frahmantamala/legaltech-workflows/internal/transport/web"
)

type Handler struct {
	*transport.BaseHandler
	categories *category.Service
	views      *web.Renderer
}

func NewHandler(base *transport.BaseHandler, categories *category.Service, views *web.Renderer) *Handler {
	return &Handler{
		BaseHandler: base,
		categories:  categories,
		views:       views,
	}
}

// Dashboard renders the role- and category-aware landing view.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data, ok := h.viewData(w, r)
	if !ok {
		return
	}

	role := data["Role"].(auth.Role)
	data["Workflows"] = ForRole(role)

	h.views.Render(w, http.StatusOK, "dashboard.html", data)
}

// View returns the handler for one gated workflow view. Auth, category and
// permission gates run as middleware before this is reached.
func (h *Handler) View(wf Workflow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, ok := h.viewData(w, r)
		if !ok {
			return
		}

		if wf.Key == "agreement_replication" {
			data["States"] = replication.StateCodes()
		}

		h.views.Render(w, http.StatusOK, wf.Page, data)
	}
}

// Settings renders the profile view. It requires authentication only; the
// category may still be unselected.
func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.Redirect(w, r, "/login")
		return
	}
	role, ok := auth.RoleFor(u.Role)
	if !ok {
		h.Logger.Error("user has unknown role", "user_id", u.ID, "role", u.Role)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	data := web.Data{"User": u, "Role": role}
	if sess, ok := session.FromContext(r.Context()); ok {
		if cat, err := h.categories.GetByID(sess.CategoryID); err == nil {
			data["Category"] = cat
		}
		data["Flashes"] = sess.PopFlashes()
	}

	h.views.Render(w, http.StatusOK, "settings.html", data)
}

// viewData assembles the fields every gated view renders with: user, role,
// category and pending flashes. It reports false after writing an error
// response when the request context is missing required state.
func (h *Handler) viewData(w http.ResponseWriter, r *http.Request) (web.Data, bool) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.Redirect(w, r, "/login")
		return nil, false
	}

	role, ok := auth.RoleFor(u.Role)
	if !ok {
		h.Logger.Error("user has unknown role", "user_id", u.ID, "role", u.Role)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return nil, false
	}

	sess, ok := session.FromContext(r.Context())
	if !ok {
		h.Logger.Error("view: no session in context")
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return nil, false
	}

	cat, err := h.categories.GetByID(sess.CategoryID)
	if err != nil {
		// category gate should have caught this; bounce to the picker
		h.Redirect(w, r, "/select-category")
		return nil, false
	}

	return web.Data{
		"User":     u,
		"Role":     role,
		"Category": cat,
		"Flashes":  sess.PopFlashes(),
	}, true
}
