package category

import (
	"net/http"

	"github.com/frahmantamala/legaltech-workflows/internal/auth"
	"github.com/frahmantamala/legaltech-workflows/internal/session"
	"github.com/frahmantamala/legaltech-workflows/internal/transport"
	"github.com/frahmantamala/legaltech-workflows/internal/transport/web"
)

type Handler struct {
	*transport.BaseHandler
	Service  *Service
	sessions *session.Store
	views    *web.Renderer
}

func NewHandler(base *transport.BaseHandler, svc *Service, sessions *session.Store, views *web.Renderer) *Handler {
	return &Handler{
		BaseHandler: base,
		Service:     svc,
		sessions:    sessions,
		views:       views,
	}
}

// SelectForm renders the category picker.
func (h *Handler) SelectForm(w http.ResponseWriter, r *http.Request) {
	h.renderPicker(w, r, http.StatusOK)
}

// Select validates the chosen category against the fixed set and attaches
// it to the session. An unknown id leaves the session untouched.
func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid form")
		return
	}

	sess, ok := session.FromContext(r.Context())
	if !ok {
		h.Logger.Error("select category: no session in context")
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	categoryID := r.PostFormValue("category_id")
	if !h.Service.IsValid(categoryID) {
		h.Logger.Warn("invalid category selected", "category_id", categoryID)
		sess.AddFlash(session.FlashError, "Invalid product category selected.")
		h.renderPicker(w, r, http.StatusBadRequest)
		return
	}

	sess.CategoryID = categoryID
	h.sessions.Touch(sess)
	sess.AddFlash(session.FlashSuccess, "Product category selected successfully!")

	h.Redirect(w, r, "/")
}

func (h *Handler) renderPicker(w http.ResponseWriter, r *http.Request, status int) {
	data := web.Data{"Categories": h.Service.GetAll()}

	if u, ok := auth.UserFromContext(r.Context()); ok {
		data["User"] = u
		if role, ok := auth.RoleFor(u.Role); ok {
			data["Role"] = role
		}
	}
	if sess, ok := session.FromContext(r.Context()); ok {
		data["Flashes"] = sess.PopFlashes()
	}

	h.views.Render(w, status, "select_category.html", data)
}
