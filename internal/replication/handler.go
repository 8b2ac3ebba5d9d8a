package replication

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/legaltech-workflows/internal"
	"github.com/frahmantamala/legaltech-workflows/internal/category"
	"github.com/frahmantamala/legaltech-workflows/internal/session"
	"github.com/frahmantamala/legaltech-workflows/internal/transport"
)

// maxUploadSize bounds the multipart form held in memory. The file content
// is discarded either way.
const maxUploadSize = 16 << 20

type Handler struct {
	*transport.BaseHandler
	Service    *Service
	categories *category.Service
}

func NewHandler(base *transport.BaseHandler, svc *Service, categories *category.Service) *Handler {
	return &Handler{
		BaseHandler: base,
		Service:     svc,
		categories:  categories,
	}
}

// Replicate handles POST /api/agreement-replication.
func (h *Handler) Replicate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.WriteAppError(w, internal.ErrNoFileUploaded)
		return
	}

	file, header, err := r.FormFile("agreement_file")
	if err != nil {
		h.WriteAppError(w, internal.ErrNoFileUploaded)
		return
	}
	defer file.Close()

	req := Request{
		Filename:     header.Filename,
		TargetStates: r.Form["states"],
		OriginState:  r.FormValue("original_state"),
	}

	if sess, ok := session.FromContext(r.Context()); ok {
		if cat, err := h.categories.GetByID(sess.CategoryID); err == nil {
			req.CategoryName = cat.Name
		} else {
			req.CategoryName = "Unknown"
		}
	}

	resp, err := h.Service.Replicate(r.Context(), req)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

// Download handles GET /api/download-replicated-agreement/{state}.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	state := chi.URLParam(r, "state")

	body := h.Service.Document(state)

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Content-Disposition", `attachment; filename=replicated_agreement_`+state+`.txt`)
	if _, err := w.Write([]byte(body)); err != nil {
		h.Logger.Error("failed to write download", "state", state, "error", err)
	}
}
