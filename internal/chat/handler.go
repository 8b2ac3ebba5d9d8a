package chat

import (
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/legaltech-workflows/internal/session"
	"github.com/frahmantamala/legaltech-workflows/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
	Service  *Service
	sessions *session.Store
}

func NewHandler(base *transport.BaseHandler, svc *Service, sessions *session.Store) *Handler {
	return &Handler{
		BaseHandler: base,
		Service:     svc,
		sessions:    sessions,
	}
}

// StartSession handles POST /api/start-session.
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, ok := session.FromContext(r.Context())
	if !ok {
		h.Logger.Error("start session: no session in context")
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := h.Service.StartSession(sess, req.Workflow)
	h.sessions.Touch(sess)

	h.WriteJSON(w, http.StatusOK, resp)
}

// SendMessage handles POST /api/send-message.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, ok := session.FromContext(r.Context())
	if !ok {
		h.Logger.Error("send message: no session in context")
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp, err := h.Service.SendMessage(sess, req.Message)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.sessions.Touch(sess)

	h.WriteJSON(w, http.StatusOK, resp)
}
