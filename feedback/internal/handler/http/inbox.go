package http

import (
	"net/http"

	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
)

func (h *Handler) registerInbox(mux *http.ServeMux, prefix string) {
	mux.HandleFunc("GET "+prefix+"/messages", h.GetMessages)
	mux.HandleFunc("POST "+prefix+"/messages", h.SendMessage)
	mux.HandleFunc("PUT "+prefix+"/messages/{id}/read", h.MarkMessageRead)
	mux.HandleFunc("DELETE "+prefix+"/messages/{id}", h.DeleteMessage)
	mux.HandleFunc("GET "+prefix+"/feedback", h.GetSiteFeedback)
	mux.HandleFunc("POST "+prefix+"/feedback", h.SubmitSiteFeedback)
	mux.HandleFunc("PUT "+prefix+"/feedback/{id}/read", h.MarkSiteFeedbackRead)
	mux.HandleFunc("DELETE "+prefix+"/feedback/{id}", h.DeleteSiteFeedback)
}

// GetMessages handles GET /messages.
func (h *Handler) GetMessages(w http.ResponseWriter, req *http.Request) {
	messages, err := h.inbox.Messages(req.Context())
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, messages)
}

// SendMessage handles POST /messages.
func (h *Handler) SendMessage(w http.ResponseWriter, req *http.Request) {
	var body model.SendMessageRequest
	if !h.decode(w, req, &body) {
		return
	}
	m, err := h.inbox.SendMessage(req.Context(), model.Message{
		Name:        body.Name,
		Message:     body.Message,
		ProjectName: body.ProjectName,
		ProjectID:   body.ProjectID,
	})
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, m)
}

// MarkMessageRead handles PUT /messages/{id}/read.
func (h *Handler) MarkMessageRead(w http.ResponseWriter, req *http.Request) {
	m, err := h.inbox.MarkMessageRead(req.Context(), req.PathValue("id"))
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, m)
}

// DeleteMessage handles DELETE /messages/{id}.
func (h *Handler) DeleteMessage(w http.ResponseWriter, req *http.Request) {
	if err := h.inbox.DeleteMessage(req.Context(), req.PathValue("id")); err != nil {
		h.writeError(w, req, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSiteFeedback handles GET /feedback.
func (h *Handler) GetSiteFeedback(w http.ResponseWriter, req *http.Request) {
	feedback, err := h.inbox.SiteFeedback(req.Context())
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, feedback)
}

// SubmitSiteFeedback handles POST /feedback.
func (h *Handler) SubmitSiteFeedback(w http.ResponseWriter, req *http.Request) {
	var body model.SubmitSiteFeedbackRequest
	if !h.decode(w, req, &body) {
		return
	}
	f, err := h.inbox.SubmitSiteFeedback(req.Context(), model.SiteFeedback{
		UserName:    body.UserName,
		Feedback:    body.Feedback,
		ProjectName: body.ProjectName,
		ProjectID:   body.ProjectID,
	})
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, f)
}

// MarkSiteFeedbackRead handles PUT /feedback/{id}/read.
func (h *Handler) MarkSiteFeedbackRead(w http.ResponseWriter, req *http.Request) {
	f, err := h.inbox.MarkSiteFeedbackRead(req.Context(), req.PathValue("id"))
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, f)
}

// DeleteSiteFeedback handles DELETE /feedback/{id}.
func (h *Handler) DeleteSiteFeedback(w http.ResponseWriter, req *http.Request) {
	if err := h.inbox.DeleteSiteFeedback(req.Context(), req.PathValue("id")); err != nil {
		h.writeError(w, req, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
