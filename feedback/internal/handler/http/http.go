package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/abhishek622/portfolioapp/feedback/internal/controller/feedback"
	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/abhishek622/portfolioapp/internal/httputil"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const maxBodyBytes = 64 << 10

type feedbackController interface {
	Ratings(ctx context.Context, item model.ItemKey) ([]model.Rating, model.Aggregate, error)
	SubmitRating(ctx context.Context, sess model.Session, item model.ItemKey, value model.RatingValue) (model.Rating, model.Aggregate, error)
	Comments(ctx context.Context, item model.ItemKey) ([]model.Comment, error)
	AddComment(ctx context.Context, sess model.Session, item model.ItemKey, author, text string) (model.Comment, error)
	EditComment(ctx context.Context, sess model.Session, item model.ItemKey, commentID, text string) (model.Comment, error)
	DeleteComment(ctx context.Context, sess model.Session, item model.ItemKey, commentID string) error
}

type inboxController interface {
	Messages(ctx context.Context) ([]model.Message, error)
	SendMessage(ctx context.Context, m model.Message) (model.Message, error)
	MarkMessageRead(ctx context.Context, id string) (model.Message, error)
	DeleteMessage(ctx context.Context, id string) error
	SiteFeedback(ctx context.Context) ([]model.SiteFeedback, error)
	SubmitSiteFeedback(ctx context.Context, f model.SiteFeedback) (model.SiteFeedback, error)
	MarkSiteFeedbackRead(ctx context.Context, id string) (model.SiteFeedback, error)
	DeleteSiteFeedback(ctx context.Context, id string) error
}

// Handler defines the feedback service HTTP handler.
type Handler struct {
	ctrl     feedbackController
	inbox    inboxController
	validate *validator.Validate
	logger   *zap.Logger
}

// New creates a new feedback service HTTP handler.
func New(ctrl feedbackController, logger *zap.Logger) *Handler {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Handler{ctrl: ctrl, validate: v, logger: logger}
}

// WithInbox serves the messages and site feedback routes from inbox.
func (h *Handler) WithInbox(inbox inboxController) *Handler {
	h.inbox = inbox
	return h
}

// Register adds the feedback routes under prefix (e.g. "/api").
func (h *Handler) Register(mux *http.ServeMux, prefix string) {
	mux.HandleFunc("GET "+prefix+"/ratings", h.GetRatings)
	mux.HandleFunc("GET "+prefix+"/ratings/aggregate", h.GetAggregate)
	mux.HandleFunc("POST "+prefix+"/ratings", h.SubmitRating)
	mux.HandleFunc("GET "+prefix+"/comments", h.GetComments)
	mux.HandleFunc("POST "+prefix+"/comments", h.AddComment)
	mux.HandleFunc("PUT "+prefix+"/comments/{id}", h.EditComment)
	mux.HandleFunc("DELETE "+prefix+"/comments/{id}", h.DeleteComment)
	mux.HandleFunc("GET "+prefix+"/health", h.Health)
	if h.inbox != nil {
		h.registerInbox(mux, prefix)
	}
}

// GetRatings handles GET /ratings?itemId=&itemType=.
func (h *Handler) GetRatings(w http.ResponseWriter, req *http.Request) {
	ratings, _, err := h.ctrl.Ratings(req.Context(), itemFromQuery(req))
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ratings)
}

// GetAggregate handles GET /ratings/aggregate?itemId=&itemType=.
func (h *Handler) GetAggregate(w http.ResponseWriter, req *http.Request) {
	_, agg, err := h.ctrl.Ratings(req.Context(), itemFromQuery(req))
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, agg)
}

// SubmitRating handles POST /ratings.
func (h *Handler) SubmitRating(w http.ResponseWriter, req *http.Request) {
	var body model.SubmitRatingRequest
	if !h.decode(w, req, &body) {
		return
	}
	rating, agg, err := h.ctrl.SubmitRating(req.Context(),
		model.Session{VisitorID: body.UserID},
		model.ItemKey{Type: body.ItemType, ID: body.ItemID},
		body.Rating)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, model.SubmitRatingResponse{Rating: rating, Aggregate: agg})
}

// GetComments handles GET /comments?itemId=&itemType=.
func (h *Handler) GetComments(w http.ResponseWriter, req *http.Request) {
	comments, err := h.ctrl.Comments(req.Context(), itemFromQuery(req))
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, comments)
}

// AddComment handles POST /comments.
func (h *Handler) AddComment(w http.ResponseWriter, req *http.Request) {
	var body model.AddCommentRequest
	if !h.decode(w, req, &body) {
		return
	}
	comment, err := h.ctrl.AddComment(req.Context(),
		model.Session{VisitorID: body.UserID},
		model.ItemKey{Type: body.ItemType, ID: body.ItemID},
		body.Author, body.Text)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, comment)
}

// EditComment handles PUT /comments/{id}.
func (h *Handler) EditComment(w http.ResponseWriter, req *http.Request) {
	var body model.EditCommentRequest
	if !h.decode(w, req, &body) {
		return
	}
	comment, err := h.ctrl.EditComment(req.Context(),
		model.Session{VisitorID: body.UserID},
		model.ItemKey{Type: body.ItemType, ID: body.ItemID},
		req.PathValue("id"), body.Text)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, http.StatusOK, comment)
}

// DeleteComment handles DELETE /comments/{id}?itemId=&itemType=&userId=.
func (h *Handler) DeleteComment(w http.ResponseWriter, req *http.Request) {
	sess := model.Session{VisitorID: model.VisitorID(req.URL.Query().Get("userId"))}
	if err := h.ctrl.DeleteComment(req.Context(), sess, itemFromQuery(req), req.PathValue("id")); err != nil {
		h.writeError(w, req, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func itemFromQuery(req *http.Request) model.ItemKey {
	q := req.URL.Query()
	return model.ItemKey{Type: model.ItemType(q.Get("itemType")), ID: model.ItemID(q.Get("itemId"))}
}

func (h *Handler) decode(w http.ResponseWriter, req *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		case "gte", "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be between %d and %d", fe.Field(), model.MinRating, model.MaxRating))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return strings.Join(msgs, "; ")
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	if err := httputil.WriteJSON(w, status, v); err != nil {
		h.logger.Error("Response encode error", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, req *http.Request, err error) {
	switch {
	case errors.Is(err, feedback.ErrInvalidInput):
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, feedback.ErrNotOwner):
		httputil.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, feedback.ErrNotFound):
		httputil.WriteError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("Feedback request failed", zap.String("method", req.Method), zap.String("path", req.URL.Path), zap.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
