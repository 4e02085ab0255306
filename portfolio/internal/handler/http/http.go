package http

import (
	"context"
	"errors"
	"net/http"

	catalogmodel "github.com/abhishek622/portfolioapp/catalog/pkg/model"
	feedbackmodel "github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/abhishek622/portfolioapp/internal/httputil"
	"github.com/abhishek622/portfolioapp/portfolio/internal/controller/portfolio"
	"github.com/abhishek622/portfolioapp/portfolio/pkg/model"
	"go.uber.org/zap"
)

type portfolioController interface {
	Get(ctx context.Context, key feedbackmodel.ItemKey) (*model.ItemDetails, error)
	List(ctx context.Context, itemType feedbackmodel.ItemType, category catalogmodel.Category) ([]model.ItemSummary, error)
}

// Handler defines a portfolio HTTP handler.
type Handler struct {
	ctrl   portfolioController
	logger *zap.Logger
}

// New creates a new portfolio HTTP handler.
func New(ctrl portfolioController, logger *zap.Logger) *Handler {
	return &Handler{ctrl, logger}
}

// Register adds the portfolio routes under prefix.
func (h *Handler) Register(mux *http.ServeMux, prefix string) {
	mux.HandleFunc("GET "+prefix+"/items", h.ListItems)
	mux.HandleFunc("GET "+prefix+"/items/{type}/{id}", h.GetItemDetails)
}

// GetItemDetails handles GET /items/{type}/{id}.
func (h *Handler) GetItemDetails(w http.ResponseWriter, req *http.Request) {
	key := feedbackmodel.ItemKey{
		Type: feedbackmodel.ItemType(req.PathValue("type")),
		ID:   feedbackmodel.ItemID(req.PathValue("id")),
	}
	if !key.Valid() {
		httputil.WriteError(w, http.StatusBadRequest, "itemType must be one of [project achievement]")
		return
	}
	details, err := h.ctrl.Get(req.Context(), key)
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, details)
}

// ListItems handles GET /items?type=&category=.
func (h *Handler) ListItems(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	items, err := h.ctrl.List(req.Context(), feedbackmodel.ItemType(q.Get("type")), catalogmodel.Category(q.Get("category")))
	if err != nil {
		h.writeError(w, req, err)
		return
	}
	h.writeJSON(w, items)
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	if err := httputil.WriteJSON(w, http.StatusOK, v); err != nil {
		h.logger.Error("Response encode error", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, req *http.Request, err error) {
	switch {
	case errors.Is(err, portfolio.ErrNotFound):
		httputil.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, portfolio.ErrInvalidInput):
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("Portfolio request failed", zap.String("path", req.URL.Path), zap.Error(err))
		httputil.WriteError(w, http.StatusBadGateway, "catalog unavailable")
	}
}
