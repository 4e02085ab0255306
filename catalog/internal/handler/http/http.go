package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/abhishek622/portfolioapp/catalog/internal/controller/catalog"
	"github.com/abhishek622/portfolioapp/catalog/pkg/model"
	feedbackmodel "github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/abhishek622/portfolioapp/internal/httputil"
	"go.uber.org/zap"
)

type catalogController interface {
	Get(ctx context.Context, key feedbackmodel.ItemKey) (*model.Item, error)
	List(ctx context.Context, itemType feedbackmodel.ItemType, category model.Category) ([]*model.Item, error)
}

// Handler defines the catalog HTTP handler.
type Handler struct {
	ctrl   catalogController
	logger *zap.Logger
}

// New creates a new catalog HTTP handler.
func New(ctrl catalogController, logger *zap.Logger) *Handler {
	return &Handler{ctrl, logger}
}

// Register adds the catalog routes under prefix.
func (h *Handler) Register(mux *http.ServeMux, prefix string) {
	mux.HandleFunc("GET "+prefix+"/projects", h.list(feedbackmodel.ItemTypeProject))
	mux.HandleFunc("GET "+prefix+"/projects/{id}", h.get(feedbackmodel.ItemTypeProject))
	mux.HandleFunc("GET "+prefix+"/achievements", h.list(feedbackmodel.ItemTypeAchievement))
	mux.HandleFunc("GET "+prefix+"/achievements/{id}", h.get(feedbackmodel.ItemTypeAchievement))
}

// list handles GET /projects?type= and GET /achievements?type=.
func (h *Handler) list(itemType feedbackmodel.ItemType) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		items, err := h.ctrl.List(req.Context(), itemType, model.Category(req.URL.Query().Get("type")))
		if err != nil {
			h.writeError(w, req, err)
			return
		}
		h.writeJSON(w, items)
	}
}

// get handles GET /projects/{id} and GET /achievements/{id}.
func (h *Handler) get(itemType feedbackmodel.ItemType) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		key := feedbackmodel.ItemKey{Type: itemType, ID: feedbackmodel.ItemID(req.PathValue("id"))}
		item, err := h.ctrl.Get(req.Context(), key)
		if err != nil {
			h.writeError(w, req, err)
			return
		}
		h.writeJSON(w, item)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	if err := httputil.WriteJSON(w, http.StatusOK, v); err != nil {
		h.logger.Error("Response encode error", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, req *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidInput):
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrNotFound):
		httputil.WriteError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("Catalog request failed", zap.String("path", req.URL.Path), zap.Error(err))
		httputil.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
