// internal/handlers/tree_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rkrkrk1234/diarygarden/internal/middleware"
	"github.com/rkrkrk1234/diarygarden/internal/model"
	"github.com/rkrkrk1234/diarygarden/internal/service"
	"github.com/rkrkrk1234/diarygarden/internal/webutil"
)

// TreeHandler は木関連のエンドポイントを扱います
type TreeHandler struct {
	treeService service.TreeService
	logger      *slog.Logger
}

func NewTreeHandler(treeService service.TreeService, logger *slog.Logger) *TreeHandler {
	return &TreeHandler{
		treeService: treeService,
		logger:      logger.With("handler", "TreeHandler"),
	}
}

// Create は POST /api/trees
func (h *TreeHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CreateTreeRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	tree, err := h.treeService.CreateTree(r.Context(), uid, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusCreated, tree, "木を作成しました", logger)
}

// List は GET /api/trees?status=active
func (h *TreeHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	treeStatus := r.URL.Query().Get("status")
	trees, err := h.treeService.ListTrees(r.Context(), uid, treeStatus)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, trees, "", logger)
}

// GetByID は GET /api/trees/{treeId}
func (h *TreeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	treeID := chi.URLParam(r, "treeId")
	tree, err := h.treeService.GetTree(r.Context(), uid, treeID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, tree, "", logger)
}

// Update は PUT /api/trees/{treeId}
func (h *TreeHandler) Update(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateTreeRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	treeID := chi.URLParam(r, "treeId")
	tree, err := h.treeService.UpdateTree(r.Context(), uid, treeID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, tree, "木を更新しました", logger)
}

// Delete は DELETE /api/trees/{treeId}
func (h *TreeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	treeID := chi.URLParam(r, "treeId")
	if err := h.treeService.DeleteTree(r.Context(), uid, treeID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, nil, "木を削除しました", logger)
}
