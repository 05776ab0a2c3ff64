// internal/handlers/garden_handler.go
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

// GardenHandler はガーデン関連のエンドポイントを扱います
type GardenHandler struct {
	gardenService service.GardenService
	logger        *slog.Logger
}

func NewGardenHandler(gardenService service.GardenService, logger *slog.Logger) *GardenHandler {
	return &GardenHandler{
		gardenService: gardenService,
		logger:        logger.With("handler", "GardenHandler"),
	}
}

// Upsert は POST /api/gardens
func (h *GardenHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpsertGardenRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	garden, err := h.gardenService.UpsertGarden(r.Context(), uid, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, garden, "ガーデンを保存しました", logger)
}

// GetMine は GET /api/gardens/me
func (h *GardenHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	garden, err := h.gardenService.GetUserGarden(r.Context(), uid)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, garden, "", logger)
}

// GetByID は GET /api/gardens/{gardenId}
func (h *GardenHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	gardenID := chi.URLParam(r, "gardenId")
	garden, err := h.gardenService.GetGardenByID(r.Context(), uid, gardenID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, garden, "", logger)
}

// Update は PUT /api/gardens/{gardenId}
func (h *GardenHandler) Update(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateGardenRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	gardenID := chi.URLParam(r, "gardenId")
	garden, err := h.gardenService.UpdateGarden(r.Context(), uid, gardenID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, garden, "ガーデンを更新しました", logger)
}

// Delete は DELETE /api/gardens/{gardenId}
func (h *GardenHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	gardenID := chi.URLParam(r, "gardenId")
	if err := h.gardenService.DeleteGarden(r.Context(), uid, gardenID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, nil, "ガーデンを削除しました", logger)
}
