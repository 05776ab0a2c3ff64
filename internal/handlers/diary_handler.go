// internal/handlers/diary_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rkrkrk1234/diarygarden/internal/middleware"
	"github.com/rkrkrk1234/diarygarden/internal/model"
	"github.com/rkrkrk1234/diarygarden/internal/service"
	"github.com/rkrkrk1234/diarygarden/internal/webutil"
)

// DiaryHandler はダイアリー関連のエンドポイントを扱います
type DiaryHandler struct {
	diaryService service.DiaryService
	logger       *slog.Logger
}

func NewDiaryHandler(diaryService service.DiaryService, logger *slog.Logger) *DiaryHandler {
	return &DiaryHandler{
		diaryService: diaryService,
		logger:       logger.With("handler", "DiaryHandler"),
	}
}

// Create は POST /api/diaries
func (h *DiaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CreateDiaryRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	diary, err := h.diaryService.CreateDiary(r.Context(), uid, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusCreated, diary, "ダイアリーを作成しました", logger)
}

// List は GET /api/diaries?limit=20&lastDocId=xxx
func (h *DiaryHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	limit := 0
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		limit, err = strconv.Atoi(limitParam)
		if err != nil || limit < 0 {
			appErr := model.NewAppError("INVALID_LIMIT", "limit の値が不正です", "limit", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
	}
	lastDocID := r.URL.Query().Get("lastDocId")

	diaries, err := h.diaryService.ListDiaries(r.Context(), uid, limit, lastDocID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, diaries, "", logger)
}

// Count は GET /api/diaries/count
func (h *DiaryHandler) Count(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	count, err := h.diaryService.CountDiaries(r.Context(), uid)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, map[string]int64{"count": count}, "", logger)
}

// ListByTree は GET /api/diaries/tree/{treeId}
func (h *DiaryHandler) ListByTree(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	treeID := chi.URLParam(r, "treeId")
	diaries, err := h.diaryService.ListDiariesByTree(r.Context(), uid, treeID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, diaries, "", logger)
}

// GetByID は GET /api/diaries/{diaryId}
func (h *DiaryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	diaryID := chi.URLParam(r, "diaryId")
	diary, err := h.diaryService.GetDiary(r.Context(), uid, diaryID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, diary, "", logger)
}

// Update は PUT /api/diaries/{diaryId}
func (h *DiaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateDiaryRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	diaryID := chi.URLParam(r, "diaryId")
	diary, err := h.diaryService.UpdateDiary(r.Context(), uid, diaryID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, diary, "ダイアリーを更新しました", logger)
}

// Delete は DELETE /api/diaries/{diaryId}
func (h *DiaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	diaryID := chi.URLParam(r, "diaryId")
	if err := h.diaryService.DeleteDiary(r.Context(), uid, diaryID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, nil, "ダイアリーを削除しました", logger)
}
