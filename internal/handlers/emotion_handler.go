// internal/handlers/emotion_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rkrkrk1234/diarygarden/internal/middleware"
	"github.com/rkrkrk1234/diarygarden/internal/service"
	"github.com/rkrkrk1234/diarygarden/internal/webutil"
)

// EmotionHandler は感情分析関連のエンドポイントを扱います
type EmotionHandler struct {
	emotionService service.EmotionService
	logger         *slog.Logger
}

func NewEmotionHandler(emotionService service.EmotionService, logger *slog.Logger) *EmotionHandler {
	return &EmotionHandler{
		emotionService: emotionService,
		logger:         logger.With("handler", "EmotionHandler"),
	}
}

// GetByDiary は GET /api/emotions/{diaryId}
func (h *EmotionHandler) GetByDiary(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	diaryID := chi.URLParam(r, "diaryId")
	analysis, err := h.emotionService.GetByDiaryID(r.Context(), uid, diaryID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, analysis, "", logger)
}

// Recompute は POST /api/emotions/{diaryId}/recompute
// ダイアリー本文を分析し直し、結果を上書き保存します。
func (h *EmotionHandler) Recompute(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	diaryID := chi.URLParam(r, "diaryId")
	analysis, err := h.emotionService.Recompute(r.Context(), uid, diaryID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, analysis, "感情分析を実行しました", logger)
}
