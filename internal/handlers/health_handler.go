// internal/handlers/health_handler.go
package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/rkrkrk1234/diarygarden/internal/middleware"
	"github.com/rkrkrk1234/diarygarden/internal/webutil"
)

// HealthHandler は死活監視とビルド情報のエンドポイントを扱います
type HealthHandler struct {
	version   string
	startedAt time.Time
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		version:   version,
		startedAt: time.Now(),
	}
}

// Health は GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	webutil.RespondWithSuccess(w, http.StatusOK, map[string]string{"status": "ok"}, "", logger)
}

// Info は GET /api/info
func (h *HealthHandler) Info(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	info := map[string]interface{}{
		"version":   h.version,
		"goVersion": runtime.Version(),
		"uptime":    time.Since(h.startedAt).String(),
	}
	webutil.RespondWithSuccess(w, http.StatusOK, info, "", logger)
}
