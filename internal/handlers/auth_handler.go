// internal/handlers/auth_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/rkrkrk1234/diarygarden/internal/middleware"
	"github.com/rkrkrk1234/diarygarden/internal/model"
	"github.com/rkrkrk1234/diarygarden/internal/service"
	"github.com/rkrkrk1234/diarygarden/internal/webutil"
)

// AuthHandler は認証・アカウント関連のエンドポイントを扱います
type AuthHandler struct {
	authService service.AuthService
	logger      *slog.Logger
}

func NewAuthHandler(authService service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger.With("handler", "AuthHandler"),
	}
}

// Register は POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.RegisterRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	res, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusCreated, res, "アカウントを登録しました", logger)
}

// Login は POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.LoginRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	res, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, res, "ログインしました", logger)
}

// GoogleLogin は POST /api/auth/google
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.GoogleLoginRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	res, err := h.authService.GoogleLogin(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, res, "ログインしました", logger)
}

// VerifyToken は POST /api/auth/verify
// Authorization ヘッダーの Bearer トークンを検証し、アカウント情報を返します。
func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	token, ok := middleware.ExtractBearerToken(r)
	if !ok {
		appErr := model.NewAppError("UNAUTHORIZED", "トークンが指定されていません", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}

	res, err := h.authService.VerifyToken(r.Context(), token)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, res, "トークンは有効です", logger)
}

// GetMe は GET /api/auth/user
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.authService.GetUser(r.Context(), uid)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, user, "", logger)
}

// UpdateMe は PUT /api/auth/user
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateUserRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.authService.UpdateUser(r.Context(), uid, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, user, "ユーザー情報を更新しました", logger)
}

// DeleteMe は DELETE /api/auth/user
func (h *AuthHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	uid, err := middleware.GetUIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.authService.DeleteUser(r.Context(), uid); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithSuccess(w, http.StatusOK, nil, "アカウントを削除しました", logger)
}
