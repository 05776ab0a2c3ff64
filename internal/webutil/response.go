// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rkrkrk1234/diarygarden/internal/model"
)

// HandleError はエラーを解釈し、共通エンベロープのエラーレスポンスを返します。
// アプリケーションのエラーハンドリングはここに集約する。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}

	statusCode := MapErrorToStatusCode(err)

	var appErr *model.AppError
	var message string
	if errors.As(err, &appErr) {
		message = appErr.Message
	} else if statusCode != http.StatusInternalServerError {
		message = err.Error()
	} else {
		// 予期せぬエラーは詳細をログに残し、クライアントには汎用メッセージを返す
		logger.Error("Unhandled error", slog.Any("error", err))
		message = "サーバー内部でエラーが発生しました"
	}

	RespondWithJSON(w, statusCode, model.NewErrorResponse(message), logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします。
// 「見つからない」は常に404、「所有者でない」は常に403に統一する。
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	if errors.As(err, &appErr) && appErr.Err != nil {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":"レスポンス生成中にエラーが発生しました","data":null}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithSuccess は成功エンベロープでJSONレスポンスを返します
func RespondWithSuccess(w http.ResponseWriter, code int, data interface{}, message string, logger *slog.Logger) {
	RespondWithJSON(w, code, model.NewSuccessResponse(data, message), logger)
}
