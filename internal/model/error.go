// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー種別。
// webutil.HandleError がこの種別を見てHTTPステータスコードへ変換する。
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用
	ErrInternalServer = errors.New("internal server error")
)

// AppError はエラーコード・メッセージ・対象フィールドを持つアプリケーションエラーです。
// Err には上記のセンチネルエラー（または根本原因）をラップします。
type AppError struct {
	Code    string // 機械可読なエラーコード (例: "VALIDATION_ERROR")
	Message string // クライアントに返すメッセージ
	Field   string // エラーが発生したフィールド名 (任意)
	Err     error  // ラップされたエラー
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Field:   field,
		Err:     err,
	}
}
