// internal/model/response.go
package model

// APIResponse は全エンドポイント共通のレスポンスエンベロープです。
// 成功時は Data に結果を格納し、失敗時は Success=false と Message のみを返します。
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

func NewErrorResponse(message string) APIResponse {
	return APIResponse{Success: false, Message: message, Data: nil}
}
