// internal/model/auth.go
package model

// RegisterRequest は会員登録APIのリクエストボディ
type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=30,alphanum"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	DisplayName string `json:"displayName" validate:"required,max=50"`
}

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest はGoogleソーシャルログインのリクエストボディ
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// AuthResponse は認証成功時のレスポンス
type AuthResponse struct {
	Token       string `json:"token"`
	UID         string `json:"uid"`
	Identifier  string `json:"identifier"` // username または email
	DisplayName string `json:"displayName,omitempty"`
}

// AuthIdentity は検証済みトークンから解決したユーザー情報
type AuthIdentity struct {
	UID        string `json:"uid"`
	Email      string `json:"email,omitempty"`
	Name       string `json:"name,omitempty"`
	PictureURL string `json:"pictureUrl,omitempty"`
}
