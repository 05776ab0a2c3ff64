// internal/model/user.go
package model

import "time"

// 認証プロバイダの種別
const (
	AuthProviderUsername = "USERNAME" // アイディ/パスワード登録
	AuthProviderGoogle   = "GOOGLE"   // Googleソーシャルログイン
)

// User はユーザープロファイルのエンティティです。
// Username か Email のどちらか一方がアカウントの識別子になる
// (AuthProvider が USERNAME なら Username、GOOGLE なら Email)。
type User struct {
	ID              string    `json:"id" firestore:"-"`
	UID             string    `json:"uid" firestore:"uid"`
	Username        string    `json:"username,omitempty" firestore:"username"`
	PasswordHash    string    `json:"-" firestore:"password_hash"`
	Email           string    `json:"email,omitempty" firestore:"email"`
	Nickname        string    `json:"nickname,omitempty" firestore:"nickname"`
	DisplayName     string    `json:"displayName,omitempty" firestore:"display_name"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty" firestore:"profile_image_url"`
	AuthProvider    string    `json:"authProvider" firestore:"auth_provider"`
	CreatedAt       time.Time `json:"createdAt" firestore:"created_at,serverTimestamp"`
	UpdatedAt       time.Time `json:"updatedAt" firestore:"updated_at,serverTimestamp"`
}

// UpdateUserRequest はプロフィール部分更新のリクエストボディ
type UpdateUserRequest struct {
	DisplayName     *string `json:"displayName" validate:"omitempty,max=50"`
	ProfileImageURL *string `json:"profileImageUrl" validate:"omitempty,url"`
}
