// internal/model/garden.go
package model

import "time"

// Garden はユーザーごとに1つだけ存在する集計エンティティです。
// ドキュメントIDにユーザーIDをそのまま使うことで、
// find-then-create のレースなしに1ユーザー1ガーデンを保証する。
type Garden struct {
	ID        string    `json:"id" firestore:"-"`
	UserID    string    `json:"userId" firestore:"user_id"`
	TreeCount int       `json:"treeCount" firestore:"tree_count"`
	CreatedAt time.Time `json:"createdAt" firestore:"created_at,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updated_at,serverTimestamp"`
}

// UpsertGardenRequest はガーデンの作成/更新リクエスト
type UpsertGardenRequest struct {
	TreeCount *int `json:"treeCount" validate:"required,min=0"`
}

// UpdateGardenRequest は部分更新リクエスト
type UpdateGardenRequest struct {
	TreeCount *int `json:"treeCount" validate:"omitempty,min=0"`
}
