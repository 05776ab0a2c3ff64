// internal/model/diary.go
package model

import "time"

// Diary はユーザーと木に紐づく日記エントリです。
type Diary struct {
	ID          string    `json:"id" firestore:"-"`
	UserID      string    `json:"userId" firestore:"user_id"`
	TreeID      string    `json:"treeId" firestore:"tree_id"`
	Content     string    `json:"content" firestore:"content"`
	WrittenDate time.Time `json:"writtenDate" firestore:"written_date"`
	CreatedAt   time.Time `json:"createdAt" firestore:"created_at,serverTimestamp"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updated_at,serverTimestamp"`
}

// CreateDiaryRequest はダイアリー作成リクエスト
type CreateDiaryRequest struct {
	TreeID  string `json:"treeId" validate:"required"`
	Content string `json:"content" validate:"required,max=5000"`
}

// UpdateDiaryRequest は部分更新リクエスト。nil のフィールドは変更しない。
type UpdateDiaryRequest struct {
	TreeID  *string `json:"treeId"`
	Content *string `json:"content" validate:"omitempty,max=5000"`
}
