// internal/model/tree.go
package model

import "time"

// Tree のステータス
const (
	TreeStatusActive    = "active"
	TreeStatusInactive  = "inactive"
	TreeStatusCompleted = "completed"
)

// Tree は1週間単位の成長ユニットです。
// DiaryLeafColors はその週のダイアリーが寄与した葉の色のサマリ文字列、
// TreeSnapshot はエンコード済みのスナップショット画像。
type Tree struct {
	ID              string    `json:"id" firestore:"-"`
	UserID          string    `json:"userId" firestore:"user_id"`
	WeekShortDate   time.Time `json:"weekShortDate" firestore:"week_short_date"`
	WeekEndDate     time.Time `json:"weekEndDate" firestore:"week_end_date"`
	DiaryLeafColors string    `json:"diaryLeafColors,omitempty" firestore:"diary_leaf_colors"`
	TreeSnapshot    string    `json:"treeSnapshot,omitempty" firestore:"tree_snapshot"`
	Status          string    `json:"status" firestore:"status"`
	CreatedAt       time.Time `json:"createdAt" firestore:"created_at,serverTimestamp"`
	UpdatedAt       time.Time `json:"updatedAt" firestore:"updated_at,serverTimestamp"`
}

// CreateTreeRequest は木の作成リクエスト
type CreateTreeRequest struct {
	WeekShortDate   time.Time `json:"weekShortDate" validate:"required"`
	WeekEndDate     time.Time `json:"weekEndDate" validate:"required"`
	DiaryLeafColors string    `json:"diaryLeafColors"`
	TreeSnapshot    string    `json:"treeSnapshot"`
	Status          string    `json:"status" validate:"omitempty,oneof=active inactive completed"`
}

// UpdateTreeRequest は部分更新リクエスト。nil のフィールドは変更しない。
type UpdateTreeRequest struct {
	WeekShortDate   *time.Time `json:"weekShortDate"`
	WeekEndDate     *time.Time `json:"weekEndDate"`
	DiaryLeafColors *string    `json:"diaryLeafColors"`
	TreeSnapshot    *string    `json:"treeSnapshot"`
	Status          *string    `json:"status" validate:"omitempty,oneof=active inactive completed"`
}
