// internal/model/emotion.go
package model

import "time"

// 感情分析が実行できない場合のフォールバック値
const (
	NeutralEmotion        = "neutral"
	NeutralEmotionComment = "感情分析を実行できませんでした"
)

// EmotionAnalysis はダイアリー1件につき最大1件の派生レコードです。
// ドキュメントIDには diaryId をそのまま使い、再計算時は丸ごと置き換える。
type EmotionAnalysis struct {
	ID              string             `json:"id" firestore:"-"`
	DiaryID         string             `json:"diaryId" firestore:"diary_id"`
	Result          map[string]float64 `json:"result" firestore:"result"`
	DominantEmotion string             `json:"dominantEmotion" firestore:"dominant_emotion"`
	Comment         string             `json:"comment,omitempty" firestore:"comment"`
	CreatedAt       time.Time          `json:"createdAt" firestore:"created_at,serverTimestamp"`
	UpdatedAt       time.Time          `json:"updatedAt" firestore:"updated_at,serverTimestamp"`
}

// NeutralEmotionResult は外部APIが利用できない場合のデフォルト分布を返します。
func NeutralEmotionResult() map[string]float64 {
	return map[string]float64{NeutralEmotion: 1.0}
}
