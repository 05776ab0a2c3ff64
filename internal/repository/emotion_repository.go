// internal/repository/emotion_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rkrkrk1234/diarygarden/internal/middleware"
	"github.com/rkrkrk1234/diarygarden/internal/model"
)

// EmotionAnalysisRepository は感情分析結果の永続化アダプタです。
// ドキュメントID = diaryId。再計算は単一の Set で丸ごと置き換えるため、
// find-then-create のレースは発生しない。
type EmotionAnalysisRepository interface {
	Upsert(ctx context.Context, analysis *model.EmotionAnalysis) (*model.EmotionAnalysis, error)
	FindByDiaryID(ctx context.Context, diaryID string) (*model.EmotionAnalysis, error)
	DeleteByDiaryID(ctx context.Context, diaryID string) error
}

type firestoreEmotionAnalysisRepository struct {
	client *firestore.Client
}

func NewFirestoreEmotionAnalysisRepository(client *firestore.Client) EmotionAnalysisRepository {
	return &firestoreEmotionAnalysisRepository{client: client}
}

func (r *firestoreEmotionAnalysisRepository) Upsert(ctx context.Context, analysis *model.EmotionAnalysis) (*model.EmotionAnalysis, error) {
	logger := middleware.GetLogger(ctx)

	analysis.ID = analysis.DiaryID
	analysis.UpdatedAt = time.Time{}

	wr, err := r.client.Collection(emotionsCollection).Doc(analysis.ID).Set(ctx, analysis)
	if err != nil {
		logger.Error("Error upserting emotion analysis in Firestore",
			"error", err,
			"diary_id", analysis.DiaryID,
		)
		return nil, fmt.Errorf("firestoreEmotionAnalysisRepository.Upsert: %w", err)
	}
	stampWriteTime(wr, &analysis.CreatedAt, &analysis.UpdatedAt)
	return analysis, nil
}

func (r *firestoreEmotionAnalysisRepository) FindByDiaryID(ctx context.Context, diaryID string) (*model.EmotionAnalysis, error) {
	logger := middleware.GetLogger(ctx)

	doc, err := r.client.Collection(emotionsCollection).Doc(diaryID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding emotion analysis in Firestore",
			"error", err,
			"diary_id", diaryID,
		)
		return nil, fmt.Errorf("firestoreEmotionAnalysisRepository.FindByDiaryID: %w", err)
	}

	var analysis model.EmotionAnalysis
	if err := doc.DataTo(&analysis); err != nil {
		return nil, fmt.Errorf("firestoreEmotionAnalysisRepository.FindByDiaryID: %w", err)
	}
	analysis.ID = doc.Ref.ID
	return &analysis, nil
}

func (r *firestoreEmotionAnalysisRepository) DeleteByDiaryID(ctx context.Context, diaryID string) error {
	logger := middleware.GetLogger(ctx)

	if _, err := r.client.Collection(emotionsCollection).Doc(diaryID).Delete(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			// ダイアリー削除時のカスケードで呼ばれるため、存在しなくてもエラーにしない
			return nil
		}
		logger.Error("Error deleting emotion analysis in Firestore",
			"error", err,
			"diary_id", diaryID,
		)
		return fmt.Errorf("firestoreEmotionAnalysisRepository.DeleteByDiaryID: %w", err)
	}
	return nil
}
