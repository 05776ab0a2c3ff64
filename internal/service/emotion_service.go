// internal/service/emotion_service.go
package service

import (
	"context"
	"errors"

	"github.com/rkrkrk1234/diarygarden/internal/middleware"
	"github.com/rkrkrk1234/diarygarden/internal/model"
	"github.com/rkrkrk1234/diarygarden/internal/repository"
)

// EmotionService はダイアリーの感情分析結果の取得と再計算を提供します。
type EmotionService interface {
	GetByDiaryID(ctx context.Context, userID, diaryID string) (*model.EmotionAnalysis, error)
	Recompute(ctx context.Context, userID, diaryID string) (*model.EmotionAnalysis, error)
}

type emotionService struct {
	diaryService DiaryService
	emotionRepo  repository.EmotionAnalysisRepository
	analyzer     EmotionAnalyzer
}

func NewEmotionService(
	diaryService DiaryService,
	emotionRepo repository.EmotionAnalysisRepository,
	analyzer EmotionAnalyzer,
) EmotionService {
	return &emotionService{
		diaryService: diaryService,
		emotionRepo:  emotionRepo,
		analyzer:     analyzer,
	}
}

// GetByDiaryID は保存済みの分析結果を返します。所有者チェックはダイアリー側で行う。
func (s *emotionService) GetByDiaryID(ctx context.Context, userID, diaryID string) (*model.EmotionAnalysis, error) {
	if _, err := s.diaryService.GetDiary(ctx, userID, diaryID); err != nil {
		return nil, err
	}

	analysis, err := s.emotionRepo.FindByDiaryID(ctx, diaryID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("EMOTION_NOT_FOUND", "感情分析の結果がまだありません", "", model.ErrNotFound)
		}
		return nil, model.ErrInternalServer
	}
	return analysis, nil
}

// Recompute はダイアリー本文を分析し直し、結果を上書き保存します。
// 分析自体は失敗してもフォールバック結果が保存されるため、
// この操作が外部APIの障害で失敗することはない。
func (s *emotionService) Recompute(ctx context.Context, userID, diaryID string) (*model.EmotionAnalysis, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "diary_id", diaryID)

	diary, err := s.diaryService.GetDiary(ctx, userID, diaryID)
	if err != nil {
		return nil, err
	}

	analysis := s.analyzer.Analyze(ctx, diary)
	saved, err := s.emotionRepo.Upsert(ctx, analysis)
	if err != nil {
		logger.Error("Failed to save emotion analysis", "error", err)
		return nil, model.ErrInternalServer
	}
	logger.Info("Emotion analysis saved", "dominant_emotion", saved.DominantEmotion)
	return saved, nil
}
