// internal/service/diary_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/rkrkrk1234/diarygarden/internal/middleware"
	"github.com/rkrkrk1234/diarygarden/internal/model"
	"github.com/rkrkrk1234/diarygarden/internal/repository"
)

// DiaryService はダイアリーの CRUD と一覧・件数取得を提供します。
type DiaryService interface {
	CreateDiary(ctx context.Context, userID string, req *model.CreateDiaryRequest) (*model.Diary, error)
	GetDiary(ctx context.Context, userID, diaryID string) (*model.Diary, error)
	ListDiaries(ctx context.Context, userID string, limit int, lastDocID string) ([]*model.Diary, error)
	ListDiariesByTree(ctx context.Context, userID, treeID string) ([]*model.Diary, error)
	CountDiaries(ctx context.Context, userID string) (int64, error)
	UpdateDiary(ctx context.Context, userID, diaryID string, req *model.UpdateDiaryRequest) (*model.Diary, error)
	DeleteDiary(ctx context.Context, userID, diaryID string) error
}

type diaryService struct {
	diaryRepo   repository.DiaryRepository
	treeRepo    repository.TreeRepository
	emotionRepo repository.EmotionAnalysisRepository
}

func NewDiaryService(
	diaryRepo repository.DiaryRepository,
	treeRepo repository.TreeRepository,
	emotionRepo repository.EmotionAnalysisRepository,
) DiaryService {
	return &diaryService{
		diaryRepo:   diaryRepo,
		treeRepo:    treeRepo,
		emotionRepo: emotionRepo,
	}
}

// CreateDiary はダイアリーを作成します。記入日はサーバー側の現在時刻。
// 紐づけ先の木が本人のものであることを確認してから保存する。
func (s *diaryService) CreateDiary(ctx context.Context, userID string, req *model.CreateDiaryRequest) (*model.Diary, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if err := s.checkTreeOwnership(ctx, userID, req.TreeID); err != nil {
		return nil, err
	}

	diary := &model.Diary{
		UserID:      userID,
		TreeID:      req.TreeID,
		Content:     req.Content,
		WrittenDate: time.Now(),
	}
	saved, err := s.diaryRepo.Save(ctx, diary)
	if err != nil {
		logger.Error("Failed to create diary", "error", err)
		return nil, model.ErrInternalServer
	}
	logger.Info("Diary created", "diary_id", saved.ID, "tree_id", saved.TreeID)
	return saved, nil
}

func (s *diaryService) GetDiary(ctx context.Context, userID, diaryID string) (*model.Diary, error) {
	diary, err := s.diaryRepo.FindByID(ctx, diaryID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("DIARY_NOT_FOUND", "ダイアリーが見つかりません", "", model.ErrNotFound)
		}
		return nil, model.ErrInternalServer
	}
	if diary.UserID != userID {
		return nil, model.NewAppError("FORBIDDEN", "このダイアリーにはアクセスできません", "", model.ErrForbidden)
	}
	return diary, nil
}

// ListDiaries は作成日時の降順でダイアリーを返します。
// ページングは limit が正の値のときだけ有効。limit なしの lastDocID は
// 無視して全件を返す (カーソルだけでは取得範囲が定まらないため)。
func (s *diaryService) ListDiaries(ctx context.Context, userID string, limit int, lastDocID string) ([]*model.Diary, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	var (
		diaries []*model.Diary
		err     error
	)
	if limit > 0 {
		diaries, err = s.diaryRepo.FindByUserIDWithPaging(ctx, userID, limit, lastDocID)
	} else {
		diaries, err = s.diaryRepo.FindByUserID(ctx, userID)
	}
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Failed to list diaries", "error", err)
		return nil, model.ErrInternalServer
	}
	return diaries, nil
}

func (s *diaryService) ListDiariesByTree(ctx context.Context, userID, treeID string) ([]*model.Diary, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "tree_id", treeID)

	if err := s.checkTreeOwnership(ctx, userID, treeID); err != nil {
		return nil, err
	}

	diaries, err := s.diaryRepo.FindByTreeID(ctx, treeID, userID)
	if err != nil {
		logger.Error("Failed to list diaries by tree", "error", err)
		return nil, model.ErrInternalServer
	}
	return diaries, nil
}

func (s *diaryService) CountDiaries(ctx context.Context, userID string) (int64, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	count, err := s.diaryRepo.CountByUserID(ctx, userID)
	if err != nil {
		logger.Error("Failed to count diaries", "error", err)
		return 0, model.ErrInternalServer
	}
	return count, nil
}

// UpdateDiary は部分更新を行います。treeId を差し替える場合は
// 差し替え先の木の所有者も検証する。
func (s *diaryService) UpdateDiary(ctx context.Context, userID, diaryID string, req *model.UpdateDiaryRequest) (*model.Diary, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "diary_id", diaryID)

	diary, err := s.GetDiary(ctx, userID, diaryID)
	if err != nil {
		return nil, err
	}

	if req.TreeID != nil && *req.TreeID != diary.TreeID {
		if err := s.checkTreeOwnership(ctx, userID, *req.TreeID); err != nil {
			return nil, err
		}
		diary.TreeID = *req.TreeID
	}
	if req.Content != nil {
		diary.Content = *req.Content
	}

	updated, err := s.diaryRepo.Save(ctx, diary)
	if err != nil {
		logger.Error("Failed to update diary", "error", err)
		return nil, model.ErrInternalServer
	}
	logger.Info("Diary updated")
	return updated, nil
}

// DeleteDiary はダイアリーを削除し、紐づく感情分析も一緒に削除します。
func (s *diaryService) DeleteDiary(ctx context.Context, userID, diaryID string) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "diary_id", diaryID)

	if _, err := s.GetDiary(ctx, userID, diaryID); err != nil {
		return err
	}
	if err := s.diaryRepo.Delete(ctx, diaryID); err != nil {
		logger.Error("Failed to delete diary", "error", err)
		return model.ErrInternalServer
	}
	if err := s.emotionRepo.DeleteByDiaryID(ctx, diaryID); err != nil {
		// ダイアリー本体は消えているので失敗扱いにはしない
		logger.Warn("Failed to delete emotion analysis for diary", "error", err)
	}
	logger.Info("Diary deleted")
	return nil
}

func (s *diaryService) checkTreeOwnership(ctx context.Context, userID, treeID string) error {
	tree, err := s.treeRepo.FindByID(ctx, treeID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("TREE_NOT_FOUND", "木が見つかりません", "treeId", model.ErrNotFound)
		}
		return model.ErrInternalServer
	}
	if tree.UserID != userID {
		return model.NewAppError("FORBIDDEN", "この木にはアクセスできません", "treeId", model.ErrForbidden)
	}
	return nil
}
