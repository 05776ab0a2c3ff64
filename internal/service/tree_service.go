// internal/service/tree_service.go
package service

import (
	"context"
	"errors"

	"github.com/rkrkrk1234/diarygarden/internal/middleware"
	"github.com/rkrkrk1234/diarygarden/internal/model"
	"github.com/rkrkrk1234/diarygarden/internal/repository"
)

// TreeService は週単位の成長記録 (木) を管理します。
type TreeService interface {
	CreateTree(ctx context.Context, userID string, req *model.CreateTreeRequest) (*model.Tree, error)
	GetTree(ctx context.Context, userID, treeID string) (*model.Tree, error)
	ListTrees(ctx context.Context, userID, treeStatus string) ([]*model.Tree, error)
	UpdateTree(ctx context.Context, userID, treeID string, req *model.UpdateTreeRequest) (*model.Tree, error)
	DeleteTree(ctx context.Context, userID, treeID string) error
}

type treeService struct {
	treeRepo repository.TreeRepository
}

func NewTreeService(treeRepo repository.TreeRepository) TreeService {
	return &treeService{treeRepo: treeRepo}
}

// CreateTree は新しい木を作成します。ステータス未指定時は active。
func (s *treeService) CreateTree(ctx context.Context, userID string, req *model.CreateTreeRequest) (*model.Tree, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if req.WeekEndDate.Before(req.WeekShortDate) {
		return nil, model.NewAppError("INVALID_WEEK_RANGE", "週の終了日は開始日より後である必要があります", "weekEndDate", model.ErrInvalidInput)
	}

	treeStatus := req.Status
	if treeStatus == "" {
		treeStatus = model.TreeStatusActive
	}

	tree := &model.Tree{
		UserID:          userID,
		WeekShortDate:   req.WeekShortDate,
		WeekEndDate:     req.WeekEndDate,
		DiaryLeafColors: req.DiaryLeafColors,
		TreeSnapshot:    req.TreeSnapshot,
		Status:          treeStatus,
	}
	saved, err := s.treeRepo.Save(ctx, tree)
	if err != nil {
		logger.Error("Failed to create tree", "error", err)
		return nil, model.ErrInternalServer
	}
	logger.Info("Tree created", "tree_id", saved.ID, "status", saved.Status)
	return saved, nil
}

func (s *treeService) GetTree(ctx context.Context, userID, treeID string) (*model.Tree, error) {
	tree, err := s.treeRepo.FindByID(ctx, treeID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("TREE_NOT_FOUND", "木が見つかりません", "", model.ErrNotFound)
		}
		return nil, model.ErrInternalServer
	}
	if tree.UserID != userID {
		return nil, model.NewAppError("FORBIDDEN", "この木にはアクセスできません", "", model.ErrForbidden)
	}
	return tree, nil
}

// ListTrees はユーザーの木を作成日時の降順で返します。
// treeStatus が空でなければそのステータスだけに絞る。
func (s *treeService) ListTrees(ctx context.Context, userID, treeStatus string) ([]*model.Tree, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if treeStatus != "" && !isValidTreeStatus(treeStatus) {
		return nil, model.NewAppError("INVALID_STATUS", "ステータスの値が不正です", "status", model.ErrInvalidInput)
	}

	var (
		trees []*model.Tree
		err   error
	)
	if treeStatus == "" {
		trees, err = s.treeRepo.FindByUserID(ctx, userID)
	} else {
		trees, err = s.treeRepo.FindByUserIDAndStatus(ctx, userID, treeStatus)
	}
	if err != nil {
		logger.Error("Failed to list trees", "error", err)
		return nil, model.ErrInternalServer
	}
	return trees, nil
}

// UpdateTree は木の部分更新を行います。
// マージ後の週の範囲が逆転していないことを検証してから保存する。
func (s *treeService) UpdateTree(ctx context.Context, userID, treeID string, req *model.UpdateTreeRequest) (*model.Tree, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "tree_id", treeID)

	tree, err := s.GetTree(ctx, userID, treeID)
	if err != nil {
		return nil, err
	}

	if req.WeekShortDate != nil {
		tree.WeekShortDate = *req.WeekShortDate
	}
	if req.WeekEndDate != nil {
		tree.WeekEndDate = *req.WeekEndDate
	}
	if req.DiaryLeafColors != nil {
		tree.DiaryLeafColors = *req.DiaryLeafColors
	}
	if req.TreeSnapshot != nil {
		tree.TreeSnapshot = *req.TreeSnapshot
	}
	if req.Status != nil {
		if !isValidTreeStatus(*req.Status) {
			return nil, model.NewAppError("INVALID_STATUS", "ステータスの値が不正です", "status", model.ErrInvalidInput)
		}
		tree.Status = *req.Status
	}

	if tree.WeekEndDate.Before(tree.WeekShortDate) {
		return nil, model.NewAppError("INVALID_WEEK_RANGE", "週の終了日は開始日より後である必要があります", "weekEndDate", model.ErrInvalidInput)
	}

	updated, err := s.treeRepo.Save(ctx, tree)
	if err != nil {
		logger.Error("Failed to update tree", "error", err)
		return nil, model.ErrInternalServer
	}
	logger.Info("Tree updated", "status", updated.Status)
	return updated, nil
}

// DeleteTree は木を削除します。木に紐づく日記は削除しない。
func (s *treeService) DeleteTree(ctx context.Context, userID, treeID string) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "tree_id", treeID)

	if _, err := s.GetTree(ctx, userID, treeID); err != nil {
		return err
	}
	if err := s.treeRepo.Delete(ctx, treeID); err != nil {
		logger.Error("Failed to delete tree", "error", err)
		return model.ErrInternalServer
	}
	logger.Info("Tree deleted")
	return nil
}

func isValidTreeStatus(treeStatus string) bool {
	switch treeStatus {
	case model.TreeStatusActive, model.TreeStatusInactive, model.TreeStatusCompleted:
		return true
	}
	return false
}
