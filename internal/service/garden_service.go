// internal/service/garden_service.go
package service

import (
	"context"
	"errors"

	"github.com/rkrkrk1234/diarygarden/internal/middleware"
	"github.com/rkrkrk1234/diarygarden/internal/model"
	"github.com/rkrkrk1234/diarygarden/internal/repository"
)

// GardenService はユーザーごとのガーデン状態 (木の本数) を管理します。
// ガーデンはユーザーにつき1つで、ドキュメントIDはユーザーIDと同一。
type GardenService interface {
	UpsertGarden(ctx context.Context, userID string, req *model.UpsertGardenRequest) (*model.Garden, error)
	GetUserGarden(ctx context.Context, userID string) (*model.Garden, error)
	GetGardenByID(ctx context.Context, userID, gardenID string) (*model.Garden, error)
	UpdateGarden(ctx context.Context, userID, gardenID string, req *model.UpdateGardenRequest) (*model.Garden, error)
	DeleteGarden(ctx context.Context, userID, gardenID string) error
}

type gardenService struct {
	gardenRepo repository.GardenRepository
}

func NewGardenService(gardenRepo repository.GardenRepository) GardenService {
	return &gardenService{gardenRepo: gardenRepo}
}

// UpsertGarden はガーデンを作成または上書きします。
// ドキュメントIDをユーザーIDに固定しているため、同時リクエストでも
// ガーデンが重複することはない。上書き時は作成日時を既存のまま引き継ぐ。
func (s *gardenService) UpsertGarden(ctx context.Context, userID string, req *model.UpsertGardenRequest) (*model.Garden, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	garden := &model.Garden{
		UserID:    userID,
		TreeCount: *req.TreeCount,
	}
	existing, err := s.gardenRepo.FindByUserID(ctx, userID)
	if err == nil {
		garden.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to find garden before upsert", "error", err)
		return nil, model.ErrInternalServer
	}
	saved, err := s.gardenRepo.Upsert(ctx, garden)
	if err != nil {
		logger.Error("Failed to upsert garden", "error", err)
		return nil, model.ErrInternalServer
	}
	logger.Info("Garden upserted", "tree_count", saved.TreeCount)
	return saved, nil
}

// GetUserGarden はユーザーのガーデンを返し、無ければ空のガーデンを作ります。
func (s *gardenService) GetUserGarden(ctx context.Context, userID string) (*model.Garden, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	garden, err := s.gardenRepo.FindByUserID(ctx, userID)
	if err == nil {
		return garden, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to find garden", "error", err)
		return nil, model.ErrInternalServer
	}

	created, err := s.gardenRepo.Upsert(ctx, &model.Garden{UserID: userID, TreeCount: 0})
	if err != nil {
		logger.Error("Failed to create initial garden", "error", err)
		return nil, model.ErrInternalServer
	}
	logger.Info("Created initial garden")
	return created, nil
}

func (s *gardenService) GetGardenByID(ctx context.Context, userID, gardenID string) (*model.Garden, error) {
	garden, err := s.gardenRepo.FindByID(ctx, gardenID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("GARDEN_NOT_FOUND", "ガーデンが見つかりません", "", model.ErrNotFound)
		}
		return nil, model.ErrInternalServer
	}
	if garden.UserID != userID {
		return nil, model.NewAppError("FORBIDDEN", "このガーデンにはアクセスできません", "", model.ErrForbidden)
	}
	return garden, nil
}

// UpdateGarden は既存ガーデンの部分更新を行います。
func (s *gardenService) UpdateGarden(ctx context.Context, userID, gardenID string, req *model.UpdateGardenRequest) (*model.Garden, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "garden_id", gardenID)

	garden, err := s.GetGardenByID(ctx, userID, gardenID)
	if err != nil {
		return nil, err
	}

	if req.TreeCount != nil {
		garden.TreeCount = *req.TreeCount
	}

	updated, err := s.gardenRepo.Upsert(ctx, garden)
	if err != nil {
		logger.Error("Failed to update garden", "error", err)
		return nil, model.ErrInternalServer
	}
	logger.Info("Garden updated", "tree_count", updated.TreeCount)
	return updated, nil
}

func (s *gardenService) DeleteGarden(ctx context.Context, userID, gardenID string) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "garden_id", gardenID)

	if _, err := s.GetGardenByID(ctx, userID, gardenID); err != nil {
		return err
	}
	if err := s.gardenRepo.Delete(ctx, gardenID); err != nil {
		logger.Error("Failed to delete garden", "error", err)
		return model.ErrInternalServer
	}
	logger.Info("Garden deleted")
	return nil
}
