// internal/repository/garden_repository.go
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

// GardenRepository はガーデンの永続化アダプタです。
// ドキュメントIDにユーザーIDを使うため、Upsert は単一の Set 操作で完結し、
// 同一ユーザーの並行リクエストでもガーデンが重複しない。
type GardenRepository interface {
	Upsert(ctx context.Context, garden *model.Garden) (*model.Garden, error)
	FindByID(ctx context.Context, id string) (*model.Garden, error)
	FindByUserID(ctx context.Context, userID string) (*model.Garden, error)
	Delete(ctx context.Context, id string) error
}

type firestoreGardenRepository struct {
	client *firestore.Client
}

func NewFirestoreGardenRepository(client *firestore.Client) GardenRepository {
	return &firestoreGardenRepository{client: client}
}

func (r *firestoreGardenRepository) Upsert(ctx context.Context, garden *model.Garden) (*model.Garden, error) {
	logger := middleware.GetLogger(ctx)

	// ドキュメントID = ユーザーID (1ユーザー1ガーデンの保証)
	garden.ID = garden.UserID
	garden.UpdatedAt = time.Time{}

	wr, err := r.client.Collection(gardensCollection).Doc(garden.ID).Set(ctx, garden)
	if err != nil {
		logger.Error("Error upserting garden in Firestore",
			"error", err,
			"user_id", garden.UserID,
		)
		return nil, fmt.Errorf("firestoreGardenRepository.Upsert: %w", err)
	}
	stampWriteTime(wr, &garden.CreatedAt, &garden.UpdatedAt)
	return garden, nil
}

func (r *firestoreGardenRepository) FindByID(ctx context.Context, id string) (*model.Garden, error) {
	logger := middleware.GetLogger(ctx)

	doc, err := r.client.Collection(gardensCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding garden by ID in Firestore",
			"error", err,
			"garden_id", id,
		)
		return nil, fmt.Errorf("firestoreGardenRepository.FindByID: %w", err)
	}

	var garden model.Garden
	if err := doc.DataTo(&garden); err != nil {
		return nil, fmt.Errorf("firestoreGardenRepository.FindByID: %w", err)
	}
	garden.ID = doc.Ref.ID
	return &garden, nil
}

func (r *firestoreGardenRepository) FindByUserID(ctx context.Context, userID string) (*model.Garden, error) {
	// ドキュメントID = ユーザーID なのでIDで直接引ける
	return r.FindByID(ctx, userID)
}

func (r *firestoreGardenRepository) Delete(ctx context.Context, id string) error {
	logger := middleware.GetLogger(ctx)

	if _, err := r.client.Collection(gardensCollection).Doc(id).Delete(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return model.ErrNotFound
		}
		logger.Error("Error deleting garden in Firestore",
			"error", err,
			"garden_id", id,
		)
		return fmt.Errorf("firestoreGardenRepository.Delete: %w", err)
	}
	return nil
}
