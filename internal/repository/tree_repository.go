// internal/repository/tree_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rkrkrk1234/diarygarden/internal/middleware"
	"github.com/rkrkrk1234/diarygarden/internal/model"
)

// TreeRepository は木の永続化アダプタです。
type TreeRepository interface {
	Save(ctx context.Context, tree *model.Tree) (*model.Tree, error)
	FindByID(ctx context.Context, id string) (*model.Tree, error)
	FindByUserID(ctx context.Context, userID string) ([]*model.Tree, error)
	FindByUserIDAndStatus(ctx context.Context, userID, treeStatus string) ([]*model.Tree, error)
	Delete(ctx context.Context, id string) error
}

type firestoreTreeRepository struct {
	client *firestore.Client
}

func NewFirestoreTreeRepository(client *firestore.Client) TreeRepository {
	return &firestoreTreeRepository{client: client}
}

func (r *firestoreTreeRepository) Save(ctx context.Context, tree *model.Tree) (*model.Tree, error) {
	logger := middleware.GetLogger(ctx)

	if tree.ID == "" {
		tree.ID = r.client.Collection(treesCollection).NewDoc().ID
	}
	tree.UpdatedAt = time.Time{}

	wr, err := r.client.Collection(treesCollection).Doc(tree.ID).Set(ctx, tree)
	if err != nil {
		logger.Error("Error saving tree in Firestore",
			"error", err,
			"tree_id", tree.ID,
			"user_id", tree.UserID,
		)
		return nil, fmt.Errorf("firestoreTreeRepository.Save: %w", err)
	}
	stampWriteTime(wr, &tree.CreatedAt, &tree.UpdatedAt)
	return tree, nil
}

func (r *firestoreTreeRepository) FindByID(ctx context.Context, id string) (*model.Tree, error) {
	logger := middleware.GetLogger(ctx)

	doc, err := r.client.Collection(treesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding tree by ID in Firestore",
			"error", err,
			"tree_id", id,
		)
		return nil, fmt.Errorf("firestoreTreeRepository.FindByID: %w", err)
	}

	var tree model.Tree
	if err := doc.DataTo(&tree); err != nil {
		return nil, fmt.Errorf("firestoreTreeRepository.FindByID: %w", err)
	}
	tree.ID = doc.Ref.ID
	return &tree, nil
}

func (r *firestoreTreeRepository) FindByUserID(ctx context.Context, userID string) ([]*model.Tree, error) {
	query := r.client.Collection(treesCollection).
		Where("user_id", "==", userID).
		OrderBy("created_at", firestore.Desc)
	return r.queryTrees(ctx, query)
}

func (r *firestoreTreeRepository) FindByUserIDAndStatus(ctx context.Context, userID, treeStatus string) ([]*model.Tree, error) {
	query := r.client.Collection(treesCollection).
		Where("user_id", "==", userID).
		Where("status", "==", treeStatus).
		OrderBy("created_at", firestore.Desc)
	return r.queryTrees(ctx, query)
}

func (r *firestoreTreeRepository) queryTrees(ctx context.Context, query firestore.Query) ([]*model.Tree, error) {
	logger := middleware.GetLogger(ctx)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var trees []*model.Tree
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Error("Error querying trees in Firestore", "error", err)
			return nil, fmt.Errorf("firestoreTreeRepository.queryTrees: %w", err)
		}

		var tree model.Tree
		if err := doc.DataTo(&tree); err != nil {
			return nil, fmt.Errorf("firestoreTreeRepository.queryTrees: %w", err)
		}
		tree.ID = doc.Ref.ID
		trees = append(trees, &tree)
	}
	return trees, nil
}

func (r *firestoreTreeRepository) Delete(ctx context.Context, id string) error {
	logger := middleware.GetLogger(ctx)

	if _, err := r.client.Collection(treesCollection).Doc(id).Delete(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return model.ErrNotFound
		}
		logger.Error("Error deleting tree in Firestore",
			"error", err,
			"tree_id", id,
		)
		return fmt.Errorf("firestoreTreeRepository.Delete: %w", err)
	}
	return nil
}
