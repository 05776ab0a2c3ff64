// internal/repository/user_repository.go
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

// UserRepository はユーザープロファイルの永続化アダプタです。
type UserRepository interface {
	Save(ctx context.Context, user *model.User) (*model.User, error)
	FindByUID(ctx context.Context, uid string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	DeleteByUID(ctx context.Context, uid string) error
}

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	return &firestoreUserRepository{client: client}
}

func (r *firestoreUserRepository) Save(ctx context.Context, user *model.User) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	if user.ID == "" {
		user.ID = r.client.Collection(usersCollection).NewDoc().ID
	}

	// serverTimestamp タグにサーバ時刻を書かせるため、更新時刻はゼロ値に戻す
	user.UpdatedAt = time.Time{}

	wr, err := r.client.Collection(usersCollection).Doc(user.ID).Set(ctx, user)
	if err != nil {
		logger.Error("Error saving user in Firestore",
			"error", err,
			"user_id", user.ID,
			"uid", user.UID,
		)
		return nil, fmt.Errorf("firestoreUserRepository.Save: %w", err)
	}
	stampWriteTime(wr, &user.CreatedAt, &user.UpdatedAt)
	return user, nil
}

func (r *firestoreUserRepository) FindByUID(ctx context.Context, uid string) (*model.User, error) {
	return r.findOneByField(ctx, "uid", uid)
}

func (r *firestoreUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOneByField(ctx, "username", username)
}

func (r *firestoreUserRepository) findOneByField(ctx context.Context, field, value string) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	iter := r.client.Collection(usersCollection).
		Where(field, "==", value).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, model.ErrNotFound
	}
	if err != nil {
		logger.Error("Error querying user in Firestore",
			"error", err,
			"field", field,
		)
		return nil, fmt.Errorf("firestoreUserRepository.findOneByField: %w", err)
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("firestoreUserRepository.findOneByField: %w", err)
	}
	user.ID = doc.Ref.ID
	return &user, nil
}

func (r *firestoreUserRepository) DeleteByUID(ctx context.Context, uid string) error {
	logger := middleware.GetLogger(ctx)

	user, err := r.FindByUID(ctx, uid)
	if err != nil {
		return err
	}

	if _, err := r.client.Collection(usersCollection).Doc(user.ID).Delete(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return model.ErrNotFound
		}
		logger.Error("Error deleting user in Firestore",
			"error", err,
			"uid", uid,
		)
		return fmt.Errorf("firestoreUserRepository.DeleteByUID: %w", err)
	}
	return nil
}
