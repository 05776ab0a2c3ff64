// internal/repository/diary_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rkrkrk1234/diarygarden/internal/middleware"
	"github.com/rkrkrk1234/diarygarden/internal/model"
)

// DiaryRepository はダイアリーの永続化アダプタです。
// 一覧は常に作成日時の降順。ページングは limit + 最後に見たドキュメントIDの
// カーソル方式 (lastDocID のスナップショットを StartAfter に渡す)。
type DiaryRepository interface {
	Save(ctx context.Context, diary *model.Diary) (*model.Diary, error)
	FindByID(ctx context.Context, id string) (*model.Diary, error)
	FindByUserID(ctx context.Context, userID string) ([]*model.Diary, error)
	FindByUserIDWithPaging(ctx context.Context, userID string, limit int, lastDocID string) ([]*model.Diary, error)
	FindByTreeID(ctx context.Context, treeID, userID string) ([]*model.Diary, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type firestoreDiaryRepository struct {
	client *firestore.Client
}

func NewFirestoreDiaryRepository(client *firestore.Client) DiaryRepository {
	return &firestoreDiaryRepository{client: client}
}

func (r *firestoreDiaryRepository) Save(ctx context.Context, diary *model.Diary) (*model.Diary, error) {
	logger := middleware.GetLogger(ctx)

	if diary.ID == "" {
		diary.ID = r.client.Collection(diariesCollection).NewDoc().ID
	}
	diary.UpdatedAt = time.Time{}

	wr, err := r.client.Collection(diariesCollection).Doc(diary.ID).Set(ctx, diary)
	if err != nil {
		logger.Error("Error saving diary in Firestore",
			"error", err,
			"diary_id", diary.ID,
			"user_id", diary.UserID,
		)
		return nil, fmt.Errorf("firestoreDiaryRepository.Save: %w", err)
	}
	stampWriteTime(wr, &diary.CreatedAt, &diary.UpdatedAt)
	return diary, nil
}

func (r *firestoreDiaryRepository) FindByID(ctx context.Context, id string) (*model.Diary, error) {
	logger := middleware.GetLogger(ctx)

	doc, err := r.client.Collection(diariesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding diary by ID in Firestore",
			"error", err,
			"diary_id", id,
		)
		return nil, fmt.Errorf("firestoreDiaryRepository.FindByID: %w", err)
	}

	return docToDiary(doc)
}

func (r *firestoreDiaryRepository) FindByUserID(ctx context.Context, userID string) ([]*model.Diary, error) {
	query := r.client.Collection(diariesCollection).
		Where("user_id", "==", userID).
		OrderBy("created_at", firestore.Desc)
	return r.queryDiaries(ctx, query)
}

func (r *firestoreDiaryRepository) FindByUserIDWithPaging(ctx context.Context, userID string, limit int, lastDocID string) ([]*model.Diary, error) {
	logger := middleware.GetLogger(ctx)

	query := r.client.Collection(diariesCollection).
		Where("user_id", "==", userID).
		OrderBy("created_at", firestore.Desc)

	if lastDocID != "" {
		lastDoc, err := r.client.Collection(diariesCollection).Doc(lastDocID).Get(ctx)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return nil, model.NewAppError("INVALID_CURSOR", "指定されたカーソルが見つかりません", "lastDocId", model.ErrInvalidInput)
			}
			logger.Error("Error fetching paging cursor in Firestore",
				"error", err,
				"last_doc_id", lastDocID,
			)
			return nil, fmt.Errorf("firestoreDiaryRepository.FindByUserIDWithPaging: %w", err)
		}
		query = query.StartAfter(lastDoc)
	}

	// Limit(0) は「0件」を意味するクエリになるため、正の値のときだけ適用する
	if limit > 0 {
		query = query.Limit(limit)
	}

	return r.queryDiaries(ctx, query)
}

func (r *firestoreDiaryRepository) FindByTreeID(ctx context.Context, treeID, userID string) ([]*model.Diary, error) {
	query := r.client.Collection(diariesCollection).
		Where("tree_id", "==", treeID).
		Where("user_id", "==", userID).
		OrderBy("created_at", firestore.Desc)
	return r.queryDiaries(ctx, query)
}

func (r *firestoreDiaryRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	logger := middleware.GetLogger(ctx)

	query := r.client.Collection(diariesCollection).Where("user_id", "==", userID)
	result, err := query.NewAggregationQuery().WithCount("count").Get(ctx)
	if err != nil {
		logger.Error("Error counting diaries in Firestore",
			"error", err,
			"user_id", userID,
		)
		return 0, fmt.Errorf("firestoreDiaryRepository.CountByUserID: %w", err)
	}

	value, ok := result["count"]
	if !ok {
		return 0, fmt.Errorf("firestoreDiaryRepository.CountByUserID: count missing from aggregation result")
	}
	countValue, ok := value.(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("firestoreDiaryRepository.CountByUserID: unexpected aggregation result type %T", value)
	}
	return countValue.GetIntegerValue(), nil
}

func (r *firestoreDiaryRepository) Delete(ctx context.Context, id string) error {
	logger := middleware.GetLogger(ctx)

	if _, err := r.client.Collection(diariesCollection).Doc(id).Delete(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return model.ErrNotFound
		}
		logger.Error("Error deleting diary in Firestore",
			"error", err,
			"diary_id", id,
		)
		return fmt.Errorf("firestoreDiaryRepository.Delete: %w", err)
	}
	return nil
}

func (r *firestoreDiaryRepository) queryDiaries(ctx context.Context, query firestore.Query) ([]*model.Diary, error) {
	logger := middleware.GetLogger(ctx)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var diaries []*model.Diary
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Error("Error querying diaries in Firestore", "error", err)
			return nil, fmt.Errorf("firestoreDiaryRepository.queryDiaries: %w", err)
		}

		diary, err := docToDiary(doc)
		if err != nil {
			return nil, err
		}
		diaries = append(diaries, diary)
	}
	return diaries, nil
}

func docToDiary(doc *firestore.DocumentSnapshot) (*model.Diary, error) {
	var diary model.Diary
	if err := doc.DataTo(&diary); err != nil {
		return nil, fmt.Errorf("docToDiary: %w", err)
	}
	diary.ID = doc.Ref.ID
	return &diary, nil
}
