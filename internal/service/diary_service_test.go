// internal/service/diary_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rkrkrk1234/diarygarden/internal/model"
	"github.com/rkrkrk1234/diarygarden/internal/repository/mocks"
)

func newDiaryServiceForTest() (DiaryService, *mocks.DiaryRepository, *mocks.TreeRepository, *mocks.EmotionAnalysisRepository) {
	diaryRepo := new(mocks.DiaryRepository)
	treeRepo := new(mocks.TreeRepository)
	emotionRepo := new(mocks.EmotionAnalysisRepository)
	return NewDiaryService(diaryRepo, treeRepo, emotionRepo), diaryRepo, treeRepo, emotionRepo
}

// --- Test CreateDiary ---
func Test_diaryService_CreateDiary(t *testing.T) {
	ctx := context.Background()
	userID := "uid-1"

	tests := []struct {
		name      string
		req       *model.CreateDiaryRequest
		setupMock func(diaryRepo *mocks.DiaryRepository, treeRepo *mocks.TreeRepository)
		wantErr   error
	}{
		{
			name: "正常系: 作成成功",
			req:  &model.CreateDiaryRequest{TreeID: "tree-1", Content: "今日は庭に水をやった"},
			setupMock: func(diaryRepo *mocks.DiaryRepository, treeRepo *mocks.TreeRepository) {
				treeRepo.On("FindByID", ctx, "tree-1").
					Return(&model.Tree{ID: "tree-1", UserID: userID}, nil).Once()
				diaryRepo.On("Save", ctx, mock.AnythingOfType("*model.Diary")).
					Run(func(args mock.Arguments) {
						diary := args.Get(1).(*model.Diary)
						assert.Equal(t, userID, diary.UserID)
						assert.Equal(t, "tree-1", diary.TreeID)
						// 記入日はサーバー側で採番される
						assert.WithinDuration(t, time.Now(), diary.WrittenDate, time.Second*5)
					}).
					Return(func(ctx context.Context, diary *model.Diary) *model.Diary { return diary }, nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: 紐づけ先の木が存在しない",
			req:  &model.CreateDiaryRequest{TreeID: "tree-x", Content: "test"},
			setupMock: func(diaryRepo *mocks.DiaryRepository, treeRepo *mocks.TreeRepository) {
				treeRepo.On("FindByID", ctx, "tree-x").
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: 他人の木には書けない",
			req:  &model.CreateDiaryRequest{TreeID: "tree-1", Content: "test"},
			setupMock: func(diaryRepo *mocks.DiaryRepository, treeRepo *mocks.TreeRepository) {
				treeRepo.On("FindByID", ctx, "tree-1").
					Return(&model.Tree{ID: "tree-1", UserID: "uid-other"}, nil).Once()
			},
			wantErr: model.ErrForbidden,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			diaryService, diaryRepo, treeRepo, _ := newDiaryServiceForTest()
			tc.setupMock(diaryRepo, treeRepo)

			diary, err := diaryService.CreateDiary(ctx, userID, tc.req)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, diary)
			} else {
				require.NoError(t, err)
				require.NotNil(t, diary)
			}
			diaryRepo.AssertExpectations(t)
			treeRepo.AssertExpectations(t)
		})
	}
}

// --- Test ListDiaries ---
func Test_diaryService_ListDiaries(t *testing.T) {
	ctx := context.Background()
	userID := "uid-1"

	diaries := []*model.Diary{
		{ID: "diary-2", UserID: userID},
		{ID: "diary-1", UserID: userID},
	}

	t.Run("正常系: 条件なしは全件取得", func(t *testing.T) {
		diaryService, diaryRepo, _, _ := newDiaryServiceForTest()
		diaryRepo.On("FindByUserID", ctx, userID).Return(diaries, nil).Once()

		got, err := diaryService.ListDiaries(ctx, userID, 0, "")

		require.NoError(t, err)
		assert.Len(t, got, 2)
		diaryRepo.AssertExpectations(t)
	})

	t.Run("正常系: limitなしのカーソル指定は全件取得にフォールバック", func(t *testing.T) {
		diaryService, diaryRepo, _, _ := newDiaryServiceForTest()
		diaryRepo.On("FindByUserID", ctx, userID).Return(diaries, nil).Once()

		got, err := diaryService.ListDiaries(ctx, userID, 0, "diary-2")

		require.NoError(t, err)
		assert.Len(t, got, 2)
		// limit 0 のページングクエリは常に空になるため、ページング経路には入らない
		diaryRepo.AssertNotCalled(t, "FindByUserIDWithPaging", ctx, userID, 0, "diary-2")
		diaryRepo.AssertExpectations(t)
	})

	t.Run("正常系: limit指定でページング", func(t *testing.T) {
		diaryService, diaryRepo, _, _ := newDiaryServiceForTest()
		diaryRepo.On("FindByUserIDWithPaging", ctx, userID, 1, "diary-2").
			Return(diaries[1:], nil).Once()

		got, err := diaryService.ListDiaries(ctx, userID, 1, "diary-2")

		require.NoError(t, err)
		assert.Len(t, got, 1)
		diaryRepo.AssertExpectations(t)
	})

	t.Run("異常系: 不正なカーソルはそのまま返す", func(t *testing.T) {
		diaryService, diaryRepo, _, _ := newDiaryServiceForTest()
		cursorErr := model.NewAppError("INVALID_CURSOR", "ページングカーソルが不正です", "lastDocId", model.ErrInvalidInput)
		diaryRepo.On("FindByUserIDWithPaging", ctx, userID, 10, "bad-cursor").
			Return(nil, cursorErr).Once()

		got, err := diaryService.ListDiaries(ctx, userID, 10, "bad-cursor")

		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Nil(t, got)
	})
}

// --- Test CountDiaries ---
func Test_diaryService_CountDiaries(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 件数取得", func(t *testing.T) {
		diaryService, diaryRepo, _, _ := newDiaryServiceForTest()
		diaryRepo.On("CountByUserID", ctx, "uid-1").Return(int64(42), nil).Once()

		count, err := diaryService.CountDiaries(ctx, "uid-1")

		require.NoError(t, err)
		assert.Equal(t, int64(42), count)
	})

	t.Run("異常系: 集計に失敗", func(t *testing.T) {
		diaryService, diaryRepo, _, _ := newDiaryServiceForTest()
		diaryRepo.On("CountByUserID", ctx, "uid-1").Return(int64(0), errors.New("firestore error")).Once()

		count, err := diaryService.CountDiaries(ctx, "uid-1")

		assert.ErrorIs(t, err, model.ErrInternalServer)
		assert.Zero(t, count)
	})
}

// --- Test UpdateDiary ---
func Test_diaryService_UpdateDiary(t *testing.T) {
	ctx := context.Background()
	userID := "uid-1"

	baseDiary := func() *model.Diary {
		return &model.Diary{ID: "diary-1", UserID: userID, TreeID: "tree-1", Content: "元の本文"}
	}

	t.Run("正常系: 本文だけ更新", func(t *testing.T) {
		diaryService, diaryRepo, _, _ := newDiaryServiceForTest()
		diaryRepo.On("FindByID", ctx, "diary-1").Return(baseDiary(), nil).Once()
		diaryRepo.On("Save", ctx, mock.AnythingOfType("*model.Diary")).
			Run(func(args mock.Arguments) {
				diary := args.Get(1).(*model.Diary)
				assert.Equal(t, "新しい本文", diary.Content)
				assert.Equal(t, "tree-1", diary.TreeID)
			}).
			Return(func(ctx context.Context, diary *model.Diary) *model.Diary { return diary }, nil).Once()

		newContent := "新しい本文"
		diary, err := diaryService.UpdateDiary(ctx, userID, "diary-1", &model.UpdateDiaryRequest{Content: &newContent})

		require.NoError(t, err)
		assert.Equal(t, "新しい本文", diary.Content)
		diaryRepo.AssertExpectations(t)
	})

	t.Run("正常系: 木の付け替えは所有者チェックを通す", func(t *testing.T) {
		diaryService, diaryRepo, treeRepo, _ := newDiaryServiceForTest()
		diaryRepo.On("FindByID", ctx, "diary-1").Return(baseDiary(), nil).Once()
		treeRepo.On("FindByID", ctx, "tree-2").
			Return(&model.Tree{ID: "tree-2", UserID: userID}, nil).Once()
		diaryRepo.On("Save", ctx, mock.AnythingOfType("*model.Diary")).
			Return(func(ctx context.Context, diary *model.Diary) *model.Diary { return diary }, nil).Once()

		newTreeID := "tree-2"
		diary, err := diaryService.UpdateDiary(ctx, userID, "diary-1", &model.UpdateDiaryRequest{TreeID: &newTreeID})

		require.NoError(t, err)
		assert.Equal(t, "tree-2", diary.TreeID)
		treeRepo.AssertExpectations(t)
	})

	t.Run("異常系: 他人の木には付け替えできない", func(t *testing.T) {
		diaryService, diaryRepo, treeRepo, _ := newDiaryServiceForTest()
		diaryRepo.On("FindByID", ctx, "diary-1").Return(baseDiary(), nil).Once()
		treeRepo.On("FindByID", ctx, "tree-other").
			Return(&model.Tree{ID: "tree-other", UserID: "uid-other"}, nil).Once()

		otherTreeID := "tree-other"
		_, err := diaryService.UpdateDiary(ctx, userID, "diary-1", &model.UpdateDiaryRequest{TreeID: &otherTreeID})

		assert.ErrorIs(t, err, model.ErrForbidden)
		diaryRepo.AssertNotCalled(t, "Save", ctx, mock.Anything)
	})
}

// --- Test DeleteDiary ---
func Test_diaryService_DeleteDiary(t *testing.T) {
	ctx := context.Background()
	userID := "uid-1"

	t.Run("正常系: 感情分析も一緒に削除される", func(t *testing.T) {
		diaryService, diaryRepo, _, emotionRepo := newDiaryServiceForTest()
		diaryRepo.On("FindByID", ctx, "diary-1").
			Return(&model.Diary{ID: "diary-1", UserID: userID}, nil).Once()
		diaryRepo.On("Delete", ctx, "diary-1").Return(nil).Once()
		emotionRepo.On("DeleteByDiaryID", ctx, "diary-1").Return(nil).Once()

		err := diaryService.DeleteDiary(ctx, userID, "diary-1")

		require.NoError(t, err)
		diaryRepo.AssertExpectations(t)
		emotionRepo.AssertExpectations(t)
	})

	t.Run("正常系: 感情分析の削除失敗は握りつぶす", func(t *testing.T) {
		diaryService, diaryRepo, _, emotionRepo := newDiaryServiceForTest()
		diaryRepo.On("FindByID", ctx, "diary-1").
			Return(&model.Diary{ID: "diary-1", UserID: userID}, nil).Once()
		diaryRepo.On("Delete", ctx, "diary-1").Return(nil).Once()
		emotionRepo.On("DeleteByDiaryID", ctx, "diary-1").Return(errors.New("firestore error")).Once()

		err := diaryService.DeleteDiary(ctx, userID, "diary-1")

		require.NoError(t, err)
	})

	t.Run("異常系: 他人のダイアリーは削除できない", func(t *testing.T) {
		diaryService, diaryRepo, _, emotionRepo := newDiaryServiceForTest()
		diaryRepo.On("FindByID", ctx, "diary-1").
			Return(&model.Diary{ID: "diary-1", UserID: "uid-other"}, nil).Once()

		err := diaryService.DeleteDiary(ctx, userID, "diary-1")

		assert.ErrorIs(t, err, model.ErrForbidden)
		diaryRepo.AssertNotCalled(t, "Delete", ctx, "diary-1")
		emotionRepo.AssertNotCalled(t, "DeleteByDiaryID", ctx, "diary-1")
	})
}
