// internal/handlers/diary_handler_test.go
package handlers_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rkrkrk1234/diarygarden/internal/handlers"
	"github.com/rkrkrk1234/diarygarden/internal/model"
	"github.com/rkrkrk1234/diarygarden/internal/service/mocks"
)

func setupDiaryRouter(t *testing.T, uid string) (*chi.Mux, *mocks.MockDiaryService) {
	t.Helper()

	mockDiaryService := mocks.NewMockDiaryService(t)
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	diaryHandler := handlers.NewDiaryHandler(mockDiaryService, testLogger)

	router := chi.NewRouter()
	router.Use(testAuthMiddleware(uid))
	router.Route("/api/diaries", func(r chi.Router) {
		r.Post("/", diaryHandler.Create)
		r.Get("/", diaryHandler.List)
		r.Get("/count", diaryHandler.Count)
		r.Get("/tree/{treeId}", diaryHandler.ListByTree)
		r.Get("/{diaryId}", diaryHandler.GetByID)
		r.Put("/{diaryId}", diaryHandler.Update)
		r.Delete("/{diaryId}", diaryHandler.Delete)
	})
	return router, mockDiaryService
}

func TestDiaryHandler_Create(t *testing.T) {
	validReq := model.CreateDiaryRequest{TreeID: "tree-1", Content: "今日の日記"}
	createdDiary := &model.Diary{ID: "diary-1", UserID: "uid-1", TreeID: "tree-1", Content: "今日の日記"}

	tests := []struct {
		name           string
		uid            string
		body           interface{}
		setupMock      func(m *mocks.MockDiaryService)
		expectedStatus int
	}{
		{
			name: "正常系: 作成成功",
			uid:  "uid-1",
			body: validReq,
			setupMock: func(m *mocks.MockDiaryService) {
				m.On("CreateDiary", mock.Anything, "uid-1", &validReq).
					Return(createdDiary, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: 未認証",
			uid:            "",
			body:           validReq,
			setupMock:      func(m *mocks.MockDiaryService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: contentが空",
			uid:            "uid-1",
			body:           model.CreateDiaryRequest{TreeID: "tree-1"},
			setupMock:      func(m *mocks.MockDiaryService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: 木が存在しない",
			uid:  "uid-1",
			body: validReq,
			setupMock: func(m *mocks.MockDiaryService) {
				m.On("CreateDiary", mock.Anything, "uid-1", &validReq).
					Return(nil, model.NewAppError("TREE_NOT_FOUND", "木が見つかりません", "treeId", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router, mockDiaryService := setupDiaryRouter(t, tc.uid)
			tc.setupMock(mockDiaryService)

			req := createJSONRequest(t, "POST", "/api/diaries", tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			res := decodeEnvelope(t, rr)
			if tc.expectedStatus < 400 {
				assert.True(t, res.Success)
			} else {
				assert.False(t, res.Success)
				assert.NotEmpty(t, res.Message)
			}
		})
	}
}

func TestDiaryHandler_List(t *testing.T) {
	diaries := []*model.Diary{
		{ID: "diary-2", UserID: "uid-1"},
		{ID: "diary-1", UserID: "uid-1"},
	}

	t.Run("正常系: クエリなし", func(t *testing.T) {
		router, mockDiaryService := setupDiaryRouter(t, "uid-1")
		mockDiaryService.On("ListDiaries", mock.Anything, "uid-1", 0, "").
			Return(diaries, nil).Once()

		req := createJSONRequest(t, "GET", "/api/diaries", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		res := decodeEnvelope(t, rr)
		assert.True(t, res.Success)
	})

	t.Run("正常系: ページングクエリ付き", func(t *testing.T) {
		router, mockDiaryService := setupDiaryRouter(t, "uid-1")
		mockDiaryService.On("ListDiaries", mock.Anything, "uid-1", 1, "diary-2").
			Return(diaries[1:], nil).Once()

		req := createJSONRequest(t, "GET", "/api/diaries?limit=1&lastDocId=diary-2", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: limitが数値でない", func(t *testing.T) {
		router, _ := setupDiaryRouter(t, "uid-1")

		req := createJSONRequest(t, "GET", "/api/diaries?limit=abc", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDiaryHandler_Count(t *testing.T) {
	t.Run("正常系: 件数を返す", func(t *testing.T) {
		router, mockDiaryService := setupDiaryRouter(t, "uid-1")
		mockDiaryService.On("CountDiaries", mock.Anything, "uid-1").
			Return(int64(3), nil).Once()

		req := createJSONRequest(t, "GET", "/api/diaries/count", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		res := decodeEnvelope(t, rr)
		require.True(t, res.Success)
		data := res.Data.(map[string]interface{})
		assert.Equal(t, float64(3), data["count"])
	})
}

func TestDiaryHandler_GetByID(t *testing.T) {
	t.Run("正常系: 取得成功", func(t *testing.T) {
		router, mockDiaryService := setupDiaryRouter(t, "uid-1")
		mockDiaryService.On("GetDiary", mock.Anything, "uid-1", "diary-1").
			Return(&model.Diary{ID: "diary-1", UserID: "uid-1"}, nil).Once()

		req := createJSONRequest(t, "GET", "/api/diaries/diary-1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: 他人のダイアリーは403", func(t *testing.T) {
		router, mockDiaryService := setupDiaryRouter(t, "uid-2")
		mockDiaryService.On("GetDiary", mock.Anything, "uid-2", "diary-1").
			Return(nil, model.NewAppError("FORBIDDEN", "このダイアリーにはアクセスできません", "", model.ErrForbidden)).Once()

		req := createJSONRequest(t, "GET", "/api/diaries/diary-1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestDiaryHandler_Delete(t *testing.T) {
	t.Run("正常系: 削除成功", func(t *testing.T) {
		router, mockDiaryService := setupDiaryRouter(t, "uid-1")
		mockDiaryService.On("DeleteDiary", mock.Anything, "uid-1", "diary-1").
			Return(nil).Once()

		req := createJSONRequest(t, "DELETE", "/api/diaries/diary-1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
