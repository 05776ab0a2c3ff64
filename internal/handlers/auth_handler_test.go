// internal/handlers/auth_handler_test.go
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

func setupAuthRouter(t *testing.T, uid string) (*chi.Mux, *mocks.MockAuthService) {
	t.Helper()

	mockAuthService := mocks.NewMockAuthService(t)
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authHandler := handlers.NewAuthHandler(mockAuthService, testLogger)

	router := chi.NewRouter()
	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/google", authHandler.GoogleLogin)
		r.Post("/verify", authHandler.VerifyToken)

		r.Group(func(r chi.Router) {
			r.Use(testAuthMiddleware(uid))
			r.Get("/user", authHandler.GetMe)
			r.Put("/user", authHandler.UpdateMe)
			r.Delete("/user", authHandler.DeleteMe)
		})
	})
	return router, mockAuthService
}

func TestAuthHandler_Register(t *testing.T) {
	validReq := model.RegisterRequest{
		Username:    "hanako",
		Password:    "password123",
		DisplayName: "花子",
	}
	authRes := &model.AuthResponse{
		Token:       "id-token",
		UID:         "uid-1",
		Identifier:  "hanako",
		DisplayName: "花子",
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name: "正常系: 登録成功",
			body: validReq,
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Register", mock.Anything, &validReq).
					Return(authRes, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: usernameが短すぎる",
			body:           model.RegisterRequest{Username: "ab", Password: "password123", DisplayName: "花子"},
			setupMock:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: passwordが短すぎる",
			body:           model.RegisterRequest{Username: "hanako", Password: "12345", DisplayName: "花子"},
			setupMock:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: ボディがJSONでない",
			body:           "not-json",
			setupMock:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: プロバイダ側にアカウントが既に存在",
			body: validReq,
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Register", mock.Anything, &validReq).
					Return(nil, model.NewAppError("DUPLICATE_ACCOUNT", "このアカウントは既に登録されています", "username", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router, mockAuthService := setupAuthRouter(t, "")
			tc.setupMock(mockAuthService)

			req := createJSONRequest(t, "POST", "/api/auth/register", tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			res := decodeEnvelope(t, rr)
			if tc.expectedStatus < 400 {
				assert.True(t, res.Success)
			} else {
				assert.False(t, res.Success)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	validReq := model.LoginRequest{Username: "hanako", Password: "password123"}

	t.Run("正常系: ログイン成功", func(t *testing.T) {
		router, mockAuthService := setupAuthRouter(t, "")
		mockAuthService.On("Login", mock.Anything, &validReq).
			Return(&model.AuthResponse{Token: "id-token", UID: "uid-1"}, nil).Once()

		req := createJSONRequest(t, "POST", "/api/auth/login", validReq)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		res := decodeEnvelope(t, rr)
		require.True(t, res.Success)
		data := res.Data.(map[string]interface{})
		assert.Equal(t, "id-token", data["token"])
	})

	t.Run("異常系: 認証失敗は401", func(t *testing.T) {
		router, mockAuthService := setupAuthRouter(t, "")
		mockAuthService.On("Login", mock.Anything, &validReq).
			Return(nil, model.NewAppError("AUTHENTICATION_FAILED", "アイディまたはパスワードが正しくありません", "", model.ErrUnauthorized)).Once()

		req := createJSONRequest(t, "POST", "/api/auth/login", validReq)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		res := decodeEnvelope(t, rr)
		assert.False(t, res.Success)
	})
}

func TestAuthHandler_VerifyToken(t *testing.T) {
	t.Run("正常系: 有効なトークン", func(t *testing.T) {
		router, mockAuthService := setupAuthRouter(t, "")
		mockAuthService.On("VerifyToken", mock.Anything, "valid-token").
			Return(&model.AuthResponse{Token: "valid-token", UID: "uid-1"}, nil).Once()

		req := createJSONRequest(t, "POST", "/api/auth/verify", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: トークンなしは401", func(t *testing.T) {
		router, _ := setupAuthRouter(t, "")

		req := createJSONRequest(t, "POST", "/api/auth/verify", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAuthHandler_UpdateMe(t *testing.T) {
	t.Run("正常系: プロフィール更新", func(t *testing.T) {
		router, mockAuthService := setupAuthRouter(t, "uid-1")

		displayName := "新しい名前"
		updateReq := model.UpdateUserRequest{DisplayName: &displayName}
		mockAuthService.On("UpdateUser", mock.Anything, "uid-1", &updateReq).
			Return(&model.User{UID: "uid-1", DisplayName: displayName}, nil).Once()

		req := createJSONRequest(t, "PUT", "/api/auth/user", updateReq)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: 未認証は401", func(t *testing.T) {
		router, _ := setupAuthRouter(t, "")

		displayName := "新しい名前"
		req := createJSONRequest(t, "PUT", "/api/auth/user", model.UpdateUserRequest{DisplayName: &displayName})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAuthHandler_DeleteMe(t *testing.T) {
	t.Run("正常系: アカウント削除", func(t *testing.T) {
		router, mockAuthService := setupAuthRouter(t, "uid-1")
		mockAuthService.On("DeleteUser", mock.Anything, "uid-1").
			Return(nil).Once()

		req := createJSONRequest(t, "DELETE", "/api/auth/user", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
