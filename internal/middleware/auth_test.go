// internal/middleware/auth_test.go
package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkrkrk1234/diarygarden/internal/middleware"
	"github.com/rkrkrk1234/diarygarden/internal/model"
)

// stubVerifier はテスト用の TokenVerifier 実装
type stubVerifier struct {
	identity *model.AuthIdentity
	err      error
}

func (v *stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*model.AuthIdentity, error) {
	return v.identity, v.err
}

func TestAuthMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, err := middleware.GetUIDFromContext(r.Context())
		require.NoError(t, err)
		w.Write([]byte(uid))
	})

	tests := []struct {
		name           string
		authHeader     string
		verifier       *stubVerifier
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "正常系: 有効なトークン",
			authHeader:     "Bearer valid-token",
			verifier:       &stubVerifier{identity: &model.AuthIdentity{UID: "uid-1"}},
			expectedStatus: http.StatusOK,
			expectedBody:   "uid-1",
		},
		{
			name:           "異常系: ヘッダーなし",
			authHeader:     "",
			verifier:       &stubVerifier{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: Bearerでないスキーム",
			authHeader:     "Basic dXNlcjpwYXNz",
			verifier:       &stubVerifier{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: トークン検証失敗",
			authHeader:     "Bearer expired-token",
			verifier:       &stubVerifier{err: errors.New("token expired")},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: 検証基盤に到達できない場合も401 (fail closed)",
			authHeader:     "Bearer valid-token",
			verifier:       &stubVerifier{err: errors.New("connection refused")},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := middleware.AuthMiddleware(tc.verifier)(okHandler)

			req := httptest.NewRequest("GET", "/api/trees", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.Equal(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantOK    bool
	}{
		{name: "正常系: Bearerトークン", header: "Bearer abc123", wantToken: "abc123", wantOK: true},
		{name: "正常系: 小文字のbearer", header: "bearer abc123", wantToken: "abc123", wantOK: true},
		{name: "異常系: 空ヘッダー", header: "", wantOK: false},
		{name: "異常系: トークン部分がない", header: "Bearer", wantOK: false},
		{name: "異常系: 余計な空白", header: "Bearer abc 123", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			token, ok := middleware.ExtractBearerToken(req)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantToken, token)
			}
		})
	}
}

func TestGetUIDFromContext(t *testing.T) {
	t.Run("正常系: uidが格納されている", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), model.UIDKey, "uid-1")
		uid, err := middleware.GetUIDFromContext(ctx)
		require.NoError(t, err)
		assert.Equal(t, "uid-1", uid)
	})

	t.Run("異常系: uidがない", func(t *testing.T) {
		_, err := middleware.GetUIDFromContext(context.Background())
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})
}
