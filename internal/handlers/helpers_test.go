// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rkrkrk1234/diarygarden/internal/model"
)

// testAuthMiddleware は検証済みuidをコンテキストに注入するテスト用ミドルウェア
func testAuthMiddleware(uid string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if uid != "" {
				ctx := context.WithValue(r.Context(), model.UIDKey, uid)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// createJSONRequest はJSONボディ付きのテストリクエストを作成します
func createJSONRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = new(bytes.Buffer)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// decodeEnvelope は共通エンベロープをデコードします
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) model.APIResponse {
	t.Helper()

	var res model.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	return res
}
