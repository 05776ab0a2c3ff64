// internal/middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rkrkrk1234/diarygarden/internal/model"
	"github.com/rkrkrk1234/diarygarden/internal/webutil"
)

// TokenVerifier は Bearer トークンを検証し、トークンの subject を解決します。
// 本番では Firebase Auth、開発モードではローカル署名のJWTが実装になる。
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*model.AuthIdentity, error)
}

// AuthMiddleware は Authorization ヘッダーの Bearer トークンを検証するミドルウェアです。
// トークンが無い・不正・期限切れ、および検証基盤に到達できない場合はすべて401で
// 遮断する (fail closed)。検証に成功した場合のみ uid をコンテキストに格納する。
func AuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			token, ok := ExtractBearerToken(r)
			if !ok {
				logger.Warn("Auth failed: missing or malformed Authorization header")
				appErr := model.NewAppError("UNAUTHORIZED", "認証が必要です", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			identity, err := verifier.VerifyIDToken(r.Context(), token)
			if err != nil {
				logger.Warn("Auth failed: token verification error", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンが無効です", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.UIDKey, identity.UID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractBearerToken は Authorization ヘッダーから Bearer トークンを取り出します。
func ExtractBearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
		return "", false
	}
	return headerParts[1], true
}

// GetUIDFromContext はコンテキストから検証済みユーザーIDを取得します。
func GetUIDFromContext(ctx context.Context) (string, error) {
	uid, ok := ctx.Value(model.UIDKey).(string)
	if !ok || uid == "" {
		return "", model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません", "", model.ErrUnauthorized)
	}
	return uid, nil
}
