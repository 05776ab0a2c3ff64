// internal/repository/firestore.go
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/rkrkrk1234/diarygarden/internal/config"
)

// コレクション名
const (
	usersCollection    = "users"
	gardensCollection  = "gardens"
	treesCollection    = "trees"
	diariesCollection  = "diaries"
	emotionsCollection = "emotion_analyses"
)

// NewFirestoreClient は設定に従って Firestore クライアントを生成します。
// クレデンシャルの優先順位: ファイルパス > 環境変数のJSON > Application Default Credentials。
func NewFirestoreClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*firestore.Client, error) {
	if cfg.Firebase.ProjectID == "" {
		return nil, fmt.Errorf("firestore: project ID is not configured")
	}

	var opts []option.ClientOption
	switch {
	case cfg.Firebase.CredentialsFile != "":
		logger.Info("Initializing Firestore with credentials file", slog.String("file", cfg.Firebase.CredentialsFile))
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	case cfg.Firebase.CredentialsJSON != "":
		logger.Info("Initializing Firestore with credentials JSON from environment")
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.Firebase.CredentialsJSON)))
	default:
		logger.Info("Initializing Firestore with application default credentials")
	}

	client, err := firestore.NewClient(ctx, cfg.Firebase.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore.NewClient: %w", err)
	}
	return client, nil
}

// stampWriteTime は Set の WriteResult をモデルのタイムスタンプに反映します。
// serverTimestamp タグでサーバ側に書かれた時刻と同じ値になるため、
// 保存直後のレスポンスでもゼロ値ではなく実際の時刻を返せる。
func stampWriteTime(wr *firestore.WriteResult, createdAt, updatedAt *time.Time) {
	if wr == nil {
		return
	}
	if createdAt.IsZero() {
		*createdAt = wr.UpdateTime
	}
	*updatedAt = wr.UpdateTime
}
