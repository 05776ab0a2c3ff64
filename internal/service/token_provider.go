// internal/service/token_provider.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/rkrkrk1234/diarygarden/internal/config"
	"github.com/rkrkrk1234/diarygarden/internal/middleware"
	"github.com/rkrkrk1234/diarygarden/internal/model"
)

// AuthProvider はマネージド認証基盤 (Firebase Auth) の抽象です。
// アカウントの作成/削除・トークンの発行/検証を担う。
type AuthProvider interface {
	VerifyIDToken(ctx context.Context, idToken string) (*model.AuthIdentity, error)
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
	IssueToken(ctx context.Context, uid string) (string, error)
}

// --- Firebase 実装 ---

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithCustomToken"

type firebaseAuthProvider struct {
	client    *firebaseauth.Client
	rest      *resty.Client
	webAPIKey string
}

// NewFirebaseAuthProvider は Firebase Admin SDK を初期化して AuthProvider を返します。
func NewFirebaseAuthProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (AuthProvider, error) {
	var opts []option.ClientOption
	switch {
	case cfg.Firebase.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	case cfg.Firebase.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.Firebase.CredentialsJSON)))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase app.Auth: %w", err)
	}

	rest := resty.New().
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)

	logger.Info("Firebase auth provider initialized", slog.String("project_id", cfg.Firebase.ProjectID))
	return &firebaseAuthProvider{
		client:    client,
		rest:      rest,
		webAPIKey: cfg.Firebase.WebAPIKey,
	}, nil
}

func (p *firebaseAuthProvider) VerifyIDToken(ctx context.Context, idToken string) (*model.AuthIdentity, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("firebase VerifyIDToken: %w", err)
	}

	identity := &model.AuthIdentity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		identity.PictureURL = picture
	}
	return identity, nil
}

func (p *firebaseAuthProvider) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&firebaseauth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if firebaseauth.IsEmailAlreadyExists(err) {
			return "", model.NewAppError("DUPLICATE_ACCOUNT", "このアカウントは既に登録されています", "username", model.ErrConflict)
		}
		return "", fmt.Errorf("firebase CreateUser: %w", err)
	}
	return record.UID, nil
}

func (p *firebaseAuthProvider) DeleteUser(ctx context.Context, uid string) error {
	if err := p.client.DeleteUser(ctx, uid); err != nil {
		return fmt.Errorf("firebase DeleteUser: %w", err)
	}
	return nil
}

// IssueToken は Custom Token を発行し、identitytoolkit の REST API で
// クライアントがそのまま使える ID Token に交換します。
func (p *firebaseAuthProvider) IssueToken(ctx context.Context, uid string) (string, error) {
	logger := middleware.GetLogger(ctx)

	if p.webAPIKey == "" {
		return "", fmt.Errorf("firebase web API key is not configured")
	}

	customToken, err := p.client.CustomToken(ctx, uid)
	if err != nil {
		return "", fmt.Errorf("firebase CustomToken: %w", err)
	}

	var result struct {
		IDToken string `json:"idToken"`
	}
	resp, err := p.rest.R().
		SetContext(ctx).
		SetQueryParam("key", p.webAPIKey).
		SetBody(map[string]interface{}{
			"token":             customToken,
			"returnSecureToken": true,
		}).
		SetResult(&result).
		Post(identityToolkitURL)
	if err != nil {
		return "", fmt.Errorf("identitytoolkit exchange: %w", err)
	}
	if resp.IsError() {
		logger.Error("Custom token exchange failed",
			"status", resp.StatusCode(),
			"body", resp.String(),
		)
		return "", fmt.Errorf("identitytoolkit exchange: HTTP %d", resp.StatusCode())
	}
	if result.IDToken == "" {
		return "", fmt.Errorf("identitytoolkit exchange: idToken missing in response")
	}
	return result.IDToken, nil
}

// --- 開発モード実装 ---

// devAuthProvider は Firebase のクレデンシャルなしで全APIを動かすための
// ローカル実装です。HS256署名のJWTを発行・検証する。
type devAuthProvider struct {
	secretKey []byte
	tokenTTL  time.Duration
}

func NewDevAuthProvider(cfg *config.Config, logger *slog.Logger) AuthProvider {
	logger.Warn("Using DEV auth provider: tokens are signed locally, do not use in production")
	return &devAuthProvider{
		secretKey: []byte(cfg.JWT.SecretKey),
		tokenTTL:  cfg.JWT.AccessTokenTTL,
	}
}

func (p *devAuthProvider) VerifyIDToken(ctx context.Context, idToken string) (*model.AuthIdentity, error) {
	token, err := jwt.Parse(idToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("dev VerifyIDToken: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("dev VerifyIDToken: invalid claims")
	}
	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, fmt.Errorf("dev VerifyIDToken: subject missing")
	}

	identity := &model.AuthIdentity{UID: subject}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	return identity, nil
}

func (p *devAuthProvider) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	return uuid.NewString(), nil
}

func (p *devAuthProvider) DeleteUser(ctx context.Context, uid string) error {
	return nil
}

func (p *devAuthProvider) IssueToken(ctx context.Context, uid string) (string, error) {
	claims := &jwt.RegisteredClaims{
		Issuer:    "diarygarden-dev",
		Subject:   uid,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(p.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(p.secretKey)
	if err != nil {
		return "", fmt.Errorf("dev IssueToken: %w", err)
	}
	return signedToken, nil
}

// newOutboundHTTPClient は外部API呼び出し用の接続/読み取りタイムアウト付きクライアントです。
func newOutboundHTTPClient(connectTimeout, totalTimeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: totalTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: connectTimeout,
			}).DialContext,
		},
	}
}
