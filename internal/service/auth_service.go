// internal/service/auth_service.go
package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/rkrkrk1234/diarygarden/internal/middleware"
	"github.com/rkrkrk1234/diarygarden/internal/model"
	"github.com/rkrkrk1234/diarygarden/internal/repository"
)

// Firebase 側のアカウントはメールアドレスで識別されるため、
// username 登録時はこのドメインで合成メールを作る。
const syntheticEmailDomain = "@gardening-diary.app"

// AuthService はアイディ/パスワード登録・ログイン・ソーシャルログインと
// プロファイル管理を提供するアイデンティティサービスです。
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	VerifyToken(ctx context.Context, idToken string) (*model.AuthResponse, error)
	GoogleLogin(ctx context.Context, req *model.GoogleLoginRequest) (*model.AuthResponse, error)
	GetUser(ctx context.Context, uid string) (*model.User, error)
	UpdateUser(ctx context.Context, uid string, req *model.UpdateUserRequest) (*model.User, error)
	DeleteUser(ctx context.Context, uid string) error
}

type authService struct {
	userRepo repository.UserRepository
	provider AuthProvider
}

func NewAuthService(userRepo repository.UserRepository, provider AuthProvider) AuthService {
	return &authService{
		userRepo: userRepo,
		provider: provider,
	}
}

// Register は新しいアカウントを作成します。
// 同じ username が既に存在する場合は2つ目のアカウントを作らず、
// 既存アカウントのトークンを再発行する (冪等なリカバリパス)。
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx).With("username", req.Username)

	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err == nil {
		logger.Info("Register called for existing username, reissuing token")
		return s.issueAuthResponse(ctx, existing)
	}
	if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to check username existence", "error", err)
		return nil, model.ErrInternalServer
	}

	firebaseEmail := req.Username + syntheticEmailDomain
	uid, err := s.provider.CreateUser(ctx, firebaseEmail, req.Password, req.DisplayName)
	if err != nil {
		// Firebase 側にだけアカウントが残っているケース:
		// ローカルプロファイルがあれば既存アカウントとして扱う
		if errors.Is(err, model.ErrConflict) {
			if existing, findErr := s.userRepo.FindByUsername(ctx, req.Username); findErr == nil {
				logger.Info("Provider account exists, recovering with existing profile")
				return s.issueAuthResponse(ctx, existing)
			}
			logger.Warn("Provider account exists without local profile")
			return nil, err
		}
		logger.Error("Failed to create provider account", "error", err)
		return nil, model.ErrInternalServer
	}

	// ローカルには必ずハッシュ化したパスワードを保存する
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, model.ErrInternalServer
	}

	user := &model.User{
		UID:          uid,
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		DisplayName:  req.DisplayName,
		Nickname:     req.DisplayName,
		AuthProvider: model.AuthProviderUsername,
	}
	if _, err := s.userRepo.Save(ctx, user); err != nil {
		logger.Error("Failed to save user profile", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("User registered", "uid", uid)
	return s.issueAuthResponse(ctx, user)
}

// Login はパスワードを検証し、認証基盤のトークンを発行します。
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx).With("username", req.Username)

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "アイディまたはパスワードが正しくありません", "", model.ErrUnauthorized)
		}
		logger.Error("Login failed: repository error", "error", err)
		return nil, model.ErrInternalServer
	}

	if user.PasswordHash == "" {
		logger.Warn("Login failed: account has no password login", "auth_provider", user.AuthProvider)
		return nil, model.NewAppError("PASSWORD_LOGIN_NOT_SUPPORTED", "このアカウントはパスワードログインに対応していません", "", model.ErrInvalidInput)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "uid", user.UID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "アイディまたはパスワードが正しくありません", "", model.ErrUnauthorized)
	}

	logger.Info("Login successful", "uid", user.UID)
	return s.issueAuthResponse(ctx, user)
}

// VerifyToken はトークンを検証し、対応するローカルプロファイルを解決します。
func (s *authService) VerifyToken(ctx context.Context, idToken string) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx)

	identity, err := s.provider.VerifyIDToken(ctx, idToken)
	if err != nil {
		logger.Warn("Token verification failed", "error", err)
		return nil, model.NewAppError("INVALID_TOKEN", "トークンの検証に失敗しました", "", model.ErrUnauthorized)
	}

	user, err := s.userRepo.FindByUID(ctx, identity.UID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Token verified but profile missing", "uid", identity.UID)
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザー情報が見つかりません", "", model.ErrNotFound)
		}
		return nil, model.ErrInternalServer
	}

	return &model.AuthResponse{
		Token:       idToken,
		UID:         user.UID,
		Identifier:  identifierOf(user),
		DisplayName: user.DisplayName,
	}, nil
}

// GoogleLogin はソーシャルトークンをローカルアイデンティティに交換します。
// 初回ログイン時はローカルプロファイルを作成する。
func (s *authService) GoogleLogin(ctx context.Context, req *model.GoogleLoginRequest) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx)

	identity, err := s.provider.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		logger.Warn("Google login failed: token verification error", "error", err)
		return nil, model.NewAppError("INVALID_TOKEN", "ソーシャルトークンの検証に失敗しました", "", model.ErrUnauthorized)
	}

	user, err := s.userRepo.FindByUID(ctx, identity.UID)
	if errors.Is(err, model.ErrNotFound) {
		user = &model.User{
			UID:             identity.UID,
			Email:           identity.Email,
			DisplayName:     identity.Name,
			Nickname:        identity.Name,
			ProfileImageURL: identity.PictureURL,
			AuthProvider:    model.AuthProviderGoogle,
		}
		if _, err := s.userRepo.Save(ctx, user); err != nil {
			logger.Error("Failed to create profile for social login", "error", err, "uid", identity.UID)
			return nil, model.ErrInternalServer
		}
		logger.Info("Created profile for first social login", "uid", identity.UID)
	} else if err != nil {
		logger.Error("Google login failed: repository error", "error", err)
		return nil, model.ErrInternalServer
	}

	return s.issueAuthResponse(ctx, user)
}

func (s *authService) GetUser(ctx context.Context, uid string) (*model.User, error) {
	user, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません", "", model.ErrNotFound)
		}
		return nil, model.ErrInternalServer
	}
	return user, nil
}

// UpdateUser は表示名とプロフィール画像URLの部分更新を行います。
func (s *authService) UpdateUser(ctx context.Context, uid string, req *model.UpdateUserRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx).With("uid", uid)

	user, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません", "", model.ErrNotFound)
		}
		return nil, model.ErrInternalServer
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.ProfileImageURL != nil {
		user.ProfileImageURL = *req.ProfileImageURL
	}

	updated, err := s.userRepo.Save(ctx, user)
	if err != nil {
		logger.Error("Failed to update user profile", "error", err)
		return nil, model.ErrInternalServer
	}
	logger.Info("User profile updated")
	return updated, nil
}

// DeleteUser は認証基盤側のアカウントとローカルプロファイルの両方を削除します。
func (s *authService) DeleteUser(ctx context.Context, uid string) error {
	logger := middleware.GetLogger(ctx).With("uid", uid)

	if err := s.provider.DeleteUser(ctx, uid); err != nil {
		logger.Error("Failed to delete provider account", "error", err)
		return model.ErrInternalServer
	}
	if err := s.userRepo.DeleteByUID(ctx, uid); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません", "", model.ErrNotFound)
		}
		logger.Error("Failed to delete user profile", "error", err)
		return model.ErrInternalServer
	}
	logger.Info("User deleted")
	return nil
}

func (s *authService) issueAuthResponse(ctx context.Context, user *model.User) (*model.AuthResponse, error) {
	logger := middleware.GetLogger(ctx)

	token, err := s.provider.IssueToken(ctx, user.UID)
	if err != nil {
		logger.Error("Failed to issue token", "error", err, "uid", user.UID)
		return nil, model.NewAppError("TOKEN_ISSUE_FAILED", "トークンの発行に失敗しました", "", model.ErrInternalServer)
	}

	return &model.AuthResponse{
		Token:       token,
		UID:         user.UID,
		Identifier:  identifierOf(user),
		DisplayName: user.DisplayName,
	}, nil
}

// identifierOf はプロバイダ種別に応じたアカウント識別子を返します。
func identifierOf(user *model.User) string {
	if user.Email != "" {
		return user.Email
	}
	return user.Username
}
