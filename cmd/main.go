// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"github.com/rkrkrk1234/diarygarden/internal/config"
	"github.com/rkrkrk1234/diarygarden/internal/handlers"
	"github.com/rkrkrk1234/diarygarden/internal/middleware"
	"github.com/rkrkrk1234/diarygarden/internal/repository"
	"github.com/rkrkrk1234/diarygarden/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// version はビルド時に -ldflags で上書きする
var version = "dev"

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("version", version))

	ctx := context.Background()

	// 2. Firestore クライアントを初期化
	firestoreClient, err := repository.NewFirestoreClient(ctx, &config.Cfg, logger)
	if err != nil {
		slog.Error("Error initializing Firestore client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := firestoreClient.Close(); err != nil {
			slog.Error("Error closing Firestore client", slog.Any("error", err))
		} else {
			slog.Info("Firestore client closed.")
		}
	}()

	// 3. 認証プロバイダ (本番: Firebase Auth / 開発: ローカルJWT)
	var authProvider service.AuthProvider
	if config.Cfg.Auth.DevMode {
		authProvider = service.NewDevAuthProvider(&config.Cfg, logger)
	} else {
		authProvider, err = service.NewFirebaseAuthProvider(ctx, &config.Cfg, logger)
		if err != nil {
			slog.Error("Error initializing Firebase auth provider", slog.Any("error", err))
			os.Exit(1)
		}
	}

	// 4. Dependency Injection
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	gardenRepo := repository.NewFirestoreGardenRepository(firestoreClient)
	treeRepo := repository.NewFirestoreTreeRepository(firestoreClient)
	diaryRepo := repository.NewFirestoreDiaryRepository(firestoreClient)
	emotionRepo := repository.NewFirestoreEmotionAnalysisRepository(firestoreClient)

	emotionAnalyzer := service.NewRestEmotionAnalyzer(&config.Cfg, logger)

	authService := service.NewAuthService(userRepo, authProvider)
	gardenService := service.NewGardenService(gardenRepo)
	treeService := service.NewTreeService(treeRepo)
	diaryService := service.NewDiaryService(diaryRepo, treeRepo, emotionRepo)
	emotionService := service.NewEmotionService(diaryService, emotionRepo, emotionAnalyzer)

	authHandler := handlers.NewAuthHandler(authService, logger)
	gardenHandler := handlers.NewGardenHandler(gardenService, logger)
	treeHandler := handlers.NewTreeHandler(treeService, logger)
	diaryHandler := handlers.NewDiaryHandler(diaryService, logger)
	emotionHandler := handlers.NewEmotionHandler(emotionService, logger)
	healthHandler := handlers.NewHealthHandler(version)

	// 5. Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api", func(r chi.Router) {
		// --- Public routes ---
		r.Get("/health", healthHandler.Health)
		r.Get("/info", healthHandler.Info)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/google", authHandler.GoogleLogin)
			r.Post("/verify", authHandler.VerifyToken)

			// --- Protected account routes ---
			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthMiddleware(authProvider))
				r.Get("/user", authHandler.GetMe)
				r.Put("/user", authHandler.UpdateMe)
				r.Delete("/user", authHandler.DeleteMe)
			})
		})

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(authProvider))

			r.Route("/gardens", func(r chi.Router) {
				r.Post("/", gardenHandler.Upsert)
				r.Get("/me", gardenHandler.GetMine)
				r.Get("/{gardenId}", gardenHandler.GetByID)
				r.Put("/{gardenId}", gardenHandler.Update)
				r.Delete("/{gardenId}", gardenHandler.Delete)
			})

			r.Route("/trees", func(r chi.Router) {
				r.Post("/", treeHandler.Create)
				r.Get("/", treeHandler.List)
				r.Get("/{treeId}", treeHandler.GetByID)
				r.Put("/{treeId}", treeHandler.Update)
				r.Delete("/{treeId}", treeHandler.Delete)
			})

			r.Route("/diaries", func(r chi.Router) {
				r.Post("/", diaryHandler.Create)
				r.Get("/", diaryHandler.List)
				r.Get("/count", diaryHandler.Count)
				r.Get("/tree/{treeId}", diaryHandler.ListByTree)
				r.Get("/{diaryId}", diaryHandler.GetByID)
				r.Put("/{diaryId}", diaryHandler.Update)
				r.Delete("/{diaryId}", diaryHandler.Delete)
			})

			r.Route("/emotions", func(r chi.Router) {
				r.Get("/{diaryId}", emotionHandler.GetByDiary)
				r.Post("/{diaryId}/recompute", emotionHandler.Recompute)
			})
		})
	})

	// 6. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
