// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Firebase struct {
		ProjectID       string `mapstructure:"project_id"`
		CredentialsFile string `mapstructure:"credentials_file"`
		// CredentialsJSON は環境変数経由でクレデンシャルJSONを直接渡す場合に使う
		CredentialsJSON string `mapstructure:"credentials_json"`
		WebAPIKey       string `mapstructure:"web_api_key"`
	} `mapstructure:"firebase"`
	Emotion struct {
		APIURL    string `mapstructure:"api_url"`
		APIKey    string `mapstructure:"api_key"`
		HealthURL string `mapstructure:"health_url"`
	} `mapstructure:"emotion"`
	Auth struct {
		// DevMode が true の場合、Firebase の代わりにローカル署名のJWTで認証する
		DevMode bool `mapstructure:"dev_mode"`
	} `mapstructure:"auth"`
	JWT struct {
		SecretKey      string        `mapstructure:"secret_key"`
		AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
	} `mapstructure:"jwt"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数からの上書き (デプロイ環境ではこちらを使う)
	viper.AutomaticEnv()
	viper.BindEnv("firebase.project_id", "GCP_PROJECT_ID")
	viper.BindEnv("firebase.credentials_file", "FIREBASE_CREDENTIALS_FILE")
	viper.BindEnv("firebase.credentials_json", "FIREBASE_CREDENTIALS_JSON")
	viper.BindEnv("firebase.web_api_key", "FIREBASE_WEB_API_KEY")
	viper.BindEnv("emotion.api_url", "EMOTION_API_URL")
	viper.BindEnv("emotion.api_key", "EMOTION_API_KEY")
	viper.BindEnv("emotion.health_url", "EMOTION_API_HEALTH_URL")
	viper.BindEnv("auth.dev_mode", "AUTH_DEV_MODE")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default ':8080'")
		Cfg.Server.Port = ":8080"
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = "info"
	}
	if len(Cfg.CORS.AllowedOrigins) == 0 {
		Cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if len(Cfg.CORS.AllowedMethods) == 0 {
		Cfg.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if len(Cfg.CORS.AllowedHeaders) == 0 {
		Cfg.CORS.AllowedHeaders = []string{"Authorization", "Content-Type"}
	}
	if Cfg.JWT.AccessTokenTTL <= 0 {
		Cfg.JWT.AccessTokenTTL = time.Hour
	}
	if Cfg.Auth.DevMode && Cfg.JWT.SecretKey == "" {
		log.Println("Warning: auth.dev_mode is enabled but jwt.secret_key is empty, using insecure default")
		Cfg.JWT.SecretKey = "dev-secret-key"
	}
	if !Cfg.Auth.DevMode && Cfg.Firebase.ProjectID == "" {
		log.Println("Warning: Firebase project ID is not set in config.")
	}
	if Cfg.Emotion.APIURL == "" {
		log.Println("Warning: emotion.api_url is not set, emotion analysis will fall back to neutral.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Auth Dev Mode: %t", Cfg.Auth.DevMode)

	return nil
}
