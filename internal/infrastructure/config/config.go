package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=1h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`

	Mongo        MongoConfig
	Redis        RedisConfig
	Admin        AdminConfig
	Notification NotificationConfig
	Storage      StorageConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=portfolio_cms"`
}

// RedisConfig is optional: an empty Addr disables Redis entirely
// (notification dedup falls back to at-least-once delivery).
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// AdminConfig seeds the initial admin account on startup. Seeding is skipped
// when Email is empty or the account already exists.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

type NotificationConfig struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `env:"TELEGRAM_CHAT_ID"`
	Email            string `env:"NOTIFICATION_EMAIL"`
	Workers          int    `env:"NOTIFICATION_WORKERS, default=4"`
}

// StorageConfig selects the upload backend: "local" writes under UploadDir
// and serves files at BaseURL, "s3" uploads to the configured bucket.
type StorageConfig struct {
	Driver    string `env:"STORAGE_DRIVER, default=local"`
	UploadDir string `env:"UPLOAD_DIR,     default=./uploads"`
	BaseURL   string `env:"UPLOAD_BASE_URL, default=/uploads"`

	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION"`
	S3KeyPrefix string `env:"S3_KEY_PREFIX"`
	S3BaseURL   string `env:"S3_BASE_URL"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
