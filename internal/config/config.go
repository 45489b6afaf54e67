package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port string

	PostgresURL string
	RedisAddr   string

	JWTSecret string
	JWTTTL    time.Duration

	LogLevel  string
	LogFormat string

	Playback PlaybackConfig
	S3       S3Config
	Sepay    SepayConfig

	PaginationMaxLimit        int
	NotificationRetentionDays int
}

type PlaybackConfig struct {
	CDNDomain     string
	KeyPairID     string
	PrivateKeyPEM string
	URLTTL        time.Duration
}

type S3Config struct {
	Region    string
	AccessKey string
	SecretKey string
}

type SepayConfig struct {
	// Empty secret puts the webhook in unverified mode.
	WebhookSecret string
	GatewayName   string
}

// Load reads .env (if any) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("JWT_TTL_MINUTES", 60)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("PLAYBACK_URL_TTL_SECONDS", 3600)
	v.SetDefault("S3_REGION", "ap-southeast-1")
	v.SetDefault("SEPAY_GATEWAY_NAME", "sepay")
	v.SetDefault("PAGINATION_MAX_LIMIT", 100)
	v.SetDefault("NOTIFICATION_RETENTION_DAYS", 30)

	cfg := &Config{
		Port:        v.GetString("PORT"),
		PostgresURL: v.GetString("POSTGRES_URL"),
		RedisAddr:   v.GetString("REDIS_ADDR"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		JWTTTL:      time.Duration(v.GetInt("JWT_TTL_MINUTES")) * time.Minute,
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   v.GetString("LOG_FORMAT"),
		Playback: PlaybackConfig{
			CDNDomain:     strings.TrimSuffix(v.GetString("CDN_DOMAIN"), "/"),
			KeyPairID:     v.GetString("CLOUDFRONT_KEY_PAIR_ID"),
			PrivateKeyPEM: v.GetString("CLOUDFRONT_PRIVATE_KEY"),
			URLTTL:        time.Duration(v.GetInt("PLAYBACK_URL_TTL_SECONDS")) * time.Second,
		},
		S3: S3Config{
			Region:    v.GetString("S3_REGION"),
			AccessKey: v.GetString("S3_ACCESS_KEY"),
			SecretKey: v.GetString("S3_SECRET_KEY"),
		},
		Sepay: SepayConfig{
			WebhookSecret: v.GetString("SEPAY_WEBHOOK_SECRET"),
			GatewayName:   v.GetString("SEPAY_GATEWAY_NAME"),
		},
		PaginationMaxLimit:        v.GetInt("PAGINATION_MAX_LIMIT"),
		NotificationRetentionDays: v.GetInt("NOTIFICATION_RETENTION_DAYS"),
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "change-me"
	}
	if cfg.PaginationMaxLimit < 1 {
		cfg.PaginationMaxLimit = 100
	}

	return cfg, nil
}
