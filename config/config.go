package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisAuthDB    int    `mapstructure:"REDIS_AUTH_DB"`
	RedisNoticeDB  int    `mapstructure:"REDIS_NOTICE_DB"`
	RedisMirrorDB  int    `mapstructure:"REDIS_MIRROR_QUEUE_DB"`

	// External laundry platform.
	LaundryAPIBaseURL string `mapstructure:"LAUNDRY_API_BASE_URL"`
	LaundryAPIKeyURL  string `mapstructure:"LAUNDRY_API_KEY_URL"`
	LaundryAPIKey     string `mapstructure:"LAUNDRY_API_KEY"`

	// Exposes GET /api/saas/key when true. Legacy client path only;
	// the proxy endpoint is the supported route.
	ExposeRawAPIKey bool `mapstructure:"EXPOSE_RAW_API_KEY"`

	// Stripe secret key for the payment step.
	StripeKey string `mapstructure:"STRIPE_KEY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_NOTICE_DB", 2)
	viper.SetDefault("REDIS_MIRROR_QUEUE_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("LAUNDRY_API_BASE_URL", "https://cleancloudapp.com/api")
	viper.SetDefault("LAUNDRY_API_KEY_URL", "")
	viper.SetDefault("LAUNDRY_API_KEY", "")
	viper.SetDefault("EXPOSE_RAW_API_KEY", false)
	viper.SetDefault("STRIPE_KEY", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
