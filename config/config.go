package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisContextDB int    `mapstructure:"REDIS_CONTEXT_DB"`

	// Gemini completion service.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Workflow tuning.
	NodeTimeoutSeconds int `mapstructure:"NODE_TIMEOUT_SECONDS"`

	// Budget allocation heuristics: the share of the total trip budget
	// reserved per category. Tunable, not invariants.
	HotelBudgetShare    float64 `mapstructure:"HOTEL_BUDGET_SHARE"`
	ActivityBudgetShare float64 `mapstructure:"ACTIVITY_BUDGET_SHARE"`

	// Result caps per category.
	MaxFlightOptions   int `mapstructure:"MAX_FLIGHT_OPTIONS"`
	MaxHotelOptions    int `mapstructure:"MAX_HOTEL_OPTIONS"`
	MaxActivityOptions int `mapstructure:"MAX_ACTIVITY_OPTIONS"`
	MaxForecastDays    int `mapstructure:"MAX_FORECAST_DAYS"`
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
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_CONTEXT_DB", 1)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("NODE_TIMEOUT_SECONDS", 30)
	viper.SetDefault("HOTEL_BUDGET_SHARE", 0.4)
	viper.SetDefault("ACTIVITY_BUDGET_SHARE", 0.2)
	viper.SetDefault("MAX_FLIGHT_OPTIONS", 5)
	viper.SetDefault("MAX_HOTEL_OPTIONS", 5)
	viper.SetDefault("MAX_ACTIVITY_OPTIONS", 10)
	viper.SetDefault("MAX_FORECAST_DAYS", 14)

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

// NodeTimeout returns the per-node deadline applied around each external
// delegation (completion service or search provider).
func NodeTimeout() time.Duration {
	secs := AppConfig.NodeTimeoutSeconds
	if secs <= 0 {
		secs = 30
	}
	return time.Duration(secs) * time.Second
}
