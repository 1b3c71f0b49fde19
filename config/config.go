package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	TokenTTLHours     int    `mapstructure:"TOKEN_TTL_HOURS"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Booking.
	AvailabilityCacheTTL   time.Duration `mapstructure:"AVAILABILITY_CACHE_TTL"`
	AvailabilityStrategy   string        `mapstructure:"AVAILABILITY_STRATEGY"`
	SlotGranularityMinutes int           `mapstructure:"SLOT_GRANULARITY_MINUTES"`
	BookingHorizonDays     int           `mapstructure:"BOOKING_HORIZON_DAYS"`
	SalonTimezone          string        `mapstructure:"SALON_TIMEZONE"`
	SearchRadiusKm         float64       `mapstructure:"SEARCH_RADIUS_KM"`
	CompletionSweepCron    string        `mapstructure:"COMPLETION_SWEEP_CRON"`
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

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("TOKEN_TTL_HOURS", 72)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "salonbook")
	viper.SetDefault("AVAILABILITY_CACHE_TTL", "2m")
	viper.SetDefault("AVAILABILITY_STRATEGY", "grid")
	viper.SetDefault("SLOT_GRANULARITY_MINUTES", 5)
	viper.SetDefault("BOOKING_HORIZON_DAYS", 90)
	viper.SetDefault("SALON_TIMEZONE", "Local")
	viper.SetDefault("SEARCH_RADIUS_KM", 10.0)
	viper.SetDefault("COMPLETION_SWEEP_CRON", "*/15 * * * *")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// SalonLocation resolves SALON_TIMEZONE, falling back to the server's local zone.
func SalonLocation() *time.Location {
	if AppConfig.SalonTimezone == "" || AppConfig.SalonTimezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(AppConfig.SalonTimezone)
	if err != nil {
		log.Printf("Unknown SALON_TIMEZONE %q, using local time", AppConfig.SalonTimezone)
		return time.Local
	}
	return loc
}

// TokenTTL is how long issued tokens stay valid.
func TokenTTL() time.Duration {
	if AppConfig.TokenTTLHours <= 0 {
		return 72 * time.Hour
	}
	return time.Duration(AppConfig.TokenTTLHours) * time.Hour
}
