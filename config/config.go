package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Voice platform configuration. SkillAppID is the application identity
	// the inbound webhook must present; requests carrying any other ID are
	// rejected outright.
	SkillAppID string `mapstructure:"SKILL_APP_ID"`

	// Booking policy.
	RoomNames          string `mapstructure:"ROOM_NAMES"`
	MaxMeetingMinutes  int    `mapstructure:"MAX_MEETING_MINUTES"`
	SessionTTLMinutes  int    `mapstructure:"SESSION_TTL_MINUTES"`
	AvailabilityTimeMs int    `mapstructure:"AVAILABILITY_TIMEOUT_MS"`

	// Calendar provider.
	CalendarBaseURL string `mapstructure:"CALENDAR_BASE_URL"`
	CalendarToken   string `mapstructure:"CALENDAR_TOKEN"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("SKILL_APP_ID", "")
	viper.SetDefault("ROOM_NAMES", "")
	viper.SetDefault("MAX_MEETING_MINUTES", 120)
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("AVAILABILITY_TIMEOUT_MS", 6000)
	viper.SetDefault("CALENDAR_BASE_URL", "http://localhost:9090/api")
	viper.SetDefault("CALENDAR_TOKEN", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// BookableRooms returns the configured room allow-list as a slice.
func BookableRooms() []string {
	raw := strings.Split(AppConfig.RoomNames, ",")
	rooms := make([]string, 0, len(raw))
	for _, r := range raw {
		if trimmed := strings.TrimSpace(r); trimmed != "" {
			rooms = append(rooms, trimmed)
		}
	}
	return rooms
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
