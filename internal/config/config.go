package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	AppEnv            string
	AppName           string
	AppVersion        string
	AppPort           string
	DbDriver          string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	SqlitePath        string
	AllowedOrigins    []string
	TranslationFolder string
	AutoMigrate       bool
	ShutdownTimeout   time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppEnv:            parseAppEnv(getEnv("APP_ENV", EnvDevelopment)),
		AppName:           getEnv("APP_NAME", "tasklist"),
		AppVersion:        getEnv("APP_VERSION", "dev"),
		AppPort:           getEnv("APP_PORT", "8080"),
		DbDriver:          strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DbHost:            getEnv("MYSQL_HOST", "localhost"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "root"),
		DbPassword:        getEnv("MYSQL_PASSWORD", ""),
		DbName:            getEnv("MYSQL_DATABASE", "tasklistapp"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true"),
		SqlitePath:        getEnv("SQLITE_PATH", "data/tasklist.db"),
		AllowedOrigins:    parseList(getEnv("ALLOWED_ORIGIN", "http://localhost:5173")),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		AutoMigrate:       parseBool(getEnv("AUTO_MIGRATE", "true"), true),
		ShutdownTimeout:   parseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == EnvDevelopment
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseAppEnv(value string) string {
	if strings.EqualFold(strings.TrimSpace(value), EnvProduction) {
		return EnvProduction
	}
	return EnvDevelopment
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}

func parseBool(value string, fallback bool) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
