package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr    string
	DBPath        string
	AdminPassword string

	MediaAccountID       string
	MediaAccessKeyID     string
	MediaSecretAccessKey string
	MediaBucket          string
	MediaFolder          string
	CDNDomain            string

	LogLevel string
	LogFile  string
}

// Load reads configuration from the environment, after loading a .env file
// if one is present in the working directory.
func Load() *Config {
	// Ignore the error: a missing .env simply means plain env vars.
	_ = godotenv.Load()

	return &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":5001"),
		DBPath:        getEnv("DB_PATH", "/data/folio.db"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),

		MediaAccountID:       getEnv("R2_ACCOUNT_ID", ""),
		MediaAccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		MediaSecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		MediaBucket:          getEnv("MEDIA_BUCKET", "portfolio"),
		MediaFolder:          getEnv("MEDIA_FOLDER", "portfolio_uploads"),
		CDNDomain:            getEnv("CDN_DOMAIN", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
