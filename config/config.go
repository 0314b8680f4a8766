package config

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// YouTube proxy settings
func GetYouTubeAPIKey() string {
	return getEnvWithDefault("YOUTUBE_API_KEY", "")
}

func GetYouTubeChannelID() string {
	return getEnvWithDefault("YOUTUBE_CHANNEL_ID", "UCPrWoYShjSnfSxgkbOk-PiQ")
}

func GetYouTubeBaseURL() string {
	return getEnvWithDefault("YOUTUBE_API_BASE", "https://www.googleapis.com/youtube/v3")
}

// Geocoder settings
func GetGeocoderURL() string {
	return getEnvWithDefault("GEOCODER_URL", "https://nominatim.openstreetmap.org/search")
}

// GetSermonRefreshCron is the cron spec for background sermon cache warming.
func GetSermonRefreshCron() string {
	return getEnvWithDefault("SERMON_REFRESH_CRON", "@every 1h")
}

// GetDataDir points at optional YAML dataset overrides; empty means use the
// built-in datasets only.
func GetDataDir() string {
	return getEnvWithDefault("DATA_DIR", "")
}

func GetSermonPageSize() int {
	return getEnvAsInt("SERMON_PAGE_SIZE", 10)
}

func GetSiteBaseURL() string {
	return getEnvWithDefault("SITE_BASE_URL", "https://www.christsheartministries.org")
}

// LoadEnv loads environment variables from a .env file if one exists.
func LoadEnv() error {
	possiblePaths := []string{
		".env",
		"../.env",
		os.Getenv("MINISTRY_ENV"),
	}

	var loadedFile string
	for _, path := range possiblePaths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			loadedFile = path
			log.Printf("Found .env file at: %s", path)
			break
		}
	}

	if loadedFile == "" {
		// All settings have defaults, so a missing .env is fine.
		return nil
	}

	file, err := os.Open(loadedFile)
	if err != nil {
		return fmt.Errorf("error opening .env file: %v", err)
	}
	defer file.Close()

	log.Printf("Loading environment variables from %s", loadedFile)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
	return scanner.Err()
}

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
