package config

import (
	"os"
	"strconv"
	"time"
)

// Booking configures the embedded third-party scheduling widget
type Booking struct {
	URL             string
	BackgroundColor string
	TextColor       string
	AccentColor     string
	Height          int
}

type Config struct {
	Port                    string
	Env                     string
	PostgresDSN             string
	MongoURI                string
	FirebaseCredentialsPath string
	MongoDatabase           string
	StorageBucket           string
	StoragePublicBaseURL    string
	SignedURLTTL            time.Duration
	ApproveUploads          bool
	Booking                 Booking
}

func Load() *Config {
	return &Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		PostgresDSN:             getEnv("POSTGRES_CONN_STR", ""),
		MongoURI:                getEnv("MONGO_URI", ""),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase_credentials.json"),
		MongoDatabase:           getEnv("MONGO_DATABASE", "bymariana"),
		StorageBucket:           getEnv("STORAGE_BUCKET", "bymariana"),
		StoragePublicBaseURL:    getEnv("STORAGE_PUBLIC_BASE_URL", ""),
		SignedURLTTL:            time.Duration(getEnvInt("SIGNED_URL_TTL_SECONDS", 3600)) * time.Second,
		ApproveUploads:          getEnvBool("APPROVE_UPLOADS", true),
		Booking: Booking{
			URL:             getEnv("BOOKING_URL", "https://calendly.com/bymariana/estimate"),
			BackgroundColor: getEnv("BOOKING_BACKGROUND_COLOR", "fff7f2"),
			TextColor:       getEnv("BOOKING_TEXT_COLOR", "2e2a27"),
			AccentColor:     getEnv("BOOKING_ACCENT_COLOR", "c79a63"),
			Height:          getEnvInt("BOOKING_HEIGHT", 700),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
