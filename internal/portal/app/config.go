package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)
	Port      int    // HTTP server port (default: 8080)

	DatabaseFile string // Path to SQLite database file (default: ./portal.db)
	PepperFile   string // Path to password pepper file (default: ./pepper)

	SessionSecret string        // Required: HMAC secret for session cookie tokens
	SessionIssuer string        // Issuer claim for session tokens (default: venturebot)
	SessionTTL    time.Duration // Session lifetime (default: 7 days)

	RedisAddr string // Optional: redis address for the dashboard cache

	WhatsAppAPIURL      string // WhatsApp provider base URL
	WhatsAppAccessToken string // WhatsApp provider bearer token

	RazorpayKeyID     string // Razorpay key id (public, sent to checkout)
	RazorpayKeySecret string // Razorpay key secret (signs checkout callbacks)

	SMTPHost   string // Optional: SMTP host; empty disables email
	SMTPPort   int    // SMTP port (default: 465)
	SMTPUser   string
	SMTPPass   string
	SMTPSender string // From address for outgoing mail

	CORSOrigins []string // Allowed browser origins (default: http://localhost:5173)

	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Session purge interval (default: 1h)
}

func LoadConfig() Config {
	// Local development keeps its settings in a .env file; absence is fine.
	_ = godotenv.Load()

	cfg := Config{
		Env:       getEnvOrDefault("ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),
		Port:      getEnvIntOrDefault("PORT", 8080),

		DatabaseFile: getEnvOrDefault("PORTAL_DATABASE_FILE", "portal.db"),
		PepperFile:   getEnvOrDefault("PORTAL_PEPPER_FILE", "pepper"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionIssuer: getEnvOrDefault("SESSION_ISSUER", "venturebot"),
		SessionTTL:    getEnvDurationOrDefault("SESSION_TTL", 7*24*time.Hour),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		WhatsAppAPIURL:      os.Getenv("WA_API_URL"),
		WhatsAppAccessToken: os.Getenv("WA_ACCESS_TOKEN"),

		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),

		SMTPHost:   os.Getenv("SMTP_HOST"),
		SMTPPort:   getEnvIntOrDefault("SMTP_PORT", 465),
		SMTPUser:   os.Getenv("SMTP_USER"),
		SMTPPass:   os.Getenv("SMTP_PASS"),
		SMTPSender: getEnvOrDefault("SMTP_SENDER", "no-reply@venturebot.in"),

		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	origins := getEnvOrDefault("CORS_ORIGINS", "http://localhost:5173")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
