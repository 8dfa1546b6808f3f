package configs

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Env  string
	Port string

	// StoreDriver selects the persistence backend: mongo, postgres or memory.
	StoreDriver string
	MongoURI    string
	DatabaseURL string

	RedisURL            string
	NotificationChannel string
	IdempotencyTTL      time.Duration

	CORSAllowedOrigins  []string
	AllowedEmailDomains []string
	DefaultLocale       string

	AWSRegion                string
	AWSAccessKeyID           string
	AWSSecretAccessKey       string
	EmailFrom                string
	EmailTo                  string
	EmailTemplateReservation string
	EmailTemplateContact     string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string
}

// Load reads envFile (if it exists) into the process environment and
// builds a Config from it. Variables already set in the environment win
// over the file.
func Load(envFile string) *Config {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	ttl, err := time.ParseDuration(getEnv("IDEMPOTENCY_TTL", "10m"))
	if err != nil {
		ttl = 10 * time.Minute
	}

	return &Config{
		Env:                      getEnv("ENV", EnvDevelopment),
		Port:                     getEnv("PORT", "8080"),
		StoreDriver:              strings.ToLower(getEnv("STORE_DRIVER", "mongo")),
		MongoURI:                 getEnv("MONGOURI", "mongodb://localhost:27017/restaurant"),
		DatabaseURL:              os.Getenv("DATABASE_URL"),
		RedisURL:                 os.Getenv("REDISURL"),
		NotificationChannel:      getEnv("NOTIFICATION_CHANNEL", "restaurant.notifications"),
		IdempotencyTTL:           ttl,
		CORSAllowedOrigins:       splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		AllowedEmailDomains:      splitList(os.Getenv("ALLOWED_EMAIL_DOMAINS")),
		DefaultLocale:            getEnv("DEFAULT_LOCALE", "de"),
		AWSRegion:                getEnv("AWS_REGION", "eu-central-1"),
		AWSAccessKeyID:           os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:       os.Getenv("AWS_SECRET_ACCESS_KEY"),
		EmailFrom:                os.Getenv("EMAIL_FROM"),
		EmailTo:                  os.Getenv("EMAIL_TO"),
		EmailTemplateReservation: os.Getenv("EMAIL_TEMPLATE_RESERVATION"),
		EmailTemplateContact:     os.Getenv("EMAIL_TEMPLATE_CONTACT"),
		TwilioAccountSID:         os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:          os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFrom:               os.Getenv("TWILIO_FROM"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// MailEnabled reports whether enough is configured to send notification email.
func (c *Config) MailEnabled() bool {
	return c.EmailFrom != "" && c.EmailTo != ""
}

func (c *Config) SMSEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFrom != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
