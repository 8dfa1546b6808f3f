package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg := Load("")

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongo", cfg.StoreDriver)
	assert.Equal(t, "mongodb://localhost:27017/restaurant", cfg.MongoURI)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.AllowedEmailDomains)
	assert.Equal(t, "de", cfg.DefaultLocale)
	assert.Equal(t, 10*time.Minute, cfg.IdempotencyTTL)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.MailEnabled())
	assert.False(t, cfg.SMSEnabled())
}

func TestLoad_CustomEnv(t *testing.T) {
	os.Clearenv()
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("ALLOWED_EMAIL_DOMAINS", "gmail.com")
	t.Setenv("IDEMPOTENCY_TTL", "30s")
	t.Setenv("EMAIL_FROM", "noreply@example.com")
	t.Setenv("EMAIL_TO", "table@example.com")

	cfg := Load("")

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, []string{"gmail.com"}, cfg.AllowedEmailDomains)
	assert.Equal(t, 30*time.Second, cfg.IdempotencyTTL)
	assert.True(t, cfg.MailEnabled())
}

func TestLoad_InvalidTTLFallsBack(t *testing.T) {
	os.Clearenv()
	t.Setenv("IDEMPOTENCY_TTL", "soon")

	cfg := Load("")

	assert.Equal(t, 10*time.Minute, cfg.IdempotencyTTL)
}

func TestLoad_EnvFile(t *testing.T) {
	os.Clearenv()
	path := filepath.Join(t.TempDir(), ".env")
	assert.NoError(t, os.WriteFile(path, []byte("PORT=7000\nTWILIO_ACCOUNT_SID=AC1\nTWILIO_AUTH_TOKEN=tok\nTWILIO_FROM=+41000000000\n"), 0o600))
	t.Cleanup(func() {
		for _, k := range []string{"PORT", "TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN", "TWILIO_FROM"} {
			_ = os.Unsetenv(k)
		}
	})

	cfg := Load(path)

	assert.Equal(t, "7000", cfg.Port)
	assert.True(t, cfg.SMSEnabled())
}

func TestDatabaseName(t *testing.T) {
	assert.Equal(t, "bistro", DatabaseName("mongodb://user:pw@localhost:27017/bistro?authSource=admin"))
	assert.Equal(t, "restaurant", DatabaseName("mongodb://localhost:27017"))
	assert.Equal(t, "restaurant", DatabaseName("mongodb://localhost:27017/"))
}

func TestInitLogger(t *testing.T) {
	InitLogger(EnvProduction)
	assert.False(t, Logger.IsLevelEnabled(logrus.DebugLevel), "production logger should not allow debug level")
	_, isJSON := Logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)

	InitLogger(EnvDevelopment)
	assert.True(t, Logger.IsLevelEnabled(logrus.DebugLevel), "development logger should allow debug level")

	entry := LogWithContext("http", "request")
	assert.Equal(t, "http", entry.Data["component"])
	assert.Equal(t, "request", entry.Data["operation"])
}
