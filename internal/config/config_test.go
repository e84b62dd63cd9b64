package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "registro-imei", cfg.MongoDatabase)
	assert.Equal(t, time.Hour, cfg.FollowUpMinAge)
	assert.Equal(t, 48*time.Hour, cfg.FollowUpMaxAge)
	assert.Equal(t, "resend", cfg.MailProvider)
	assert.Equal(t, "https://api.resend.com", cfg.ResendBaseURL)
	assert.Equal(t, "@hourly", cfg.FollowUpSchedule)
}

// TestLoadWithoutMongoURL - error de configuración: fatal antes de
// ejecutar ninguna consulta
func TestLoadWithoutMongoURL(t *testing.T) {
	t.Setenv("MONGODB_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidWindow(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
	t.Setenv("FOLLOWUP_MIN_AGE", "72h")
	t.Setenv("FOLLOWUP_MAX_AGE", "48h")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ventana de seguimiento inválida")
}
