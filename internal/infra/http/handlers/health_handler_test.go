package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHealthHandlerWithoutDependencies - sin dependencias configuradas el
// estado es healthy (not configured no es degradado)
func TestHealthHandlerWithoutDependencies(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "")

	h := NewHealthHandler(nil, nil)

	req := httptest.NewRequest("GET", "/healthz", nil)
	rr := httptest.NewRecorder()

	h.Handle(rr, req)

	assert.Equal(t, 200, rr.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "not configured", resp.Dependencies["mongodb"])
	assert.Equal(t, "not configured", resp.Dependencies["rabbitmq"])
	assert.Equal(t, "not configured", resp.Dependencies["resend"])
}

func TestHealthHandlerResendConfigured(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "re_test_123")

	h := NewHealthHandler(nil, nil)

	req := httptest.NewRequest("GET", "/healthz", nil)
	rr := httptest.NewRecorder()

	h.Handle(rr, req)

	assert.Equal(t, 200, rr.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "configured", resp.Dependencies["resend"])
}
