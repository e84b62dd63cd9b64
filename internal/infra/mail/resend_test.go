package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFrom = "Registro IMEI Multibanda <registro@registroimeimultibanda.cl>"

// TestResendSendFollowUpSuccess - payload y headers como los espera la API
func TestResendSendFollowUpSuccess(t *testing.T) {
	var got sendEmailRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotAuth = r.Header.Get("Authorization")

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sendEmailResponse{ID: "email-123"})
	}))
	defer server.Close()

	client := NewResendClient("test-key", server.URL, testFrom, "https://registroimeimultibanda.cl")

	err := client.SendFollowUp(context.Background(), "a@x.com", "123456789012345")

	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, testFrom, got.From)
	assert.Equal(t, []string{"a@x.com"}, got.To)
	assert.Equal(t, followUpSubject, got.Subject)
	assert.Contains(t, got.HTML, "<strong>123456789012345</strong>")
	assert.Contains(t, got.HTML, "registro-dispositivo?email=a%40x.com&imei=123456789012345")
}

// TestResendSendFollowUpAPIError - en non-2xx el cuerpo de la respuesta
// queda en el error para el diagnóstico, y el envío cuenta como fallido
func TestResendSendFollowUpAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"The from address is not verified"}`))
	}))
	defer server.Close()

	client := NewResendClient("test-key", server.URL, testFrom, "https://registroimeimultibanda.cl")

	err := client.SendFollowUp(context.Background(), "a@x.com", "123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 422")
	assert.Contains(t, err.Error(), "The from address is not verified")
}

// TestResendSendFollowUpWithoutAPIKey - sin key no se hace ningún request;
// el error es por-envío, no fatal
func TestResendSendFollowUpWithoutAPIKey(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := NewResendClient("", server.URL, testFrom, "https://registroimeimultibanda.cl")

	err := client.SendFollowUp(context.Background(), "a@x.com", "123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "RESEND_API_KEY")
	assert.Equal(t, 0, requests)
}
