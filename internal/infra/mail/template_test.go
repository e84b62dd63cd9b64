package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistrationURLEncodesParams - el deep link lleva imei y email
// percent-encoded (el script original interpolaba crudo)
func TestRegistrationURLEncodesParams(t *testing.T) {
	url := RegistrationURL("https://registroimeimultibanda.cl", "123456789012345", "juan+pruebas@x.com")

	assert.True(t, strings.HasPrefix(url, "https://registroimeimultibanda.cl/registro-dispositivo?"))
	assert.Contains(t, url, "imei=123456789012345")
	assert.Contains(t, url, "email=juan%2Bpruebas%40x.com")
	assert.NotContains(t, url, "juan+pruebas@x.com")
}

// TestRenderFollowUpBody - el imei aparece en el texto y en el link
func TestRenderFollowUpBody(t *testing.T) {
	html, err := renderFollowUp("https://registroimeimultibanda.cl", "123456789012345", "a@x.com")
	require.NoError(t, err)

	assert.Contains(t, html, "<strong>123456789012345</strong>")
	assert.Contains(t, html, "registro-dispositivo?email=a%40x.com&imei=123456789012345")
	assert.Contains(t, html, "El equipo de Registro IMEI Multibanda")
}
