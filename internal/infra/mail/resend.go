package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type ResendClient struct {
	baseURL string
	apiKey  string
	from    string
	siteURL string
	http    *http.Client
}

func NewResendClient(apiKey, baseURL, from, siteURL string) *ResendClient {
	return &ResendClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		from:    from,
		siteURL: siteURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SendFollowUp: Envía el recordatorio vía la API de Resend
func (c *ResendClient) SendFollowUp(ctx context.Context, toEmail, imei string) error {
	// Sin API key el envío falla pero la corrida sigue: el lead queda
	// pendiente y se reintenta en la próxima.
	if c.apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY no encontrada, no se puede enviar el correo")
	}

	// 1. Renderiza el cuerpo
	html, err := renderFollowUp(c.siteURL, imei, toEmail)
	if err != nil {
		return err
	}

	payload := sendEmailRequest{
		From:    c.from,
		To:      []string{toEmail},
		Subject: followUpSubject,
		HTML:    html,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error al marshal payload: %w", err)
	}

	// 2. Arma el request
	url := fmt.Sprintf("%s/emails", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	// 3. Envía
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error request resend: %w", err)
	}
	defer resp.Body.Close()

	// 4. Trata el error: el cuerpo de la respuesta va al log y al error
	// para poder diagnosticar (key inválida, dominio sin verificar, etc.)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("❌ ERROR API RESEND (Status %d): %s\n", resp.StatusCode, string(body))
		return fmt.Errorf("api resend rechazó el envío (status %d): %s", resp.StatusCode, string(body))
	}

	// 5. Decodifica
	var response sendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("error decode resend: %w", err)
	}

	return nil
}

// setHeaders centraliza los headers obligatorios
func (c *ResendClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "LeadFollowup/1.0")
}
