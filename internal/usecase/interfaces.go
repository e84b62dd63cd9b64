package usecase

import (
	"context"

	"github.com/registroimeimultibanda/lead-followup/internal/infra/queue"
)

type EmailService interface {
	SendFollowUp(ctx context.Context, toEmail, imei string) error
}

type FollowUpProducerInterface interface {
	PublishFollowUp(ctx context.Context, payload queue.FollowUpPayload) error
}

type FollowUpInput struct {
	RunID string `json:"run_id"`
}

// FollowUpSummary: conteo de la corrida, para log y métricas.
type FollowUpSummary struct {
	RunID     string `json:"run_id"`
	Eligible  int    `json:"eligible"`
	Contacted int    `json:"contacted"` // correo enviado y lead marcado
	Converted int    `json:"converted"` // ya tenía registro, marcado sin correo
	Skipped   int    `json:"skipped"`   // sin email o imei, no se tocó
	Failed    int    `json:"failed"`    // envío u otra falla, queda pendiente
}
