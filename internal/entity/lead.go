package entity

import (
	"context"
	"time"
)

// Lead: usuario que verificó un IMEI en el sitio pero no completó el registro.
// Lo crea el flujo de verificación (frontend); este servicio solo lee y
// marca followUpSent.
type Lead struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email,omitempty" json:"email"`
	IMEI         string    `bson:"imei,omitempty" json:"imei"`
	CreatedAt    time.Time `bson:"createdAt" json:"created_at"`
	FollowUpSent bool      `bson:"followUpSent" json:"follow_up_sent"`
}

// IsComplete: sin email o sin imei no hay a quién ni qué recordar.
func (l *Lead) IsComplete() bool {
	return l.Email != "" && l.IMEI != ""
}

type LeadRepositoryInterface interface {

	// FindEligible busca leads con followUpSent=false y createdAt dentro
	// de la ventana de seguimiento, del más nuevo al más viejo.
	FindEligible(ctx context.Context, now time.Time) ([]*Lead, error)

	// MarkFollowUpSent deja el lead fuera de futuras corridas. Es de ida:
	// no existe des-marcar.
	MarkFollowUpSent(ctx context.Context, id string) error
}
