package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/registroimeimultibanda/lead-followup/internal/entity"
	"github.com/registroimeimultibanda/lead-followup/internal/infra/queue"
)

type FollowUpLeadsUseCase struct {
	Leads         entity.LeadRepositoryInterface
	Registrations entity.RegistrationRepositoryInterface
	EmailService  EmailService
	Queue         FollowUpProducerInterface // opcional, nil si no hay broker
}

func NewFollowUpLeadsUseCase(
	leads entity.LeadRepositoryInterface,
	registrations entity.RegistrationRepositoryInterface,
	emailService EmailService,
	producer FollowUpProducerInterface,
) *FollowUpLeadsUseCase {
	return &FollowUpLeadsUseCase{
		Leads:         leads,
		Registrations: registrations,
		EmailService:  emailService,
		Queue:         producer,
	}
}

// Execute corre el pipeline completo una vez: buscar → verificar registro →
// enviar → marcar. Secuencial a propósito: son decenas de leads por corrida
// y el orden (más nuevos primero) hace los logs fáciles de seguir.
func (uc *FollowUpLeadsUseCase) Execute(ctx context.Context, input FollowUpInput) (FollowUpSummary, error) {
	log.Printf("🔄 Iniciando seguimiento de leads (run %s)", input.RunID)
	summary := FollowUpSummary{RunID: input.RunID}

	// 1. Leads pendientes dentro de la ventana [2 días, 1 hora]
	leads, err := uc.Leads.FindEligible(ctx, time.Now().UTC())
	if err != nil {
		return summary, fmt.Errorf("error al buscar leads elegibles: %w", err)
	}

	if len(leads) == 0 {
		log.Println("✅ No se encontraron leads nuevos para enviar seguimiento")
		return summary, nil
	}

	summary.Eligible = len(leads)
	log.Printf("📋 Se encontraron %d leads para procesar", len(leads))

	for _, lead := range leads {
		// 2. Datos incompletos: se salta sin tocar nada. Va a reaparecer
		// cada corrida hasta que el intake lo complete o envejezca.
		if !lead.IsComplete() {
			log.Printf("⚠️ Lead %s no tiene email o imei. Saltando.", lead.ID)
			summary.Skipped++
			continue
		}

		log.Printf("🔎 Procesando lead %s (%s)", lead.ID, lead.Email)

		// 3. ¿Ya hay registro para este email + imei?
		converted, err := uc.Registrations.Exists(ctx, lead.Email, lead.IMEI)
		if err != nil {
			log.Printf("⚠️ Error al consultar registros para %s: %v", lead.Email, err)
			summary.Failed++
			continue
		}

		if converted {
			// Ya compró para este equipo: se marca para no volver a
			// procesarlo y no se envía nada.
			if err := uc.Leads.MarkFollowUpSent(ctx, lead.ID); err != nil {
				log.Printf("⚠️ Error al marcar lead %s: %v", lead.ID, err)
				summary.Failed++
				continue
			}
			summary.Converted++
			log.Printf("✅ %s ya registró el imei %s. Marcado sin enviar.", lead.Email, lead.IMEI)
			continue
		}

		// 4. Sin registro: se envía el recordatorio
		if err := uc.EmailService.SendFollowUp(ctx, lead.Email, lead.IMEI); err != nil {
			// No se marca: el lead queda elegible para la próxima corrida.
			log.Printf("❌ Error al enviar correo a %s: %v", lead.Email, err)
			summary.Failed++
			continue
		}

		// 5. Solo con envío exitoso se prende el flag
		if err := uc.Leads.MarkFollowUpSent(ctx, lead.ID); err != nil {
			// El correo ya salió; si el update falla puede llegar duplicado
			// en la próxima corrida. Trade-off asumido (at-least-once).
			log.Printf("⚠️ Correo enviado pero error al marcar lead %s: %v", lead.ID, err)
			summary.Failed++
			continue
		}

		summary.Contacted++
		log.Printf("📨 Correo de seguimiento enviado exitosamente a %s", lead.Email)

		// 6. Evento para el CRM (best effort, nunca afecta el marcado)
		if uc.Queue != nil {
			payload := queue.FollowUpPayload{
				LeadID: lead.ID,
				Email:  lead.Email,
				IMEI:   lead.IMEI,
				RunID:  input.RunID,
				SentAt: time.Now().UTC(),
			}
			if err := uc.Queue.PublishFollowUp(ctx, payload); err != nil {
				log.Printf("⚠️ Lead contactado pero falla al publicar evento: %v", err)
			}
		}
	}

	log.Printf("🏁 Corrida completa: %d elegibles, %d contactados, %d convertidos, %d saltados, %d con falla",
		summary.Eligible, summary.Contacted, summary.Converted, summary.Skipped, summary.Failed)

	return summary, nil
}
