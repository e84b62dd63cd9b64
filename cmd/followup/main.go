package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/registroimeimultibanda/lead-followup/internal/config"
	"github.com/registroimeimultibanda/lead-followup/internal/infra/database"
	"github.com/registroimeimultibanda/lead-followup/internal/infra/mail"
	"github.com/registroimeimultibanda/lead-followup/internal/infra/queue"
	"github.com/registroimeimultibanda/lead-followup/internal/usecase"
)

// Corrida única: el scheduler externo (GitHub Actions) invoca este binario
// una vez por hora, sin argumentos.
func main() {
	godotenv.Load()
	ctx := context.Background()

	// 1. Configuración: sin credenciales del almacén se aborta acá,
	// antes de ejecutar ninguna consulta
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ No se pudo cargar la configuración. Abortando. Error: %v", err)
	}

	// 2. Conexión al almacén
	client, err := database.NewConnection(ctx, cfg.MongoURL)
	if err != nil {
		log.Fatalf("❌ No se pudo conectar a Mongo. Abortando. Error: %v", err)
	}
	defer client.Disconnect(ctx)
	db := client.Database(cfg.MongoDatabase)

	// 3. Repositorios
	leadRepo := database.NewLeadRepository(db, cfg.FollowUpMinAge, cfg.FollowUpMaxAge)
	regRepo := database.NewRegistrationRepository(db)

	// 4. Transporte de correo (resend por defecto, smtp en staging)
	mailer := newMailer(cfg)

	// 5. Broker opcional para eventos de seguimiento
	var producer usecase.FollowUpProducerInterface
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("⚠️ Sin RabbitMQ, la corrida sigue sin eventos: %v", err)
		} else {
			defer rabbitMQ.Conn.Close()
			defer rabbitMQ.Ch.Close()
			producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
		}
	}

	// 6. Pipeline
	uc := usecase.NewFollowUpLeadsUseCase(leadRepo, regRepo, mailer, producer)

	if _, err := uc.Execute(ctx, usecase.FollowUpInput{RunID: uuid.NewString()}); err != nil {
		log.Fatalf("❌ La corrida terminó con error: %v", err)
	}

	log.Println("Proceso de seguimiento de leads completado.")
}

func newMailer(cfg *config.Config) usecase.EmailService {
	if cfg.MailProvider == "smtp" {
		return mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom, cfg.SiteURL)
	}
	return mail.NewResendClient(cfg.ResendAPIKey, cfg.ResendBaseURL, cfg.MailFrom, cfg.SiteURL)
}
