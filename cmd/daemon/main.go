package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/robfig/cron/v3"

	"github.com/registroimeimultibanda/lead-followup/internal/config"
	"github.com/registroimeimultibanda/lead-followup/internal/infra/database"
	"github.com/registroimeimultibanda/lead-followup/internal/infra/http/handlers"
	"github.com/registroimeimultibanda/lead-followup/internal/infra/http/middleware"
	"github.com/registroimeimultibanda/lead-followup/internal/infra/mail"
	"github.com/registroimeimultibanda/lead-followup/internal/infra/queue"
	"github.com/registroimeimultibanda/lead-followup/internal/usecase"
)

// Modo daemon: mismo pipeline que cmd/followup pero agendado con cron
// interno, con /healthz y /metrics para el monitoreo. Para despliegues
// donde no hay scheduler externo.
func main() {
	godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Configuración
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ No se pudo cargar la configuración. Abortando. Error: %v", err)
	}

	// 2. Conexión al almacén
	client, err := database.NewConnection(ctx, cfg.MongoURL)
	if err != nil {
		log.Fatalf("❌ No se pudo conectar a Mongo. Abortando. Error: %v", err)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDatabase)

	// 3. Repositorios
	leadRepo := database.NewLeadRepository(db, cfg.FollowUpMinAge, cfg.FollowUpMaxAge)
	regRepo := database.NewRegistrationRepository(db)

	// 4. Correo
	mailer := newMailer(cfg)

	// 5. Broker opcional
	var producer usecase.FollowUpProducerInterface
	var rabbitConn *amqp.Connection
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("⚠️ Sin RabbitMQ, el daemon sigue sin eventos: %v", err)
		} else {
			defer rabbitMQ.Conn.Close()
			defer rabbitMQ.Ch.Close()
			producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
			rabbitConn = rabbitMQ.Conn
		}
	}

	uc := usecase.NewFollowUpLeadsUseCase(leadRepo, regRepo, mailer, producer)

	// 6. Agenda: una corrida al arrancar y después según FOLLOWUP_SCHEDULE.
	// SkipIfStillRunning: dos corridas del mismo daemon nunca se pisan.
	runOnce(ctx, uc)

	scheduler := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := scheduler.AddFunc(cfg.FollowUpSchedule, func() { runOnce(ctx, uc) }); err != nil {
		log.Fatalf("❌ Agenda inválida %q: %v", cfg.FollowUpSchedule, err)
	}
	scheduler.Start()

	// 7. Router de operación
	healthHandler := handlers.NewHealthHandler(client, rabbitConn)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}))
	r.Use(middleware.Metrics)
	r.Get("/healthz", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Servidor HTTP: %v", err)
		}
	}()

	log.Printf("🔥 Daemon de seguimiento corriendo en :%s (agenda %s)", cfg.Port, cfg.FollowUpSchedule)

	<-ctx.Done()
	log.Println("⚠️ Señal recibida, cerrando daemon...")

	<-scheduler.Stop().Done()
	srv.Shutdown(context.Background())
}

func runOnce(ctx context.Context, uc *usecase.FollowUpLeadsUseCase) {
	summary, err := uc.Execute(ctx, usecase.FollowUpInput{RunID: uuid.NewString()})
	if err != nil {
		log.Printf("❌ Corrida fallida: %v", err)
		return
	}
	middleware.RecordRun(summary.Contacted, summary.Converted, summary.Skipped, summary.Failed)
}

func newMailer(cfg *config.Config) usecase.EmailService {
	if cfg.MailProvider == "smtp" {
		return mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom, cfg.SiteURL)
	}
	return mail.NewResendClient(cfg.ResendAPIKey, cfg.ResendBaseURL, cfg.MailFrom, cfg.SiteURL)
}
