package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config junta todo lo que el job necesita del entorno. Lo único
// obligatorio es la URL de Mongo: sin base de datos no hay corrida.
// Sin RESEND_API_KEY el job igual corre (marca leads ya convertidos),
// solo que cada envío falla y queda para la próxima corrida.
type Config struct {
	MongoURL      string `env:"MONGODB_URL,required,notEmpty"`
	MongoDatabase string `env:"MONGODB_DATABASE" envDefault:"registro-imei"`

	// Ventana de elegibilidad: ni muy pronto (que termine solo) ni muy
	// tarde (sesión abandonada, no molestar).
	FollowUpMinAge time.Duration `env:"FOLLOWUP_MIN_AGE" envDefault:"1h"`
	FollowUpMaxAge time.Duration `env:"FOLLOWUP_MAX_AGE" envDefault:"48h"`

	MailProvider string `env:"MAIL_PROVIDER" envDefault:"resend"` // resend | smtp

	ResendAPIKey  string `env:"RESEND_API_KEY"`
	ResendBaseURL string `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com"`
	MailFrom      string `env:"MAIL_FROM" envDefault:"Registro IMEI Multibanda <registro@registroimeimultibanda.cl>"`
	SiteURL       string `env:"SITE_URL" envDefault:"https://registroimeimultibanda.cl"`

	SMTPHost string `env:"MAIL_HOST"`
	SMTPPort int    `env:"MAIL_PORT" envDefault:"587"`
	SMTPUser string `env:"MAIL_USER"`
	SMTPPass string `env:"MAIL_PASS"`

	// Opcional: si está vacío no se publican eventos de seguimiento.
	RabbitMQURL string `env:"RABBITMQ_URL"`

	// Solo para el daemon.
	Port             string `env:"PORT" envDefault:"8080"`
	FollowUpSchedule string `env:"FOLLOWUP_SCHEDULE" envDefault:"@hourly"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error al cargar configuración: %w", err)
	}
	if cfg.FollowUpMinAge >= cfg.FollowUpMaxAge {
		return nil, fmt.Errorf("ventana de seguimiento inválida: min %s >= max %s", cfg.FollowUpMinAge, cfg.FollowUpMaxAge)
	}
	return cfg, nil
}
