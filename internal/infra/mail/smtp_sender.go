package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPSender: transporte alternativo para entornos sin cuenta de Resend
// (staging usa el relay SMTP interno). Mismo contrato que ResendClient.
type SMTPSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	SiteURL  string
}

func NewSMTPSender(host string, port int, user, password, from, siteURL string) *SMTPSender {
	return &SMTPSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		SiteURL:  siteURL,
	}
}

func (s *SMTPSender) SendFollowUp(ctx context.Context, toEmail, imei string) error {
	html, err := renderFollowUp(s.SiteURL, imei, toEmail)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", followUpSubject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	// gomail no acepta context; el timeout lo pone el dialer.
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error al enviar email SMTP: %w", err)
	}

	return nil
}
