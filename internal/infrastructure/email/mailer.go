// Package email submits notification mail over SMTP with STARTTLS.
package email

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"

	"FadaMonitor/internal/config"
)

// Message is one outbound notification mail.
type Message struct {
	To             string
	Subject        string
	Body           string
	AttachmentPath string
}

// Mailer sends messages through a configured SMTP submission endpoint.
type Mailer struct {
	cfg config.SMTPConfig
}

// NewMailer wires SMTP settings; credentials may be absent, in which case
// Configured reports false and Send must not be called.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Configured reports whether credentials allow delivery.
func (m *Mailer) Configured() bool {
	return m.cfg.Configured()
}

// Send delivers one message, attaching the artifact when it exists on disk.
func (m *Mailer) Send(msg Message) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.cfg.User)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/plain", msg.Body)

	if msg.AttachmentPath != "" {
		if _, err := os.Stat(msg.AttachmentPath); err == nil {
			mail.Attach(msg.AttachmentPath)
		}
	}

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}
