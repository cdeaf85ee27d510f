package mailer

import (
	"context"
	"crypto/tls"
	"fmt"

	"podcastflow-backend/internal/config"

	mail "github.com/go-mail/mail"
)

// SMTPTransport delivers mail through a plain SMTP relay. Used in development
// and for self-hosted deployments.
type SMTPTransport struct {
	host string
	port int
	user string
	pass string
}

// NewSMTPTransport creates an SMTP transport from configuration
func NewSMTPTransport(cfg *config.Config) *SMTPTransport {
	return &SMTPTransport{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPassword,
	}
}

// Send delivers one message. SMTP assigns no message ID, so the returned ID
// is empty on success.
func (t *SMTPTransport) Send(ctx context.Context, msg Message) (string, error) {
	m := mail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)

	if msg.TextBody != "" {
		m.SetBody("text/plain", msg.TextBody)
		if msg.HTMLBody != "" {
			m.AddAlternative("text/html", msg.HTMLBody)
		}
	} else {
		m.SetBody("text/html", msg.HTMLBody)
	}

	d := mail.NewDialer(t.host, t.port, t.user, t.pass)
	d.TLSConfig = &tls.Config{ServerName: t.host}

	if err := d.DialAndSend(m); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}
	return "", nil
}
