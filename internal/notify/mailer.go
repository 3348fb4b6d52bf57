// Package notify delivers question outcome emails to the person who asked.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	"scholarportal/internal/config"
)

// Message is one outgoing email with plain-text and HTML bodies.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer sends a Message.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// SMTPMailer sends mail through an authenticated SMTP relay.
type SMTPMailer struct {
	cfg      config.SMTPConfig
	fromName string
}

// NewSMTPMailer returns an SMTPMailer, or an error naming the missing settings.
func NewSMTPMailer(cfg config.SMTPConfig) (*SMTPMailer, error) {
	if missing := cfg.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("smtp configuration incomplete, missing: %v", missing)
	}
	return &SMTPMailer{cfg: cfg, fromName: senderName}, nil
}

// Send dials the relay and delivers msg. Replies go back to the sender address.
func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	email := mail.NewMsg()
	if err := email.FromFormat(m.fromName, m.cfg.FromEmail); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := email.To(msg.To); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	if err := email.ReplyTo(m.cfg.FromEmail); err != nil {
		return fmt.Errorf("set reply-to: %w", err)
	}
	email.Subject(msg.Subject)
	email.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		email.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.User),
		mail.WithPassword(m.cfg.Pass),
	}
	if m.cfg.Secure {
		// implicit TLS, typically port 465
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, email); err != nil {
		return fmt.Errorf("send mail via %s: %w", m.cfg.Host, err)
	}
	return nil
}

// LogMailer records what would have been sent. It is used when SMTP is not
// configured so the moderation flow keeps working.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a LogMailer.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Send logs the recipient, subject and the start of the text body.
func (m *LogMailer) Send(ctx context.Context, msg *Message) error {
	preview := msg.Text
	if runes := []rune(preview); len(runes) > 100 {
		preview = string(runes[:100]) + "..."
	}
	m.logger.Info("smtp not configured, email not sent",
		"to", msg.To,
		"subject", msg.Subject,
		"preview", preview,
	)
	return nil
}
