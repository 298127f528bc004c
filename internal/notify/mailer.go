package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/BruksfildServices01/studio-booking/internal/config"
)

type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type SendGridMailer struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	logger    zerolog.Logger
}

func NewSendGridMailer(cfg config.SendGridConfig, logger zerolog.Logger) *SendGridMailer {
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		logger:    logger,
	}
}

func (m *SendGridMailer) Send(ctx context.Context, msg Message) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)

	html := msg.HTML
	if html == "" {
		html = msg.Text
	}
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Text, html)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("notify: sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("notify: sendgrid returned status %d", resp.StatusCode)
	}

	m.logger.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("email sent")
	return nil
}

// LogMailer only logs. Used when no API key is configured.
type LogMailer struct {
	logger zerolog.Logger
}

func NewLogMailer(logger zerolog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.logger.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("email disabled, not sending")
	return nil
}

// New picks SendGrid when an API key is set.
func New(cfg config.SendGridConfig, logger zerolog.Logger) Mailer {
	if cfg.APIKey == "" {
		return NewLogMailer(logger)
	}
	return NewSendGridMailer(cfg, logger)
}

func WelcomeMessage(email, fullName string) Message {
	name := fullName
	if name == "" {
		name = "there"
	}
	return Message{
		To:      email,
		ToName:  fullName,
		Subject: "Welcome to the studio",
		Text:    fmt.Sprintf("Hi %s, your account is ready. You can now book appointments online.", name),
	}
}
