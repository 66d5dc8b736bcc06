package mailer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lshigami/lms/config"
	"github.com/lshigami/lms/internal/model"
	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends the notifications the LMS emits on account changes.
type Mailer interface {
	SendWelcome(ctx context.Context, user *model.User) error
}

// New returns a SendGrid mailer, or a no-op one when no API key is configured.
func New(cfg *config.Config) Mailer {
	if cfg.Mail.SendGridApiKey == "" {
		log.Warn().Msg("SENDGRID_API_KEY is not set. Outgoing email is disabled.")
		return noopMailer{}
	}
	return &sendgridMailer{
		client: sendgrid.NewSendClient(cfg.Mail.SendGridApiKey),
		from:   sgmail.NewEmail(cfg.Mail.FromName, cfg.Mail.FromAddress),
		bcc:    cfg.Mail.Bcc,
	}
}

type sendgridMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
	bcc    string
}

func (m *sendgridMailer) SendWelcome(ctx context.Context, user *model.User) error {
	msg := m.prepare(user)
	res, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid request failed: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid rejected message with status %d: %s", res.StatusCode, res.Body)
	}
	log.Info().Uint("userID", user.ID).Str("to", user.Email).Msg("Welcome email sent")
	return nil
}

func (m *sendgridMailer) prepare(user *model.User) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = "Your LMS account is ready"
	p.AddTos(sgmail.NewEmail(user.Username, user.Email))
	if m.bcc != "" && m.bcc != user.Email {
		p.AddBCCs(sgmail.NewEmail("", m.bcc))
	}

	text := fmt.Sprintf("Hello %s,\n\nAn account has been created for you. Sign in with %s.\n", user.Username, user.Email)
	html := fmt.Sprintf("<p>Hello %s,</p><p>An account has been created for you. Sign in with <b>%s</b>.</p>", user.Username, user.Email)

	msg := sgmail.NewV3Mail()
	msg.SetFrom(m.from)
	msg.AddPersonalizations(p)
	msg.AddContent(
		sgmail.NewContent("text/plain", text),
		sgmail.NewContent("text/html", html),
	)
	return msg
}

type noopMailer struct{}

func (noopMailer) SendWelcome(_ context.Context, user *model.User) error {
	log.Debug().Uint("userID", user.ID).Msg("Email disabled, welcome message skipped")
	return nil
}
