package mailer

import (
	"context"
	"testing"

	"github.com/lshigami/lms/config"
	"github.com/lshigami/lms/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutKeyIsNoop(t *testing.T) {
	m := New(&config.Config{})
	_, ok := m.(noopMailer)
	require.True(t, ok)
	assert.NoError(t, m.SendWelcome(context.Background(), &model.User{ID: 1, Email: "a@x.com"}))
}

func TestPrepareWelcome(t *testing.T) {
	cfg := &config.Config{}
	cfg.Mail.SendGridApiKey = "SG.test"
	cfg.Mail.FromAddress = "noreply@lms.local"
	cfg.Mail.FromName = "LMS"
	cfg.Mail.Bcc = "audit@lms.local"

	m, ok := New(cfg).(*sendgridMailer)
	require.True(t, ok)

	msg := m.prepare(&model.User{Username: "Sam", Email: "sam@x.com"})
	require.Len(t, msg.Personalizations, 1)
	p := msg.Personalizations[0]
	require.Len(t, p.To, 1)
	assert.Equal(t, "sam@x.com", p.To[0].Address)
	require.Len(t, p.BCC, 1)
	assert.Equal(t, "audit@lms.local", p.BCC[0].Address)
	assert.Equal(t, "noreply@lms.local", msg.From.Address)
	require.Len(t, msg.Content, 2)
	assert.Contains(t, msg.Content[0].Value, "sam@x.com")
}
