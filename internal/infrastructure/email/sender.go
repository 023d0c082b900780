package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/gearguard/gearguard/internal/shared/config"
	apperrors "github.com/gearguard/gearguard/internal/shared/errors"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

// Sender delivers one message synchronously.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

type SMTPSender struct {
	dialer      *gomail.Dialer
	fromAddress string
	fromName    string
}

func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	return &SMTPSender{
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage(gomail.SetCharset("UTF-8"))
	m.SetAddressHeader("From", s.fromAddress, s.fromName)
	if msg.ToName != "" {
		m.SetAddressHeader("To", msg.To, msg.ToName)
	} else {
		m.SetHeader("To", msg.To)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", fmt.Sprintf("<%s@gearguard>", msg.ID))
	if msg.TextBody != "" {
		m.SetBody("text/plain", msg.TextBody)
		m.AddAlternative("text/html", msg.HTMLBody)
	} else {
		m.SetBody("text/html", msg.HTMLBody)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return apperrors.NewTransportFailureError("failed to send email", err.Error())
	}
	return nil
}

// LogSender stands in when SMTP is not configured: it only records what would have been sent.
type LogSender struct {
	logger logger.Interface
}

func NewLogSender(log logger.Interface) *LogSender {
	return &LogSender{logger: log}
}

func (s *LogSender) Send(_ context.Context, msg *Message) error {
	s.logger.Infow("smtp not configured, email not sent",
		"message_id", msg.ID,
		"kind", msg.Kind,
		"to", msg.To,
		"subject", msg.Subject)
	return nil
}

// NewSender picks SMTP when configured and LogSender otherwise.
func NewSender(cfg config.EmailConfig, log logger.Interface) Sender {
	if cfg.IsConfigured() {
		return NewSMTPSender(cfg)
	}
	return NewLogSender(log)
}
