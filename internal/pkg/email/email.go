package email

import (
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"
)

// Sender delivers one-time codes. The delivery transport is an opaque
// collaborator as far as the auth flow is concerned.
type Sender interface {
	SendVerificationCode(toEmail, code string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

type smtpSender struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSender creates an SMTP-backed Sender.
func NewSender(config SMTPConfig, logger zerolog.Logger) Sender {
	return &smtpSender{config: config, logger: logger}
}

// SendVerificationCode mails the one-time code. When SMTP credentials are not
// configured the code is logged instead so the flow stays testable locally.
func (s *smtpSender) SendVerificationCode(toEmail, code string) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("code", code).
			Msg("SMTP credentials not configured - verification code not sent, use the code above for testing")
		return nil
	}

	subject := "Your PlacePort verification code"
	body := fmt.Sprintf(
		"Your verification code is %s. It expires in 10 minutes.\r\n"+
			"If you did not request this code you can ignore this email.\r\n", code)

	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.config.FromName, s.config.FromEmail, toEmail, subject, body)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	authn := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	if err := smtp.SendMail(addr, authn, s.config.FromEmail, []string{toEmail}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	s.logger.Info().Str("toEmail", toEmail).Msg("Verification code sent")
	return nil
}
