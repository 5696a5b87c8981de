package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/sy4k1/gla-it-project/internal/logger"
)

// Mailer delivers signup passcodes. Callers fire and forget: delivery
// failures are logged, never surfaced to the request that triggered them.
type Mailer interface {
	SendPasscode(email, code string) error
}

// SMTPMailer sends passcodes through a plain SMTP endpoint.
type SMTPMailer struct {
	addr string // host:port
	from string
}

func NewSMTPMailer(addr, from string) *SMTPMailer {
	return &SMTPMailer{addr: addr, from: from}
}

func (m *SMTPMailer) SendPasscode(email, code string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Your signup passcode\r\n\r\nYour passcode is %s. It expires in 10 minutes.\r\n",
		m.from, email, code)
	return smtp.SendMail(m.addr, nil, m.from, []string{email}, []byte(msg))
}

// LogMailer stands in when no SMTP endpoint is configured.
type LogMailer struct{}

func (LogMailer) SendPasscode(email, code string) error {
	logger.Log.Infow("passcode issued", "email", email)
	return nil
}
