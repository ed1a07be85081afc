package utils

import (
	"gopkg.in/gomail.v2"
)

// Mailer sends notification emails over SMTP.
type Mailer struct {
	from   string
	dialer *gomail.Dialer
}

// NewMailer returns nil when no SMTP credentials are configured, which
// callers treat as "notifications disabled".
func NewMailer(host string, port int, username, password string) *Mailer {
	if username == "" || password == "" {
		return nil
	}
	return &Mailer{
		from:   username,
		dialer: gomail.NewDialer(host, port, username, password),
	}
}

// Send delivers a single HTML email.
func (m *Mailer) Send(to string, subject string, body string) error {
	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.from)
	mailer.SetHeader("To", to)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	return m.dialer.DialAndSend(mailer)
}
