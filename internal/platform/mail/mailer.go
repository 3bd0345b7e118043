package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender delivers HTML emails over SMTP.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender builds a Sender for the configured SMTP transport. The
// authenticated user doubles as the From address, matching the Gmail
// app-password setup this service is deployed with.
func NewSMTPSender(host string, port int, user, password string) (Sender, error) {
	if user == "" || password == "" {
		return nil, fmt.Errorf("smtp credentials are not configured")
	}

	return &smtpSender{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   user,
	}, nil
}

func (s *smtpSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return s.dialer.DialAndSend(m)
}
