package utils

import "gopkg.in/gomail.v2"

// SMTPMailer delivers HTML mail through a configured SMTP relay.
type SMTPMailer struct {
	server   string
	port     int
	user     string
	password string
}

func NewSMTPMailer(server string, port int, user string, password string) *SMTPMailer {
	return &SMTPMailer{
		server:   server,
		port:     port,
		user:     user,
		password: password,
	}
}

func (m *SMTPMailer) Send(to string, subject string, htmlBody string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", m.user)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.server, m.port, m.user, m.password)

	return d.DialAndSend(message)
}
