package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

// Notification is one outbound email.
type Notification struct {
	Subject   string
	Recipient string
	Body      string
}

// Sender delivers a rendered notification.
type Sender interface {
	Send(n Notification) error
}

const mailTemplate = `<html>
<body>
<p>{{.Message}}</p>
<p>Thanks,<br>The Blogging Site Team</p>
</body>
</html>`

// ContentBuilder renders the shared mail template with a single message
// variable substituted.
type ContentBuilder struct {
	tmpl *template.Template
}

func NewContentBuilder() *ContentBuilder {
	return &ContentBuilder{
		tmpl: template.Must(template.New("mail").Parse(mailTemplate)),
	}
}

func (b *ContentBuilder) Build(message string) (string, error) {
	var buf bytes.Buffer
	err := b.tmpl.Execute(&buf, struct{ Message string }{Message: message})
	if err != nil {
		return "", fmt.Errorf("rendering mail template: %w", err)
	}
	return buf.String(), nil
}

// SMTPSender delivers notifications over SMTP.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (s *SMTPSender) Send(n Notification) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", n.Recipient)
	m.SetHeader("Subject", n.Subject)
	m.SetBody("text/html", n.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("sending mail to %s: %w", n.Recipient, err)
	}
	return nil
}
