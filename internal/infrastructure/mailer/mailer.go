package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional email over SMTP
type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	baseURL string
}

// messageSender is swappable in tests
type messageSender func(d *gomail.Dialer, m *gomail.Message) error

var sendMessage messageSender = func(d *gomail.Dialer, m *gomail.Message) error {
	return d.DialAndSend(m)
}

// NewMailer creates a new SMTP mailer
func NewMailer(host string, port int, username, password, from, baseURL string) *Mailer {
	return &Mailer{
		dialer:  gomail.NewDialer(host, port, username, password),
		from:    from,
		baseURL: baseURL,
	}
}

// SendVerificationEmail sends the account activation link
func (m *Mailer) SendVerificationEmail(to, name, token string) error {
	link := fmt.Sprintf("%s/auth/verify-email?token=%s", m.baseURL, token)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Verify your email address")
	msg.SetBody("text/html", verificationBody(name, link))
	return sendMessage(m.dialer, msg)
}

// SendNotificationEmail sends a free-form admin notification
func (m *Mailer) SendNotificationEmail(to, name, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", notificationBody(name, body))
	return sendMessage(m.dialer, msg)
}

func verificationBody(name, link string) string {
	return fmt.Sprintf(`<html><body>
<p>Hello %s,</p>
<p>Welcome to HalaChick. Please confirm your email address to activate your account:</p>
<p><a href="%s">Verify my email</a></p>
<p>The link expires in 1 hour. If you did not create an account, ignore this message.</p>
</body></html>`, name, link)
}

func notificationBody(name, body string) string {
	return fmt.Sprintf(`<html><body>
<p>Hello %s,</p>
<p>%s</p>
</body></html>`, name, body)
}
