package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"driverp-api/config"
)

// Mailer is the outbound notification capability handlers depend on.
// Handlers decide per call site whether a send failure is surfaced to the
// client (contact form) or swallowed as best-effort (signup notifications).
type Mailer interface {
	SendContactConfirmation(name, email, reason, message string) error
	SendSignupWelcome(username, email string) error
	SendAdminSignupNotice(username, email string) error
}

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

func (es *EmailService) send(to, subject, body string, bcc ...string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", to)
	if len(bcc) > 0 {
		m.SetHeader("Bcc", bcc...)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendContactConfirmation acknowledges a contact-form inquiry to the sender,
// with a copy to the dealership inbox.
func (es *EmailService) SendContactConfirmation(name, email, reason, message string) error {
	subject := "Thank you for contacting Drive RP"
	body := fmt.Sprintf(`Hi %s,

Thank you for reaching out to us. We received your message:

Reason: %s
Message: %s

Our team will get back to you soon.

Regards,
Drive RP Team
`, name, reason, message)

	return es.send(email, subject, body, es.config.AdminEmail)
}

// SendSignupWelcome greets a newly registered user.
func (es *EmailService) SendSignupWelcome(username, email string) error {
	subject := "Welcome to Drive RP!"
	body := fmt.Sprintf("Hi %s,\n\nYou have successfully registered at Drive RP.\n\nThank you!\nDrive RP Team\n", username)

	return es.send(email, subject, body)
}

// SendAdminSignupNotice notifies the dealership inbox about a new account.
func (es *EmailService) SendAdminSignupNotice(username, email string) error {
	subject := "New User Registration"
	body := fmt.Sprintf("New user registered:\n\nUsername: %s\nEmail: %s\n", username, email)

	return es.send(es.config.AdminEmail, subject, body)
}
