package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	OpsAddress  string
}

// SMTPEmailService delivers enforcement notices to the operations mailbox.
type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendEnforcementNotice alerts operations that a subscriber crossed the
// violation limit and enforcement fired.
func (s *SMTPEmailService) SendEnforcementNotice(subscriberID uint, contentID string, total int64) error {
	subject := fmt.Sprintf("Enforcement triggered for subscriber %d", subscriberID)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Capture Enforcement Triggered</h2>
			<p>Subscriber %d reached %d recorded capture violations.</p>
			<p>Latest violation was on content %s.</p>
			<p>Access revocation has been requested from the account service. Review the violation log before responding to any appeal.</p>
		</body>
		</html>
	`, subscriberID, total, contentID)

	plainBody := fmt.Sprintf(`
Capture Enforcement Triggered

Subscriber %d reached %d recorded capture violations.
Latest violation was on content %s.

Access revocation has been requested from the account service.
Review the violation log before responding to any appeal.
	`, subscriberID, total, contentID)

	return s.sendEmail(s.config.OpsAddress, subject, htmlBody, plainBody)
}

// SendWarningNotice records that a subscriber received their final warning.
func (s *SMTPEmailService) SendWarningNotice(subscriberID uint, contentID string, total int64) error {
	subject := fmt.Sprintf("Final capture warning issued to subscriber %d", subscriberID)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Final Warning Issued</h2>
			<p>Subscriber %d is at %d recorded capture violations, one short of enforcement.</p>
			<p>Latest violation was on content %s.</p>
		</body>
		</html>
	`, subscriberID, total, contentID)

	plainBody := fmt.Sprintf(`
Final Warning Issued

Subscriber %d is at %d recorded capture violations, one short of enforcement.
Latest violation was on content %s.
	`, subscriberID, total, contentID)

	return s.sendEmail(s.config.OpsAddress, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}
