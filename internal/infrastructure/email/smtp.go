package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"netbill/internal/shared/biztime"
	"netbill/internal/shared/config"
)

// ReceiptData carries the fields rendered into a renewal receipt.
type ReceiptData struct {
	UserName    string
	PackageName string
	Amount      uint64
	NewExpiry   string
}

// Sender delivers billing notifications over SMTP.
type Sender interface {
	SendRenewalReceipt(to string, data ReceiptData) error
}

type SMTPSender struct {
	config *config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPSender(cfg *config.EmailConfig) *SMTPSender {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPSender{
		config: cfg,
		dialer: dialer,
	}
}

func (s *SMTPSender) SendRenewalReceipt(to string, data ReceiptData) error {
	subject := "Your Subscription Has Been Renewed"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Renewal Confirmed</h2>
			<p>Hi %s,</p>
			<p>Your subscription to <strong>%s</strong> has been renewed.</p>
			<p>Amount charged: %d</p>
			<p>Your service is now active until <strong>%s</strong>.</p>
			<p>Thank you for staying with us.</p>
		</body>
		</html>
	`, data.UserName, data.PackageName, data.Amount, data.NewExpiry)

	plainBody := fmt.Sprintf(`
Hi %s,

Your subscription to %s has been renewed.

Amount charged: %d
Your service is now active until %s.

Thank you for staying with us.
	`, data.UserName, data.PackageName, data.Amount, data.NewExpiry)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPSender) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetHeader("Date", biztime.NowUTC().Format("Mon, 02 Jan 2006 15:04:05 -0700"))
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}

// NoopSender is used when email delivery is disabled in configuration.
type NoopSender struct{}

func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

func (s *NoopSender) SendRenewalReceipt(to string, data ReceiptData) error {
	return nil
}
