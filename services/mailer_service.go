package services

import (
	"fmt"
	"log"

	"github.com/codesmentors/codesmentors-api/config"
	"gopkg.in/gomail.v2"
)

// MailerService delivers account OTPs over SMTP. Delivery is best-effort:
// registration never fails because mail could not be sent.
type MailerService struct {
	dialer *gomail.Dialer
	from   string

	configured bool
}

// NewMailerService creates a mailer from the SMTP environment configuration
func NewMailerService(env *config.EnviornmentVariable) *MailerService {
	m := &MailerService{
		from:       env.SMTP_FROM,
		configured: env.SMTP_USERNAME != "" && env.SMTP_PASSWORD != "",
	}
	if m.from == "" {
		m.from = "noreply@codesmentors.app"
	}
	if m.configured {
		m.dialer = gomail.NewDialer(env.SMTP_HOST, env.SMTP_PORT, env.SMTP_USERNAME, env.SMTP_PASSWORD)
	}
	return m
}

// IsConfigured checks if SMTP is properly configured
func (m *MailerService) IsConfigured() bool {
	return m.configured
}

// SendOTP mails a one-time code to a user
func (m *MailerService) SendOTP(toEmail, name, otp string) error {
	if !m.configured {
		log.Printf("SMTP not configured. OTP for %s: %s", toEmail, otp)
		return nil
	}

	if name == "" {
		name = "there"
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Your CodesMentors verification code")
	msg.SetBody("text/html", fmt.Sprintf(
		`<p>Hi %s,</p><p>Your verification code is <strong>%s</strong>.</p><p>Enter it to activate your account.</p>`,
		name, otp,
	))

	return m.dialer.DialAndSend(msg)
}
