// Package mail sends transactional emails over SMTP. When no SMTP host is
// configured the mailer is disabled and every send is a logged no-op, which
// keeps local development free of mail setup.
package mail

import (
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

type Mailer struct {
	dialer *gomail.Dialer
	sender string
}

func New(cfg Config) *Mailer {
	if cfg.Host == "" {
		return &Mailer{}
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		sender: cfg.Sender,
	}
}

// Enabled reports whether SMTP is configured.
func (m *Mailer) Enabled() bool { return m.dialer != nil }

func (m *Mailer) SendWelcome(to, name, agencyName string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour VentureBot workspace for %s is ready. You have 100 free credits to start sending WhatsApp campaigns.\n\nThe VentureBot Team",
		name, agencyName)
	return m.send(to, "Welcome to VentureBot", body)
}

func (m *Mailer) SendPaymentReceipt(to string, amountPaise int64, credits int64, reference string) error {
	body := fmt.Sprintf(
		"Thanks for your purchase.\n\nAmount: ₹%.2f\nCredits added: %d\nReference: %s\n\nThe VentureBot Team",
		float64(amountPaise)/100, credits, reference)
	return m.send(to, "Your VentureBot payment receipt", body)
}

func (m *Mailer) send(to, subject, body string) error {
	if m.dialer == nil {
		slog.Debug("mailer disabled, skipping send", "to", to, "subject", subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: send to %s failed: %w", to, err)
	}
	return nil
}
