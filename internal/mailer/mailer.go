package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// SMTPMailer sends best-effort transactional mail over authenticated
// SMTP. Callers treat failures as log-only; nothing is retried.
type SMTPMailer struct {
	dialer    *gomail.Dialer
	from      string
	contactTo string
}

func NewSMTPMailer(host string, port int, username, password, contactTo string) *SMTPMailer {
	return &SMTPMailer{
		dialer:    gomail.NewDialer(host, port, username, password),
		from:      username,
		contactTo: contactTo,
	}
}

func (m *SMTPMailer) SendDonationReceipt(to string, amountCents int64, donationID uint) error {
	body := fmt.Sprintf(`Thank you for your generous donation to The Dorothy R. Morgan Foundation!

Donation Details:
Amount: $%.2f
Transaction ID: %d
Date: %s

Your donation supports families, healing, and youth programs in honor of Dorothy R. Morgan.

From Loss to Light.

The Dorothy R. Morgan Foundation
`, float64(amountCents)/100, donationID, time.Now().Format("January 2, 2006"))

	if err := m.send(to, "Thank You for Your Donation", body); err != nil {
		return fmt.Errorf("m.send -> %w", err)
	}

	return nil
}

func (m *SMTPMailer) SendContactNotification(name, email, subject, message string) error {
	if subject == "" {
		subject = "No subject"
	}

	body := fmt.Sprintf(`New contact form submission:

Name: %s
Email: %s
Subject: %s

Message:
%s
`, name, email, subject, message)

	if err := m.send(m.contactTo, "Contact Form: "+subject, body); err != nil {
		return fmt.Errorf("m.send -> %w", err)
	}

	return nil
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
