package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

// SendMail delivers a raw message through the configured SMTP relay.
// headers must already contain the Subject and MIME lines.
func SendMail(to string, message []byte) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	if from == "" || host == "" {
		return fmt.Errorf("SMTP_FROM and SMTP_HOST must be configured")
	}

	auth := smtp.PlainAuth("", from, password, host)
	if err := smtp.SendMail(host+":"+port, auth, from, []string{to}, message); err != nil {
		return fmt.Errorf("error sending mail to %s: %v", to, err)
	}
	return nil
}
