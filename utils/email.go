package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// smtpConfig reads the mail settings from the environment. The process loads
// its .env once at startup, so no reload happens here.
func smtpConfig() (host string, port int, user, pass string, err error) {
	host = os.Getenv("SMTP_HOST")
	user = os.Getenv("EMAIL_USER")
	pass = os.Getenv("EMAIL_PASS")
	if host == "" || user == "" {
		return "", 0, "", "", fmt.Errorf("smtp not configured: SMTP_HOST and EMAIL_USER are required")
	}
	port, err = strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		return "", 0, "", "", fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	return host, port, user, pass, nil
}

// SendEmail delivers an HTML mail through the configured SMTP server. It
// fails with a descriptive error when the mail settings are absent so callers
// can log and carry on.
func SendEmail(to, subject, body string) error {
	host, port, user, pass, err := smtpConfig()
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", user)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return gomail.NewDialer(host, port, user, pass).DialAndSend(m)
}
