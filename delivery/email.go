package delivery

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wneessen/go-mail"

	"newsharvest/config"
)

// Mailer sends the run report with the CSV artifact attached.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	from     string
	to       []string
}

// NewMailerFromEnv builds a Mailer when EMAIL_USER, EMAIL_PASS, and
// RECIPIENT_EMAIL are set; returns nil otherwise. Optional: SMTP_HOST
// (default smtp.gmail.com), SMTP_PORT (default 465).
func NewMailerFromEnv() *Mailer {
	user := strings.TrimSpace(os.Getenv("EMAIL_USER"))
	pass := os.Getenv("EMAIL_PASS")
	recipients := strings.TrimSpace(os.Getenv("RECIPIENT_EMAIL"))
	if user == "" || pass == "" || recipients == "" {
		return nil
	}

	port := 465
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			port = n
		}
	}

	var to []string
	for _, addr := range strings.Split(recipients, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			to = append(to, addr)
		}
	}

	return &Mailer{
		host:     config.GetEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
		port:     port,
		user:     user,
		password: pass,
		from:     user,
		to:       to,
	}
}

// SendReport emails the artifact at path with the given subject.
func (m *Mailer) SendReport(subject, path string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid sender %q: %w", m.from, err)
	}
	if err := msg.To(m.to...); err != nil {
		return fmt.Errorf("invalid recipients: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, "Attached is the latest news CSV file from the scraper.")
	msg.AttachFile(path)

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.user),
		mail.WithPassword(m.password),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("send report: %w", err)
	}
	return nil
}
