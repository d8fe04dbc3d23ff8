package notify

import (
	"errors"
	"fmt"
	"log"
	"net/textproto"
	"os"
	"time"

	"jobalert-engine/internal/config"

	"github.com/wneessen/go-mail"
)

// Mailer delivers the run report over SMTP with implicit TLS. It never
// returns an error to the caller: a run that scraped fine but could not mail
// is still a successful run.
type Mailer struct {
	cfg config.Config
	now func() time.Time
}

func New(cfg config.Config) *Mailer {
	return &Mailer{cfg: cfg, now: time.Now}
}

// Send mails the report at reportPath with a short summary of recordCount
// jobs. Returns false (logged, no network attempt) when any credential is
// missing or the report file does not exist.
func (m *Mailer) Send(reportPath string, recordCount int) bool {
	if !m.cfg.MailConfigured() {
		log.Printf("[notify] email credentials not configured; set SENDER_EMAIL, EMAIL_PASSWORD, RECIPIENT_EMAIL")
		return false
	}
	if _, err := os.Stat(reportPath); err != nil {
		log.Printf("[notify] report file missing: %v", err)
		return false
	}

	msg, err := m.compose(reportPath, recordCount)
	if err != nil {
		log.Printf("[notify] compose: %v", err)
		return false
	}

	client, err := mail.NewClient(m.cfg.Mail.Host,
		mail.WithPort(m.cfg.Mail.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Mail.Sender),
		mail.WithPassword(m.cfg.Mail.Password),
	)
	if err != nil {
		log.Printf("[notify] smtp client: %v", err)
		return false
	}

	if err := client.DialAndSend(msg); err != nil {
		if isAuthError(err) {
			log.Printf("[notify] smtp authentication failed; check EMAIL_PASSWORD is a valid app password: %v", err)
		} else {
			log.Printf("[notify] delivery failed: %v", err)
		}
		return false
	}

	log.Printf("[notify] report sent to %s", m.cfg.Mail.Recipient)
	return true
}

func (m *Mailer) compose(reportPath string, recordCount int) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.Mail.Sender); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(m.cfg.Mail.Recipient); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}

	now := m.now()
	msg.Subject(fmt.Sprintf("Data Engineer Job Alerts (<=2 YOE) - %s", now.Format("02 January 2006")))
	msg.SetDate()

	body := fmt.Sprintf(`Hello,

Total Data Engineer jobs (<=2 YOE) found today: %d

The attached spreadsheet lists each job with title, company, location,
salary, experience requirement, source, and a direct application link.

Generated: %s
Automated Job Alert System
`, recordCount, now.Format("02-01-2006 at 15:04"))
	msg.SetBodyString(mail.TypeTextPlain, body)

	// AttachFile has no error return; an unreadable file would surface from
	// DialAndSend, and Send stats the report before composing.
	msg.AttachFile(reportPath)
	return msg, nil
}

// isAuthError reports whether the delivery failure was the relay rejecting
// our credentials. go-mail wraps the server reply as a *textproto.Error, so
// the SMTP reply code is the contract: 530/534/535/538 are the
// authentication-required and authentication-failed replies.
func isAuthError(err error) bool {
	var tpErr *textproto.Error
	if !errors.As(err, &tpErr) {
		return false
	}
	switch tpErr.Code {
	case 530, 534, 535, 538:
		return true
	}
	return false
}
