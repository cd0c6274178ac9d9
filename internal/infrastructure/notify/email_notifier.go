package notify

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"rera_quotation/internal/logging"
	"rera_quotation/internal/usecase/interfaces"

	"github.com/domodwyer/mailyak/v3"
)

var ErrMissingSMTPConfig = errors.New("missing SMTP configuration")

// EmailNotifier sends approval decision emails to the quotation creator over
// SMTP.
//
// Env vars:
//   - SMTP_HOST, SMTP_PORT (default 587)
//   - SMTP_USER, SMTP_PASSWORD
//   - SMTP_FROM (default SMTP_USER)
//   - NOTIFIER_MOCK=true logs instead of sending (local/dev)
type EmailNotifier struct {
	host     string
	port     string
	from     string
	auth     smtp.Auth
	mockMode bool
}

var _ interfaces.IApprovalNotifier = (*EmailNotifier)(nil)

// NewEmailNotifierFromEnv builds a notifier from the environment. A missing
// SMTP config degrades into mock mode instead of failing startup: decisions
// must keep working when email is down.
func NewEmailNotifierFromEnv() *EmailNotifier {
	if isNotifierMockEnabled() {
		logging.Sugar.Infof("[notify][email] mock mode enabled")
		return &EmailNotifier{mockMode: true}
	}

	host := os.Getenv("SMTP_HOST")
	user := os.Getenv("SMTP_USER")
	if host == "" || user == "" {
		logging.Sugar.Warnf("[notify][email] %v, falling back to mock mode", ErrMissingSMTPConfig)
		return &EmailNotifier{mockMode: true}
	}

	port := getenvDefault("SMTP_PORT", "587")
	from := getenvDefault("SMTP_FROM", user)
	return &EmailNotifier{
		host: host,
		port: port,
		from: from,
		auth: smtp.PlainAuth("", user, os.Getenv("SMTP_PASSWORD"), host),
	}
}

func (n *EmailNotifier) SendApprovalNotification(ctx context.Context, note interfaces.ApprovalNotification) error {
	if note.RecipientEmail == "" {
		logging.Sugar.Warnf("[notify][email] no recipient for quotation_id=%s, skipping", note.QuotationID)
		return nil
	}

	subject := subjectFor(note)
	body := bodyFor(note)

	if n.mockMode {
		logging.Sugar.Infof("[notify][email] mock send to=%s subject=%q", note.RecipientEmail, subject)
		return nil
	}

	mail := mailyak.New(n.host+":"+n.port, n.auth)
	mail.From(n.from)
	mail.To(note.RecipientEmail)
	mail.Subject(subject)
	mail.Plain().Set(body)

	if err := mail.Send(); err != nil {
		return fmt.Errorf("send approval notification: %w", err)
	}
	logging.Sugar.Infof("[notify][email] sent to=%s quotation=%s decision=%s", note.RecipientEmail, note.QuotationNumber, note.Decision)
	return nil
}

func subjectFor(note interfaces.ApprovalNotification) string {
	verb := "Approved"
	if note.Decision == "rejected" {
		verb = "Rejected"
	}
	return fmt.Sprintf("Quotation %s %s", note.QuotationNumber, verb)
}

func bodyFor(note interfaces.ApprovalNotification) string {
	var b strings.Builder
	name := note.RecipientName
	if name == "" {
		name = "there"
	}
	fmt.Fprintf(&b, "Hi %s,\n\n", name)
	fmt.Fprintf(&b, "Quotation %s has been %s by %s.\n\n", note.QuotationNumber, note.Decision, note.ApproverName)
	fmt.Fprintf(&b, "Total amount: INR %d\n", note.TotalAmount)
	if note.DiscountPercentage > 0 {
		fmt.Fprintf(&b, "Discount applied: %.1f%%\n", note.DiscountPercentage)
	}
	if note.Comments != "" {
		fmt.Fprintf(&b, "\nComments: %s\n", note.Comments)
	}
	b.WriteString("\nThis is an automated notification.\n")
	return b.String()
}

func isNotifierMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFIER_MOCK")))
	return v == "1" || v == "true" || v == "yes"
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
