package mailer

import (
	"fmt"
	"strings"

	"github.com/traydesk/transferdesk/internal/record"
)

// Message is a composed notification ready for one send attempt.
type Message struct {
	To             string
	Subject        string
	Body           string
	AttachmentPath string
}

// Subject derives the notification subject from the parsed order number,
// substituting "N/A" when no order number was extracted.
func Subject(rec record.TransferRecord) string {
	return "Transfer Order - " + orNA(rec.OrderNumber)
}

// Body enumerates the record fields and submission parameters as plain text.
func Body(rec record.TransferRecord, sub record.SubmissionContext, recipientEmail string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New transfer order submitted by %s (%s)\n\n", sub.Username, recipientEmail)
	fmt.Fprintf(&b, "Order Number: %s\n", orNA(rec.OrderNumber))
	fmt.Fprintf(&b, "Date: %s\n", orNA(rec.Date))
	fmt.Fprintf(&b, "Customer: %s\n", orNA(rec.Customer))
	fmt.Fprintf(&b, "Address: %s\n", orNA(rec.Address))
	fmt.Fprintf(&b, "Tray Type: %s\n", sub.TrayType)
	fmt.Fprintf(&b, "Quantity: %s\n", sub.Quantity)
	return b.String()
}

// Compose builds the full notification for a recipient and artifact.
func Compose(rec record.TransferRecord, sub record.SubmissionContext, recipientEmail, artifactPath string) Message {
	return Message{
		To:             recipientEmail,
		Subject:        Subject(rec),
		Body:           Body(rec, sub, recipientEmail),
		AttachmentPath: artifactPath,
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
