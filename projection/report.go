// Package projection renders read-only views of messages.
// Rendering is deterministic and never mutates the messages it receives.
package projection

import (
	"fmt"
	"quickchat/domain"
	"strings"
)

const (
	banner    = "=================================================\n"
	separator = "-------------------------------------------------\n"

	NoSentMessages   = "No sent messages available."
	NoMessagesReport = "No sent messages to display."
)

// Report lists every sent message with its ordinal in the report, then the total.
func Report(sent []*domain.Message) string {
	var sb strings.Builder
	sb.WriteString(banner)
	sb.WriteString("           SENT MESSAGES REPORT\n")
	sb.WriteString(banner)
	sb.WriteString("\n")

	for i, msg := range sent {
		fmt.Fprintf(&sb, "Message #%d\n", i+1)
		sb.WriteString(separator)
		fmt.Fprintf(&sb, "Message Hash: %s\n", msg.Hash())
		fmt.Fprintf(&sb, "Recipient: %s\n", msg.Recipient())
		fmt.Fprintf(&sb, "Message: %s\n", msg.Content())
		sb.WriteString(separator)
		sb.WriteString("\n")
	}

	if len(sent) == 0 {
		sb.WriteString(NoMessagesReport + "\n")
	}

	sb.WriteString(banner)
	fmt.Fprintf(&sb, "Total Sent Messages: %d\n", len(sent))
	sb.WriteString(banner)
	return sb.String()
}

// SentInfo lists recipient and content of every sent message.
func SentInfo(sent []*domain.Message) string {
	if len(sent) == 0 {
		return NoSentMessages
	}
	var sb strings.Builder
	sb.WriteString("=== Sent Messages Info ===\n\n")
	for _, msg := range sent {
		fmt.Fprintf(&sb, "Recipient: %s\nMessage: %s\n\n", msg.Recipient(), msg.Content())
	}
	return sb.String()
}

// RecipientResults formats the outcome of a recipient search.
func RecipientResults(recipient string, contents []string) string {
	if len(contents) == 0 {
		return "No messages found for this recipient."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Messages for %s:\n\n", recipient)
	for _, content := range contents {
		fmt.Fprintf(&sb, "- %s\n\n", content)
	}
	return sb.String()
}

// Summary is the short form shown after an id search.
func Summary(msg *domain.Message) string {
	return fmt.Sprintf("Recipient: %s\nMessage: %s", msg.Recipient(), msg.Content())
}
