package search

import (
	"quickchat/domain"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const DefaultLimit = 10

// Query represents the structured parameters for a keyword search over the session.
// It decouples the raw shell input from the index requirements.
type Query struct {
	RawInput  string        // The original input from the user
	Terms     string        // The actual text to search in the index
	Recipient string        // Exact recipient filter, empty for any
	Status    domain.Status // Status filter, empty for Sent or Stored
	Limit     int           // Maximum number of results
}

// NewSearchQuery parses a raw string to extract command-line style arguments.
// Example: /find dinner --recipient +27838968976 --status sent --limit 5
func NewSearchQuery(input string) *Query {
	query := &Query{
		RawInput: input,
		Limit:    DefaultLimit,
	}

	parts := strings.Fields(input)
	var textTerms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		// Handle flags like --recipient +27... or --limit 4
		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			key := strings.TrimPrefix(part, "--")
			val := parts[i+1]

			switch key {
			case "recipient":
				query.Recipient = val
			case "status":
				if status, ok := domain.ParseStatus(val); ok {
					query.Status = status
				}
			case "limit":
				if limit, err := strconv.Atoi(val); err == nil && limit > 0 {
					query.Limit = limit
				}
			}
			i++ // Skip the value part in next iteration
			continue
		}

		// If it's not a command, it's a search term
		if !strings.HasPrefix(part, "/") {
			textTerms = append(textTerms, part)
		}
	}

	query.Terms = strings.Join(textTerms, " ")
	return query
}

// Statuses lists the statuses visible for this query.
func (q Query) Statuses() []domain.Status {
	if q.Status == "" || q.Status == domain.StatusUnclassified {
		return []domain.Status{domain.StatusSent, domain.StatusStored}
	}
	return []domain.Status{q.Status}
}

// Accepts reports whether a status is visible for this query.
// Without an explicit filter only Sent and Stored messages are searchable.
func (q Query) Accepts(status domain.Status) bool {
	return lo.Contains(q.Statuses(), status)
}
