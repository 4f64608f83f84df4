package search

import (
	"quickchat/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSearchQuery(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Query
	}{
		{
			name:  "Terms only",
			input: "/find dinner tonight",
			expected: Query{
				RawInput: "/find dinner tonight",
				Terms:    "dinner tonight",
				Limit:    DefaultLimit,
			},
		},
		{
			name:  "Every flag",
			input: "/find payment --recipient +27838968976 --status stored --limit 3",
			expected: Query{
				RawInput:  "/find payment --recipient +27838968976 --status stored --limit 3",
				Terms:     "payment",
				Recipient: "+27838968976",
				Status:    domain.StatusStored,
				Limit:     3,
			},
		},
		{
			name:  "Invalid values are ignored",
			input: "dinner --status queued --limit -2",
			expected: Query{
				RawInput: "dinner --status queued --limit -2",
				Terms:    "dinner",
				Limit:    DefaultLimit,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, *NewSearchQuery(tt.input))
		})
	}
}

func TestQuery_Accepts(t *testing.T) {
	req := require.New(t)
	query := NewSearchQuery("dinner")
	req.True(query.Accepts(domain.StatusSent))
	req.True(query.Accepts(domain.StatusStored))
	req.False(query.Accepts(domain.StatusDisregarded))

	query = NewSearchQuery("dinner --status disregarded")
	req.True(query.Accepts(domain.StatusDisregarded))
	req.False(query.Accepts(domain.StatusSent))
}

func TestQuery_Statuses(t *testing.T) {
	req := require.New(t)
	req.Equal([]domain.Status{domain.StatusSent, domain.StatusStored}, NewSearchQuery("dinner").Statuses())
	req.Equal([]domain.Status{domain.StatusStored}, NewSearchQuery("dinner --status stored").Statuses())
}
