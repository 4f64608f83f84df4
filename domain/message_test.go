package domain

import (
	"quickchat/errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRandomIDGenerator_Generate(t *testing.T) {
	req := require.New(t)
	generator := NewRandomIDGenerator()
	for range 1000 {
		id := generator.Generate()
		req.Len(id, IDLength)
		req.True(IsValidID(id), "id %q is not numeric", id)
	}
}

func TestSeededIDGenerator_IsDeterministic(t *testing.T) {
	req := require.New(t)
	first := NewSeededIDGenerator(42)
	second := NewSeededIDGenerator(42)
	for range 10 {
		req.Equal(first.Generate(), second.Generate())
	}
}

func TestIsValidID(t *testing.T) {
	req := require.New(t)
	req.True(IsValidID("0123456789"))
	req.False(IsValidID("012345678"))
	req.False(IsValidID("01234567890"))
	req.False(IsValidID("01234a6789"))
}

func TestBuildHash(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		sequence int
		content  string
		expected string
	}{
		{"First and last word", "1234567890", 1, "Hi Mike, can you join us for dinner tonight", "12:1:HI:TONIGHT"},
		{"Punctuation is stripped", "9876543210", 4, "Hi, Keegan! did you receive the payment?", "98:4:HI:PAYMENT"},
		{"Single word", "5500000000", 2, "  hello!  ", "55:2:HELLO:HELLO"},
		{"Digits only word", "1200000000", 3, "123 go", "12:3::GO"},
		{"Newlines and tabs", "3400000000", 7, "first\n\tmiddle\tlast", "34:7:FIRST:LAST"},
		{"Non-breaking space joins words", "1234567890", 1, "Hello\u00A0World", "12:1:HELLOWORLD:HELLOWORLD"},
		{"Vertical tab and form feed split", "1234567890", 2, "one\vtwo\fthree", "12:2:ONE:THREE"},
		{"Empty content", "1234567890", 5, "", "12:5:EMPTY:EMPTY"},
		{"Blank content", "1234567890", 6, " \t\n ", "12:6:EMPTY:EMPTY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, BuildHash(tt.id, tt.sequence, tt.content))
		})
	}
}

func TestMessageFactory_Sequence(t *testing.T) {
	req := require.New(t)
	factory := NewMessageFactory(NewSeededIDGenerator(1))

	first := factory.NewMessage()
	second := factory.NewMessage()
	req.Equal(1, first.Sequence())
	req.Equal(2, second.Sequence())
	req.Equal(2, factory.Total())
	req.NotEqual(first.Key(), second.Key())
	req.True(first.CheckID())
	req.Equal(StatusUnclassified, first.Status())
	req.Empty(first.Hash())

	factory.ResetForTesting()
	req.Equal(0, factory.Total())
	req.Equal(1, factory.NewMessage().Sequence())
}

func TestMessage_CreateHash(t *testing.T) {
	req := require.New(t)
	factory := NewMessageFactory(NewRandomIDGenerator())
	msg := factory.NewMessage()
	req.NoError(msg.SetRecipient("+27718693002"))
	req.NoError(msg.SetContent("Hi Mike, can you join us for dinner tonight"))

	hash := msg.CreateHash()
	req.Equal(hash, msg.Hash())
	req.Contains(hash, ":1:")
	req.True(strings.HasPrefix(hash, msg.ID()[:2]))
	req.True(strings.HasSuffix(hash, ":HI:TONIGHT"))
}

func TestMessage_Classify(t *testing.T) {
	req := require.New(t)
	factory := NewMessageFactory(NewRandomIDGenerator())
	msg := factory.NewMessage()

	req.ErrorIs(msg.Classify(StatusUnclassified), errors.ErrInvalidChoice)
	req.Equal(StatusUnclassified, msg.Status())

	req.NoError(msg.Classify(StatusSent))
	req.Equal(StatusSent, msg.Status())

	err := msg.Classify(StatusStored)
	req.ErrorIs(err, errors.ErrAlreadyClassified)
	req.ErrorIs(err, errors.ErrInvalidChoice)
	req.Equal(StatusSent, msg.Status())

	req.ErrorIs(msg.SetContent("changed"), errors.ErrMessageFinalized)
	req.ErrorIs(msg.SetRecipient("+27838968976"), errors.ErrMessageFinalized)
}

func TestRestoreMessage(t *testing.T) {
	req := require.New(t)
	msg := RestoreMessage(uuid.Nil, "1234567890", 3, "+27838968976", "Stored for later", "12:3:STORED:LATER", StatusStored)
	req.NotEqual(uuid.Nil, msg.Key())
	req.Equal("1234567890", msg.ID())
	req.Equal(3, msg.Sequence())
	req.Equal(StatusStored, msg.Status())
	req.Equal("Message ID: 1234567890\nMessage Hash: 12:3:STORED:LATER\nRecipient: +27838968976\nMessage: Stored for later\nStatus: Stored", msg.Details())
}

func TestParseChoice(t *testing.T) {
	req := require.New(t)
	req.Equal(ChoiceSend, ParseChoice("1"))
	req.Equal(ChoiceDisregard, ParseChoice(" disregard "))
	req.Equal(ChoiceStore, ParseChoice("Store"))

	status, ok := ParseChoice("4").Status()
	req.False(ok)
	req.Empty(status)

	_, ok = ParseChoice("later").Status()
	req.False(ok)
}

func TestParseStatus(t *testing.T) {
	req := require.New(t)
	status, ok := ParseStatus("stored")
	req.True(ok)
	req.Equal(StatusStored, status)

	status, ok = ParseStatus("")
	req.True(ok)
	req.Equal(StatusUnclassified, status)

	_, ok = ParseStatus("queued")
	req.False(ok)
}
