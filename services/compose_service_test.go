package services

import (
	"context"
	"log/slog"
	"quickchat/domain"
	"quickchat/errors"
	"quickchat/moderation"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeService_Compose(t *testing.T) {
	ctx := context.Background()

	t.Run("should classify and add a valid message", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, false)
		svc := NewComposeService(f.factory, f.store, nil, slog.Default())

		result, err := svc.Compose(ctx, domain.ComposeRequest{
			Recipient: "+27718693002",
			Content:   "Hi Mike, can you join us for dinner tonight",
		}, domain.ChoiceSend)

		req.NoError(err)
		req.Equal("Message successfully sent.", result.Confirmation)
		req.Equal(domain.StatusSent, result.Message.Status())
		req.True(strings.HasSuffix(result.Message.Hash(), ":1:HI:TONIGHT"))
		req.Equal(1, f.store.Len())
		req.Equal(1, svc.TotalMessages())
	})

	t.Run("should reject an invalid recipient without creating a record", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, false)
		svc := NewComposeService(f.factory, f.store, nil, slog.Default())

		_, err := svc.Compose(ctx, domain.ComposeRequest{Recipient: "08575975889", Content: "Hi"}, domain.ChoiceSend)

		req.ErrorIs(err, errors.ErrInvalidRecipient)
		req.ErrorIs(err, errors.ErrValidation)
		req.Equal(0, f.store.Len())
		req.Equal(0, svc.TotalMessages())
	})

	t.Run("should report the excess of a long message", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, false)
		svc := NewComposeService(f.factory, f.store, nil, slog.Default())

		_, err := svc.Compose(ctx, domain.ComposeRequest{
			Recipient: "+27718693002",
			Content:   strings.Repeat("a", 260),
		}, domain.ChoiceStore)

		req.ErrorIs(err, errors.ErrContentTooLong)
		req.Contains(err.Error(), "Message exceeds 250 characters by 10, please reduce size.")
		req.Equal(0, f.store.Len())
	})

	t.Run("should reject an unknown choice", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, false)
		svc := NewComposeService(f.factory, f.store, nil, slog.Default())

		result, err := svc.Compose(ctx, domain.ComposeRequest{Recipient: "+27718693002", Content: "Hi"}, domain.ParseChoice("later"))

		req.ErrorIs(err, errors.ErrInvalidChoice)
		req.Equal("Invalid option selected.", result.Confirmation)
		req.Equal(0, f.store.Len())
	})

	t.Run("should censor content before hashing", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t, false)
		mod, err := moderation.NewModerator([]string{"cake"}, '*', slog.Default())
		req.NoError(err)
		svc := NewComposeService(f.factory, f.store, mod, slog.Default())

		result, err := svc.Compose(ctx, domain.ComposeRequest{
			Recipient: "+27834557896",
			Content:   "Did you get the cake",
		}, domain.ChoiceSend)

		req.NoError(err)
		req.Equal("Did you get the ****", result.Message.Content())
		req.Equal([]string{"cake"}, result.Censored)
		req.True(strings.HasSuffix(result.Message.Hash(), ":DID:"))
	})
}
