//go:generate go run go.uber.org/mock/mockgen -source=message_index.go -destination=../mocks/mock_message_index.go -package=mocks
package repositories

import (
	"context"
	"log/slog"
	"quickchat/domain"
	"quickchat/errors"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
)

const (
	fieldContent   = "content"
	fieldRecipient = "recipient"
	fieldStatus    = "status"
	fieldID        = "_id"
)

// IMessageIndex is the full-text view over the session's messages.
type IMessageIndex interface {
	Index(message *domain.Message) error
	Remove(key uuid.UUID) error
	Search(ctx context.Context, terms, recipient string, statuses []domain.Status, limit int) ([]uuid.UUID, error)
}

type MessageIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewMessageIndex(writer *bluge.Writer, log *slog.Logger) *MessageIndex {
	return &MessageIndex{writer: writer, log: log}
}

// OpenMessageIndex opens a writer at path, or an in-memory one when path is empty.
func OpenMessageIndex(path string, log *slog.Logger) (*MessageIndex, error) {
	config := bluge.InMemoryOnlyConfig()
	if path != "" {
		config = bluge.DefaultConfig(path)
	}
	writer, err := bluge.OpenWriter(config)
	if err != nil {
		return nil, err
	}
	return NewMessageIndex(writer, log), nil
}

func (i *MessageIndex) Close() error {
	return i.writer.Close()
}

// Index inserts or replaces the document of a message, keyed by its unique key.
func (i *MessageIndex) Index(message *domain.Message) error {
	doc := bluge.NewDocument(message.Key().String()).
		AddField(bluge.NewTextField(fieldContent, message.Content())).
		AddField(bluge.NewKeywordField(fieldRecipient, message.Recipient())).
		AddField(bluge.NewKeywordField(fieldStatus, string(message.Status())))
	return i.writer.Update(doc.ID(), doc)
}

func (i *MessageIndex) Remove(key uuid.UUID) error {
	return i.writer.Delete(bluge.Identifier(key.String()))
}

// Search returns matching keys by relevance. Recipient narrows to an exact address when set,
// statuses to documents holding one of them. Both filters apply before the limit.
func (i *MessageIndex) Search(ctx context.Context, terms, recipient string, statuses []domain.Status, limit int) ([]uuid.UUID, error) {
	if terms == "" {
		return nil, errors.ErrEmptyQuery
	}
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = reader.Close()
	}()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(terms).SetField(fieldContent))
	if recipient != "" {
		query.AddMust(bluge.NewTermQuery(recipient).SetField(fieldRecipient))
	}
	if len(statuses) > 0 {
		statusQuery := bluge.NewBooleanQuery().SetMinShould(1)
		for _, status := range statuses {
			statusQuery.AddShould(bluge.NewTermQuery(string(status)).SetField(fieldStatus))
		}
		query.AddMust(statusQuery)
	}

	matches, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var keys []uuid.UUID
	match, err := matches.Next()
	for err == nil && match != nil {
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			if field != fieldID {
				return true
			}
			key, parseErr := uuid.ParseBytes(value)
			if parseErr != nil {
				i.log.Warn("Skipping document with invalid key", "key", string(value))
				return false
			}
			keys = append(keys, key)
			return false
		})
		if visitErr != nil {
			return nil, visitErr
		}
		match, err = matches.Next()
	}
	if err != nil {
		return nil, err
	}
	return keys, nil
}
