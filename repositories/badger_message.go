package repositories

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const messagePrefix = "msg:"

// BadgerMessageRepository keeps the durable sequence in BadgerDB.
type BadgerMessageRepository struct {
	db  *badger.DB
	log *slog.Logger

	mu   sync.Mutex
	last int64
}

func NewBadgerMessageRepository(db *badger.DB, log *slog.Logger) *BadgerMessageRepository {
	return &BadgerMessageRepository{db: db, log: log}
}

// Append persists a message in BadgerDB.
// The key is formatted as "msg:{timestamp_padded}:{key}" so that:
//  1. a prefix scan returns entries in append order (19-digit zero padding sorts lexicographically).
//  2. two appends within the same nanosecond cannot overwrite each other.
func (m *BadgerMessageRepository) Append(message DiskMessage) error {
	if message.Key == uuid.Nil {
		message.Key = uuid.New()
	}
	key := fmt.Sprintf("%s%019d:%s", messagePrefix, m.nextTimestamp(), message.Key)
	bytes, err := marshalDiskMessage(message)
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// Load scans every message in append order. Entries that cannot be decoded are skipped.
func (m *BadgerMessageRepository) Load() LoadResult {
	var messages []DiskMessage
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(messagePrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(value []byte) error {
				message, err := unmarshalDiskMessage(value)
				if err != nil {
					m.log.Warn("Skipping unreadable message", "key", string(item.Key()), "error", err)
					return nil
				}
				messages = append(messages, message)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return unavailable(err)
	}
	if len(messages) == 0 {
		return empty()
	}
	return found(messages)
}

// RemoveByHash deletes the first entry, in append order, carrying hash.
func (m *BadgerMessageRepository) RemoveByHash(hash string) (bool, error) {
	removed := false
	err := m.db.Update(func(txn *badger.Txn) error {
		prefix := []byte(messagePrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		var target []byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			message, err := unmarshalDiskMessage(value)
			if err != nil || message.Hash != hash {
				continue
			}
			target = item.KeyCopy(nil)
			break
		}
		if target == nil {
			return nil
		}
		removed = true
		return txn.Delete(target)
	})
	return removed, err
}

// nextTimestamp never repeats, even for appends within the same clock tick.
func (m *BadgerMessageRepository) nextTimestamp() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	ts := time.Now().UnixNano()
	if ts <= m.last {
		ts = m.last + 1
	}
	m.last = ts
	return ts
}

func marshalDiskMessage(message DiskMessage) ([]byte, error) {
	value, err := structpb.NewStruct(map[string]any{
		"key":             message.Key.String(),
		"messageID":       message.ID,
		"numMessagesSent": message.Sequence,
		"recipient":       message.Recipient,
		"messageContent":  message.Content,
		"messageHash":     message.Hash,
		"sendStatus":      message.Status,
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(value)
}

func unmarshalDiskMessage(bytes []byte) (DiskMessage, error) {
	var value structpb.Struct
	if err := proto.Unmarshal(bytes, &value); err != nil {
		return DiskMessage{}, err
	}
	fields := value.GetFields()
	key, err := uuid.Parse(fields["key"].GetStringValue())
	if err != nil {
		return DiskMessage{}, err
	}
	return DiskMessage{
		Key:       key,
		ID:        fields["messageID"].GetStringValue(),
		Sequence:  int(fields["numMessagesSent"].GetNumberValue()),
		Recipient: fields["recipient"].GetStringValue(),
		Content:   fields["messageContent"].GetStringValue(),
		Hash:      fields["messageHash"].GetStringValue(),
		Status:    fields["sendStatus"].GetStringValue(),
	}, nil
}
