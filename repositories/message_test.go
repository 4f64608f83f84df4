package repositories

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func diskMessages() []DiskMessage {
	return []DiskMessage{
		{uuid.New(), "1234567890", 1, "+27838968976", "Did you get the cake?", "12:1:DID:CAKE", "Stored"},
		{uuid.New(), "5566778899", 2, "+27838884567", "Where are you? You are late!", "55:2:WHERE:LATE", "Stored"},
		{uuid.New(), "0011223344", 3, "+27838968976", "Ok, I am leaving without you.", "00:3:OK:YOU", "Stored"},
	}
}

func Test_JSON_Load_Missing_File_Is_Empty(t *testing.T) {
	req := require.New(t)
	repository := NewJSONMessageRepository(filepath.Join(t.TempDir(), "missing.json"), slog.Default())

	result := repository.Load()
	req.Equal(LoadEmpty, result.Status)
	req.Empty(result.Messages)
	req.NoError(result.Err)
}

func Test_JSON_Load_Corrupted_File_Is_Unavailable(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "stored_messages.json")
	req.NoError(os.WriteFile(path, []byte("{oops"), 0o644))
	repository := NewJSONMessageRepository(path, slog.Default())

	result := repository.Load()
	req.Equal(LoadUnavailable, result.Status)
	req.Empty(result.Messages)
	req.Error(result.Err)
}

func Test_JSON_Append_Keeps_Order(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "stored_messages.json")
	repository := NewJSONMessageRepository(path, slog.Default())

	messages := diskMessages()
	for _, dm := range messages {
		req.NoError(repository.Append(dm))
	}

	result := NewJSONMessageRepository(path, slog.Default()).Load()
	req.Equal(LoadFound, result.Status)
	req.Equal(messages, result.Messages)
}

func Test_JSON_Append_Overwrites_Corrupted_File(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "stored_messages.json")
	req.NoError(os.WriteFile(path, []byte("not json"), 0o644))
	repository := NewJSONMessageRepository(path, slog.Default())

	message := diskMessages()[0]
	req.NoError(repository.Append(message))

	result := repository.Load()
	req.Equal(LoadFound, result.Status)
	req.Equal([]DiskMessage{message}, result.Messages)
}

func Test_JSON_Load_Accepts_Compact_And_Legacy_Encoding(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "stored_messages.json")
	compact := `[{"messageID":"1234567890","numMessagesSent":1,"recipient":"+27838968976",` +
		`"messageContent":"Did you get the cake?","messageHash":"12:1:DID:CAKE","sendStatus":"Stored"}]`
	req.NoError(os.WriteFile(path, []byte(compact), 0o644))

	result := NewJSONMessageRepository(path, slog.Default()).Load()
	req.Equal(LoadFound, result.Status)
	req.Len(result.Messages, 1)
	req.Equal(uuid.Nil, result.Messages[0].Key)
	req.Equal("Did you get the cake?", result.Messages[0].Content)

	message := ToMessage(result.Messages[0])
	req.NotEqual(uuid.Nil, message.Key())
	req.Equal("12:1:DID:CAKE", message.Hash())
}

func Test_JSON_Write_Is_Indented(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "nested", "stored_messages.json")
	repository := NewJSONMessageRepository(path, slog.Default())
	req.NoError(repository.Append(diskMessages()[0]))

	bytes, err := os.ReadFile(path)
	req.NoError(err)
	req.Contains(string(bytes), "\n        \"messageID\": \"1234567890\"")
}

func Test_JSON_RemoveByHash(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "stored_messages.json")
	repository := NewJSONMessageRepository(path, slog.Default())
	messages := diskMessages()
	for _, dm := range messages {
		req.NoError(repository.Append(dm))
	}

	removed, err := repository.RemoveByHash("55:2:WHERE:LATE")
	req.NoError(err)
	req.True(removed)

	removed, err = repository.RemoveByHash("55:2:WHERE:LATE")
	req.NoError(err)
	req.False(removed)

	result := repository.Load()
	req.Equal([]DiskMessage{messages[0], messages[2]}, result.Messages)
}

func Test_RemoveFirst_Does_Not_Alias(t *testing.T) {
	req := require.New(t)
	messages := diskMessages()
	original := append([]DiskMessage(nil), messages...)

	remaining, ok := removeFirst(messages, "12:1:DID:CAKE")
	req.True(ok)
	req.Len(remaining, 2)
	req.Equal(original, messages)
}
