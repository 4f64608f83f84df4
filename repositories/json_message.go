package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const DefaultStoreFilepath = "stored_messages.json"

// JSONMessageRepository keeps the durable sequence as a JSON array in a single file.
// Every write rewrites the whole array. One process at a time: there is no file locking,
// two writers can interleave their read-modify-write and lose an update.
type JSONMessageRepository struct {
	path string
	log  *slog.Logger
}

func NewJSONMessageRepository(path string, log *slog.Logger) JSONMessageRepository {
	return JSONMessageRepository{path: path, log: log}
}

// Load reads the array. Compact and indented encodings are both accepted.
func (r JSONMessageRepository) Load() LoadResult {
	bytes, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return empty()
		}
		return unavailable(err)
	}
	var messages []DiskMessage
	if err = json.Unmarshal(bytes, &messages); err != nil {
		return unavailable(fmt.Errorf("parse %s: %w", r.path, err))
	}
	return found(messages)
}

// Append reads the current sequence, treating any read failure as empty, and writes it back
// with message at the end.
func (r JSONMessageRepository) Append(message DiskMessage) error {
	result := r.Load()
	if result.Status == LoadUnavailable {
		r.log.Warn("Overwriting unreadable message file", "path", r.path, "error", result.Err)
	}
	return r.write(append(result.Messages, message))
}

// RemoveByHash rewrites the file without the first entry carrying hash.
func (r JSONMessageRepository) RemoveByHash(hash string) (bool, error) {
	result := r.Load()
	if result.Status != LoadFound {
		return false, nil
	}
	messages, removed := removeFirst(result.Messages, hash)
	if !removed {
		return false, nil
	}
	return true, r.write(messages)
}

func (r JSONMessageRepository) write(messages []DiskMessage) error {
	if messages == nil {
		messages = []DiskMessage{}
	}
	bytes, err := json.MarshalIndent(messages, "", "    ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(r.path, bytes, 0o644)
}
