package internal

import (
	"crypto/rand"
	"fmt"
	"quickchat/errors"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

const (
	BackendJSON   = "json"
	BackendBadger = "badger"
)

type Config struct {
	StorageBackend    string        `env:"STORAGE_BACKEND,default=json"`
	StoreFilepath     string        `env:"STORE_FILEPATH,default=stored_messages.json"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,default=quickchat.badger"`
	BlugeFilepath     string        `env:"BLUGE_FILEPATH"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	PruneOnDelete     bool          `env:"PRUNE_ON_DELETE,default=false"`
	CensoredWords     string        `env:"CENSORED_WORDS"`
	CharReplacement   string        `env:"CHARACTER_REPLACEMENT,default=*"`
	RecentLimit       int           `env:"RECENT_LIMIT,default=5"`
	MaxLoginAttempts  int           `env:"MAX_LOGIN_ATTEMPTS,default=3"`
	AuthSecret        string        `env:"AUTH_SECRET"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	Colours           bool          `env:"COLOURS,default=true"`
}

// Load reads an optional .env file, then the environment, and checks the values.
func Load() (Config, error) {
	// A missing .env is the normal case outside development.
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return config, config.Validate()
}

func (c Config) Validate() error {
	switch c.StorageBackend {
	case BackendJSON, BackendBadger:
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownBackend, c.StorageBackend)
	}
	if _, err := CharacterRune(c.CharReplacement); err != nil {
		return err
	}
	if c.RecentLimit <= 0 {
		return fmt.Errorf("RECENT_LIMIT must be positive, got %d", c.RecentLimit)
	}
	return nil
}

// Words splits CENSORED_WORDS on commas, dropping blanks.
func (c Config) Words() []string {
	var words []string
	for _, word := range strings.Split(c.CensoredWords, ",") {
		if word = strings.TrimSpace(word); word != "" {
			words = append(words, word)
		}
	}
	return words
}

// Secret returns AUTH_SECRET, or a random key valid for this process only.
func (c Config) Secret() ([]byte, error) {
	if c.AuthSecret != "" {
		return []byte(c.AuthSecret), nil
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, err
	}
	return secret, nil
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
