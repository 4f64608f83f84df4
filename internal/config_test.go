package internal

import (
	"os"
	"quickchat/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var configVariables = []string{"STORAGE_BACKEND", "STORE_FILEPATH", "BADGER_FILEPATH", "BLUGE_FILEPATH",
	"LOG_LEVEL", "PRUNE_ON_DELETE", "CENSORED_WORDS", "CHARACTER_REPLACEMENT", "RECENT_LIMIT",
	"MAX_LOGIN_ATTEMPTS", "AUTH_SECRET", "AUTH_TOKEN_DURATION", "COLOURS"}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, name := range configVariables {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestLoad_Defaults(t *testing.T) {
	req := require.New(t)
	clearEnv(t)

	config, err := Load()
	req.NoError(err)
	req.Equal(BackendJSON, config.StorageBackend)
	req.Equal("stored_messages.json", config.StoreFilepath)
	req.False(config.PruneOnDelete)
	req.Equal(5, config.RecentLimit)
	req.Equal(3, config.MaxLoginAttempts)
	req.Equal(24*time.Hour, config.AuthTokenDuration)
}

func TestLoad_Overrides(t *testing.T) {
	req := require.New(t)
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "badger")
	t.Setenv("PRUNE_ON_DELETE", "true")
	t.Setenv("CENSORED_WORDS", "cake, ,dinner")
	t.Setenv("CHARACTER_REPLACEMENT", "#")

	config, err := Load()
	req.NoError(err)
	req.Equal(BackendBadger, config.StorageBackend)
	req.True(config.PruneOnDelete)
	req.Equal([]string{"cake", "dinner"}, config.Words())
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{StorageBackend: BackendJSON, CharReplacement: "*", RecentLimit: 5}

	t.Run("should accept a valid config", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("should reject an unknown backend", func(t *testing.T) {
		config := valid
		config.StorageBackend = "sqlite"
		require.ErrorIs(t, config.Validate(), errors.ErrUnknownBackend)
	})

	t.Run("should reject a multi character replacement", func(t *testing.T) {
		config := valid
		config.CharReplacement = "**"
		require.Error(t, config.Validate())
	})
}

func TestConfig_Secret(t *testing.T) {
	req := require.New(t)

	secret, err := Config{AuthSecret: "s3cr3t"}.Secret()
	req.NoError(err)
	req.Equal([]byte("s3cr3t"), secret)

	first, err := Config{}.Secret()
	req.NoError(err)
	second, err := Config{}.Secret()
	req.NoError(err)
	req.Len(first, 32)
	req.NotEqual(first, second)
}
