package main

import (
	"bytes"
	"log/slog"
	"quickchat/domain"
	"quickchat/errors"
	"quickchat/internal"
	"quickchat/repositories"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestInspectCmd(t *testing.T) {
	t.Run("should report an empty store", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		root := newRootCmd(testConfig(t), slog.Default(), strings.NewReader(""), &out)
		root.SetArgs([]string{"inspect"})

		req.NoError(root.Execute())
		req.Contains(out.String(), "No stored messages found.")
	})

	for _, backend := range []string{internal.BackendJSON, internal.BackendBadger} {
		t.Run("should list stored messages from "+backend, func(t *testing.T) {
			req := require.New(t)
			config := testConfig(t)
			config.StorageBackend = backend

			repository, closeRepository, err := openRepository(config, slog.Default())
			req.NoError(err)
			msg := domain.RestoreMessage(uuid.Nil, "1234567890", 1, "+27838884567",
				"Where are you? You are late!", "12:1:WHERE:LATE", domain.StatusStored)
			req.NoError(repository.Append(repositories.FromMessage(msg)))
			req.NoError(closeRepository())

			var out bytes.Buffer
			root := newRootCmd(config, slog.Default(), strings.NewReader(""), &out)
			root.SetArgs([]string{"inspect"})

			req.NoError(root.Execute())
			req.Contains(out.String(), "12:1:WHERE:LATE")
			req.Contains(out.String(), "Total stored messages: 1")
		})
	}

	t.Run("should reject an unknown backend", func(t *testing.T) {
		req := require.New(t)
		root := newRootCmd(testConfig(t), slog.Default(), strings.NewReader(""), &bytes.Buffer{})
		root.SetArgs([]string{"inspect", "--backend", "sqlite"})

		req.ErrorIs(root.Execute(), errors.ErrUnknownBackend)
	})
}

func TestRootCmd_DefaultsToChat(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	root := newRootCmd(testConfig(t), slog.Default(), strings.NewReader(""), &out)
	root.SetArgs([]string{})

	req.NoError(root.Execute())
	req.Contains(out.String(), "Welcome to QuickChat!")
}
