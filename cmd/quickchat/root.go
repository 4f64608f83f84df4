package main

import (
	"fmt"
	"io"
	"log/slog"
	"quickchat/internal"
	"quickchat/projection"
	"quickchat/repositories"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd(config internal.Config, log *slog.Logger, in io.Reader, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "quickchat",
		Short:         "QuickChat personal messaging",
		Long:          "QuickChat lets a registered user compose, send, store and report on short messages.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetIn(in)
	root.SetOut(out)

	chat := newChatCmd(config, log)
	root.AddCommand(chat, newInspectCmd(config, log))
	// Running the binary without a sub command opens the chat.
	root.RunE = chat.RunE
	return root
}

func newChatCmd(config internal.Config, log *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open the interactive QuickChat session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColour, _ := cmd.Flags().GetBool("no-colour"); noColour {
				config.Colours = false
			}
			app, err := newApp(config, log)
			if err != nil {
				return err
			}
			defer func() {
				if err := app.Close(); err != nil {
					log.Error("Closing stores failed", "error", err)
				}
			}()
			return newShell(app, cmd.InOrStdin(), cmd.OutOrStdout(), config.Colours).Run(cmd.Context())
		},
	}
	cmd.Flags().Bool("no-colour", false, "disable coloured output")
	return cmd
}

func newInspectCmd(config internal.Config, log *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List the persisted messages of the configured backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if backend, _ := cmd.Flags().GetString("backend"); backend != "" {
				config.StorageBackend = backend
				if err := config.Validate(); err != nil {
					return err
				}
			}
			repository, closeRepository, err := openRepository(config, log)
			if err != nil {
				return err
			}
			defer func() { _ = closeRepository() }()

			result := repository.Load()
			if result.Status == repositories.LoadUnavailable {
				return fmt.Errorf("read persisted messages: %w", result.Err)
			}
			messages := repositories.ToMessages(result.Messages)
			if len(messages) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No stored messages found.")
				return nil
			}
			projection.WriteTable(cmd.OutOrStdout(), messages)
			fmt.Fprintf(cmd.OutOrStdout(), "\nTotal stored messages: %d\n", len(messages))
			return nil
		},
	}
	cmd.Flags().String("backend", "", "storage backend to read (json or badger), defaults to STORAGE_BACKEND")
	return cmd
}
