package main

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"quickchat/domain"
	"quickchat/errors"
	"quickchat/internal"
	"quickchat/moderation"
	"quickchat/repositories"
	"quickchat/services"
	"quickchat/sink"

	"github.com/dgraph-io/badger/v4"
)

// app holds the wired components of one session.
type app struct {
	config    internal.Config
	log       *slog.Logger
	store     *services.MessageStore
	compose   *services.ComposeService
	auth      *services.AuthService
	timeline  *sink.Timeline
	moderator *moderation.Moderator
	closers   []func() error
}

func newApp(config internal.Config, log *slog.Logger) (*app, error) {
	repository, closeRepository, err := openRepository(config, log)
	if err != nil {
		return nil, err
	}
	a := &app{config: config, log: log, closers: []func() error{closeRepository}}

	index, err := repositories.OpenMessageIndex(config.BlugeFilepath, log)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	a.closers = append(a.closers, index.Close)

	replacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	moderator, err := moderation.NewModerator(config.Words(), replacement, log)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("moderation dictionary: %w", err)
	}

	secret, err := config.Secret()
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.moderator = moderator
	a.timeline = sink.NewTimeline("", config.RecentLimit)
	a.store = services.NewMessageStore(log, repository, index,
		sink.NewDiskSink(repository, log, config.PruneOnDelete),
		sink.NewIndexSink(index, log),
		a.timeline,
	)
	a.compose = services.NewComposeService(domain.NewMessageFactory(domain.NewRandomIDGenerator()), a.store, moderator, log)
	a.auth = services.NewAuthService(repositories.NewUserRepository(), secret, config.AuthTokenDuration, config.MaxLoginAttempts, log)
	return a, nil
}

// Close releases stores in reverse opening order.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// openRepository returns the durable sequence selected by STORAGE_BACKEND and its closer.
func openRepository(config internal.Config, log *slog.Logger) (repositories.IMessageRepository, func() error, error) {
	switch config.StorageBackend {
	case internal.BackendJSON:
		return repositories.NewJSONMessageRepository(config.StoreFilepath, log), func() error { return nil }, nil
	case internal.BackendBadger:
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.ERROR))
		if err != nil {
			return nil, nil, fmt.Errorf("database opening failed: %w", err)
		}
		closer := func() error {
			log.Debug("Closing BadgerDB...")
			return db.Close()
		}
		return repositories.NewBadgerMessageRepository(db, log), closer, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", errors.ErrUnknownBackend, config.StorageBackend)
	}
}
