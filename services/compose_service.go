package services

import (
	"context"
	"fmt"
	"log/slog"
	"quickchat/domain"
	"quickchat/errors"
)

// ContentModerator is satisfied by *moderation.Moderator.
type ContentModerator interface {
	Censor(content string) (string, []string)
	Language(content string) string
}

type IComposeService interface {
	Compose(ctx context.Context, req domain.ComposeRequest, choice domain.Choice) (ComposeResult, error)
	TotalMessages() int
}

type ComposeResult struct {
	Message      *domain.Message
	Confirmation string
	Censored     []string
}

// ComposeService drives a record from raw input to the store:
// validate, moderate, hash, classify, add.
type ComposeService struct {
	factory   *domain.MessageFactory
	store     *MessageStore
	moderator ContentModerator
	log       *slog.Logger
}

// NewComposeService accepts a nil moderator, in which case content is kept verbatim.
func NewComposeService(factory *domain.MessageFactory, store *MessageStore, moderator ContentModerator, log *slog.Logger) *ComposeService {
	return &ComposeService{factory: factory, store: store, moderator: moderator, log: log}
}

// Compose validates the request before a record is created, so rejected input does not
// consume a sequence number. A record is only added once its classification succeeded.
func (s *ComposeService) Compose(ctx context.Context, req domain.ComposeRequest, choice domain.Choice) (ComposeResult, error) {
	if _, ok := choice.Status(); !ok {
		return ComposeResult{Confirmation: invalidChoice}, errors.ErrInvalidChoice
	}
	if err := domain.ValidateCompose(req); err != nil {
		return ComposeResult{}, err
	}

	content := req.Content
	var censored []string
	if s.moderator != nil {
		content, censored = s.moderator.Censor(req.Content)
		if len(censored) > 0 {
			s.log.Info("Message censored", "words", len(censored), "lang", s.moderator.Language(req.Content))
		}
	}

	msg := s.factory.NewMessage()
	if err := msg.SetRecipient(req.Recipient); err != nil {
		return ComposeResult{}, err
	}
	if err := msg.SetContent(content); err != nil {
		return ComposeResult{}, err
	}
	msg.CreateHash()

	confirmation, err := s.store.Classify(ctx, msg, choice)
	if err != nil {
		return ComposeResult{Confirmation: confirmation}, fmt.Errorf("classify message %s: %w", msg.ID(), err)
	}
	s.store.Add(ctx, msg)

	s.log.Debug("Message composed", "id", msg.ID(), "hash", msg.Hash(), "status", msg.Status())
	return ComposeResult{Message: msg, Confirmation: confirmation, Censored: censored}, nil
}

// TotalMessages is the number of records created this session.
func (s *ComposeService) TotalMessages() int {
	return s.factory.Total()
}
