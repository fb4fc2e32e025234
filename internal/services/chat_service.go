package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"ait/pkg/utils"
)

const (
	chatSystemPrompt = "You are a helpful assistant."

	ReplyUnavailable  = "Chatbot is unavailable because the API key is missing."
	ReplyEmptyMessage = "Please enter a message."
	ReplyFailure      = "Something went wrong."
	ReplyTooLong      = "Please keep your message under 2000 characters."

	// MaxChatMessageLength is counted in runes, after trimming.
	MaxChatMessageLength = 2000
)

type ChatServiceInterface interface {
	Reply(ctx context.Context, message string) string
	Unreadable() string
}

type ChatService struct {
	backend *utils.Backend
	logger  *zap.Logger
}

func NewChatService(backend *utils.Backend, logger *zap.Logger) ChatServiceInterface {
	return &ChatService{
		backend: backend,
		logger:  logger.Named("chat"),
	}
}

// Reply relays one stateless turn. It always has an answer for the user.
func (s *ChatService) Reply(ctx context.Context, message string) string {
	if !s.backend.Configured() {
		return ReplyUnavailable
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return ReplyEmptyMessage
	}
	if utf8.RuneCountInString(message) > MaxChatMessageLength {
		return ReplyTooLong
	}

	result := s.backend.Complete(ctx, chatSystemPrompt, message)
	if !result.OK() {
		s.logger.Debug("chat reply degraded", zap.Stringer("status", result.Status))
		return ReplyFailure
	}
	return result.Text
}

// Unreadable is the reply for a request whose body could not be decoded.
func (s *ChatService) Unreadable() string {
	if !s.backend.Configured() {
		return ReplyUnavailable
	}
	return ReplyFailure
}
