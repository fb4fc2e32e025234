package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ait/pkg/utils"
)

func TestChatService_Reply(t *testing.T) {
	tests := []struct {
		name      string
		fake      *fakeCompleter
		message   string
		want      string
		wantCalls int
	}{
		{name: "relays trimmed reply", fake: &fakeCompleter{reply: "  Namaste!\n"}, message: "hello", want: "Namaste!", wantCalls: 1},
		{name: "empty message", fake: &fakeCompleter{reply: "unused"}, message: "", want: ReplyEmptyMessage},
		{name: "whitespace message", fake: &fakeCompleter{reply: "unused"}, message: " \n\t", want: ReplyEmptyMessage},
		{name: "too long", fake: &fakeCompleter{reply: "unused"}, message: strings.Repeat("a", MaxChatMessageLength+1), want: ReplyTooLong},
		{name: "at the limit", fake: &fakeCompleter{reply: "ok"}, message: strings.Repeat("é", MaxChatMessageLength), want: "ok", wantCalls: 1},
		{name: "backend error", fake: &fakeCompleter{err: errors.New("boom")}, message: "hello", want: ReplyFailure, wantCalls: 1},
		{name: "empty completion", fake: &fakeCompleter{reply: ""}, message: "hello", want: ReplyFailure, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := utils.NewBackend("chat", "openai", tt.fake, utils.BackendOptions{}, zap.NewNop())
			svc := NewChatService(backend, zap.NewNop())

			assert.Equal(t, tt.want, svc.Reply(context.Background(), tt.message))
			assert.Equal(t, tt.wantCalls, tt.fake.Calls())
		})
	}
}

func TestChatService_SendsFixedSystemPromptAndNoHistory(t *testing.T) {
	fake := &fakeCompleter{reply: "ok"}
	svc := NewChatService(utils.NewBackend("chat", "openai", fake, utils.BackendOptions{}, zap.NewNop()), zap.NewNop())

	svc.Reply(context.Background(), "first")
	svc.Reply(context.Background(), " second ")

	require.Equal(t, 2, fake.Calls())
	assert.Equal(t, []string{chatSystemPrompt, chatSystemPrompt}, fake.systems)
	assert.Equal(t, []string{"first", "second"}, fake.users)
}

func TestChatService_UnconfiguredWinsOverEmptyMessage(t *testing.T) {
	svc := NewChatService(utils.UnconfiguredBackend("chat", "openai", zap.NewNop()), zap.NewNop())

	assert.Equal(t, ReplyUnavailable, svc.Reply(context.Background(), ""))
	assert.Equal(t, ReplyUnavailable, svc.Reply(context.Background(), "hello"))
	assert.Equal(t, ReplyUnavailable, svc.Unreadable())
}

func TestChatService_Unreadable(t *testing.T) {
	svc := NewChatService(utils.NewBackend("chat", "openai", &fakeCompleter{}, utils.BackendOptions{}, zap.NewNop()), zap.NewNop())

	assert.Equal(t, ReplyFailure, svc.Unreadable())
}
