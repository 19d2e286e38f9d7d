package app

import (
	"context"
	"strings"
)

// chatSystemPrompt frames the assistant for FAQ-style cybersecurity help.
const chatSystemPrompt = "You are CyberShield Assistant, a helpful guide on a " +
	"cybersecurity-awareness learning platform. Answer questions about " +
	"cybersecurity practices and reporting cyber fraud. Be concise and " +
	"practical; answer in plain text."

// historyLimit bounds how much conversation context is forwarded upstream.
const historyLimit = 10

// ChatService is a thin pass-through to a chat-completion API with a fixed
// system prompt prepended.
type ChatService struct {
	completer ChatCompleter
}

func NewChatService(completer ChatCompleter) *ChatService {
	return &ChatService{completer: completer}
}

// Reply forwards the user's message plus bounded history and returns the
// assistant's answer.
func (s *ChatService) Reply(ctx context.Context, message string, history []ChatMessage) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", nil
	}

	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	messages := make([]ChatMessage, 0, len(history)+2)
	messages = append(messages, ChatMessage{Role: "system", Content: chatSystemPrompt})
	messages = append(messages, history...)
	messages = append(messages, ChatMessage{Role: "user", Content: message})

	return s.completer.Complete(ctx, messages)
}
