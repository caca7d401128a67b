package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// ChatMessage is one transcript entry. User messages carry Text, AI messages
// carry Response; a message is never mutated after creation.
type ChatMessage struct {
	ID        string          `json:"id"`
	Sender    string          `json:"sender"`
	Text      string          `json:"text,omitempty"`
	Response  *SearchResponse `json:"response,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewUserMessage creates the optimistic transcript entry for a submitted query.
func NewUserMessage(text string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Sender:    SenderUser,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// NewAIMessage wraps a backend response as a transcript entry.
func NewAIMessage(resp *SearchResponse) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Sender:    SenderAI,
		Response:  resp,
		Timestamp: time.Now(),
	}
}
