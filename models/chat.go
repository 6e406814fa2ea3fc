// models/chat.go
package models

import "time"

// ChatSender identifies the originating party of a chat message.
type ChatSender string

const (
	ChatSenderAssistant ChatSender = "assistant"
	ChatSenderUser      ChatSender = "user"
)

// ChatMessage is one turn of the assistant conversation. Messages live only
// in session state for the lifetime of the conversation; they are never
// written to the primary store.
type ChatMessage struct {
	ID          string            `json:"id"`
	Sender      ChatSender        `json:"sender"`
	Text        string            `json:"text"`
	Timestamp   time.Time         `json:"timestamp"`
	Providers   []ServiceProvider `json:"providers,omitempty"`    // attached when a category matched
	ServiceType string            `json:"service_type,omitempty"` // detected category name
}

// Conversation is the owned chat state for one user's session.
type Conversation struct {
	UserID   string        `json:"user_id"`
	Messages []ChatMessage `json:"messages"`
}

// ChatRequest is the payload for one assistant turn.
type ChatRequest struct {
	Text string `json:"text" binding:"required"`
}

// ChatResponse carries the assistant's reply and the updated conversation.
type ChatResponse struct {
	Reply        ChatMessage  `json:"reply"`
	Conversation Conversation `json:"conversation"`
}
