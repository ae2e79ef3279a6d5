package model

import "strings"

// Note is the wire shape of a Mariposa note. Notes are owned entirely by the
// service; the adapters never cache or mutate them locally.
type Note struct {
	Slug      string   `json:"slug"`
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Content   string   `json:"content"`
	UpdatedAt string   `json:"updatedAt"`
}

// ChatMessage is the subset of the host platform's message object that the
// adapters read and write. Unknown fields are dropped at the boundary on
// purpose; the host keeps its own copy of the full envelope.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatBody is one chat turn as delivered by the host. Only the last message
// is ever inspected or rewritten.
type ChatBody struct {
	Messages []ChatMessage `json:"messages"`
}

// LastContent returns the trimmed content of the last message, or "" when the
// turn carries no messages.
func (b *ChatBody) LastContent() string {
	if b == nil || len(b.Messages) == 0 {
		return ""
	}
	return strings.TrimSpace(b.Messages[len(b.Messages)-1].Content)
}

// SetLastContent replaces the last message's content. No-op on an empty turn.
func (b *ChatBody) SetLastContent(content string) {
	if b == nil || len(b.Messages) == 0 {
		return
	}
	b.Messages[len(b.Messages)-1].Content = content
}

// StatusEvent is a transient progress notification surfaced to the host's
// event channel while the filter adapter talks to the notes service.
type StatusEvent struct {
	Description string `json:"description"`
	Done        bool   `json:"done"`
}
