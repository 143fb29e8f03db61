package chat

// Role identifies the author of a message in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single entry in a conversation. Messages are immutable once
// appended; ordering within a conversation is significant.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
