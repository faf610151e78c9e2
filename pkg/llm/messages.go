// Message types and functionality
package llm

// Message represents a single chat message in a conversation
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// MessageRole defines the role of a message sender
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// NewMessage creates a new Message with the given role and content
func NewMessage(role MessageRole, content string) Message {
	return Message{Role: role, Content: content}
}

// NewUserMessage creates a user-role message
func NewUserMessage(content string) Message {
	return NewMessage(RoleUser, content)
}

// NewSystemMessage creates a system-role message
func NewSystemMessage(content string) Message {
	return NewMessage(RoleSystem, content)
}

// NewAssistantMessage creates an assistant-role message
func NewAssistantMessage(content string) Message {
	return NewMessage(RoleAssistant, content)
}

// CopyMessages returns a new slice with the same messages. Messages are value
// types, so a shallow copy is a full copy.
func CopyMessages(messages []Message) []Message {
	if messages == nil {
		return nil
	}
	out := make([]Message, len(messages))
	copy(out, messages)
	return out
}
