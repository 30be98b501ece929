package types

// Role of the speaker in an Exchange.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Exchange is one message of a chat session.
type Exchange struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// UserSaid builds a user exchange.
func UserSaid(text string) Exchange {
	return Exchange{Role: RoleUser, Text: text}
}

// AssistantSaid builds an assistant exchange.
func AssistantSaid(text string) Exchange {
	return Exchange{Role: RoleAssistant, Text: text}
}
