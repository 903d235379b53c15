package models

// Chat roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn represents one message of the transcript
type ChatTurn struct {
	Role    string `json:"role"` // user, assistant
	Content string `json:"content"`
}

// IntentLogEntry records a tool invocation for the dashboard
type IntentLogEntry struct {
	Timestamp  string `json:"timestamp"`
	Intent     string `json:"intent"`
	Parameters string `json:"parameters"`
}

// ChatRequest represents an incoming chat message
type ChatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// ChatResponse represents the agent's reply
type ChatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}
