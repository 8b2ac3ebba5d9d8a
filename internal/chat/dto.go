package chat

type StartSessionRequest struct {
	Workflow string `json:"workflow"`
}

type StartSessionResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type SendMessageRequest struct {
	Message string `json:"message"`
}

type SendMessageResponse struct {
	AIMessage string   `json:"ai_message"`
	Citations []string `json:"citations"`
}
