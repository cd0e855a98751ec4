package dto

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	SessionID     string `json:"session_id"`
	AgentResponse string `json:"agent_response"`
	Complete      bool   `json:"complete"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
