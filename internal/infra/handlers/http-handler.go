package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"insurance-intake/internal/domain/dto"
	Iservices "insurance-intake/internal/domain/interfaces/services"
	"insurance-intake/internal/domain/serviceerrors"
	"insurance-intake/internal/infra/logger"
)

type HttpHandlers struct {
	Logger      *logger.Logger
	ChatService Iservices.IChatService
}

func NewHttpHandlers(logger *logger.Logger, chatService Iservices.IChatService) *HttpHandlers {
	return &HttpHandlers{Logger: logger, ChatService: chatService}
}

func (th *HttpHandlers) Chat(w http.ResponseWriter, r *http.Request) {
	var chatRequest dto.ChatRequest
	err := json.NewDecoder(r.Body).Decode(&chatRequest)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Error to process JSON")
		return
	}
	defer r.Body.Close()

	response, err := th.ChatService.ProcessTurn(r.Context(), chatRequest.SessionID, chatRequest.Message)
	if err != nil {
		th.writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// writeServiceError maps the service failure taxonomy to client-visible
// statuses. Internal error text never reaches the client.
func (th *HttpHandlers) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, serviceerrors.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "Database service is temporarily unavailable")
	case errors.Is(err, serviceerrors.ErrAgentUnavailable):
		writeError(w, http.StatusServiceUnavailable, "AI Agent is temporarily unavailable")
	case errors.Is(err, serviceerrors.ErrMissingNextQuestion):
		writeError(w, http.StatusInternalServerError, "Invalid agent response format")
	case errors.Is(err, serviceerrors.ErrMalformedAgentResponse):
		writeError(w, http.StatusInternalServerError, "Error processing agent response")
	default:
		th.Logger.Error(fmt.Sprintf("Unexpected error processing chat turn: %v", err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{Detail: detail})
}
