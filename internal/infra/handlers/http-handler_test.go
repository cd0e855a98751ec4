package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"insurance-intake/internal/domain/dto"
	"insurance-intake/internal/domain/serviceerrors"
	"insurance-intake/internal/infra/logger"

	"github.com/stretchr/testify/require"
)

type stubChatService struct {
	response dto.ChatResponse
	err      error
}

func (s *stubChatService) ProcessTurn(ctx context.Context, sessionID string, message string) (dto.ChatResponse, error) {
	return s.response, s.err
}

func newChatRecorder(t *testing.T, service *stubChatService, body string) *httptest.ResponseRecorder {
	t.Helper()
	handlers := NewHttpHandlers(logger.NewLogger(context.Background(), false), service)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	handlers.Chat(recorder, req)
	return recorder
}

func decodeDetail(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var errResponse dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResponse))
	return errResponse.Detail
}

func TestChatSuccess(t *testing.T) {
	service := &stubChatService{response: dto.ChatResponse{
		SessionID:     "session-1",
		AgentResponse: "What is your name?",
		Complete:      false,
	}}

	recorder := newChatRecorder(t, service, `{"session_id":null,"message":"hello"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response dto.ChatResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, "session-1", response.SessionID)
	require.Equal(t, "What is your name?", response.AgentResponse)
	require.False(t, response.Complete)
}

func TestChatInvalidRequestBody(t *testing.T) {
	recorder := newChatRecorder(t, &stubChatService{}, "not json")
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestChatStoreUnavailable(t *testing.T) {
	service := &stubChatService{err: serviceerrors.ErrStoreUnavailable}

	recorder := newChatRecorder(t, service, `{"session_id":"","message":"Test"}`)
	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	require.Equal(t, "Database service is temporarily unavailable", decodeDetail(t, recorder))
}

func TestChatAgentUnavailable(t *testing.T) {
	service := &stubChatService{err: serviceerrors.ErrAgentUnavailable}

	recorder := newChatRecorder(t, service, `{"session_id":"","message":"Test"}`)
	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	require.Contains(t, decodeDetail(t, recorder), "AI Agent is temporarily unavailable")
}

func TestChatMalformedAgentResponse(t *testing.T) {
	service := &stubChatService{err: serviceerrors.ErrMalformedAgentResponse}

	recorder := newChatRecorder(t, service, `{"session_id":"","message":"Test"}`)
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.Contains(t, decodeDetail(t, recorder), "Error processing agent response")
}

func TestChatMissingNextQuestion(t *testing.T) {
	service := &stubChatService{err: serviceerrors.ErrMissingNextQuestion}

	recorder := newChatRecorder(t, service, `{"session_id":"","message":"Test"}`)
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.Contains(t, decodeDetail(t, recorder), "Invalid agent response format")
}

func TestChatUnexpectedErrorDoesNotLeak(t *testing.T) {
	service := &stubChatService{err: errors.New("secret internal failure")}

	recorder := newChatRecorder(t, service, `{"session_id":"","message":"Test"}`)
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.Equal(t, "Internal server error", decodeDetail(t, recorder))
	require.NotContains(t, recorder.Body.String(), "secret")
}
