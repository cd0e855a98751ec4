package Iservices

import (
	"context"

	"insurance-intake/internal/domain/dto"
)

// IChatService processes one chat turn: one user message in, one decision out.
type IChatService interface {
	ProcessTurn(ctx context.Context, sessionID string, message string) (dto.ChatResponse, error)
}
