package Iservices

import (
	"context"

	"insurance-intake/internal/domain/entities"
)

// IIntakeAgent produces one structured extraction per conversation turn.
type IIntakeAgent interface {
	// Respond takes the full conversation history and returns the raw
	// structured-output text. Returns an empty string without error when
	// the model answered but produced no usable text. Fails with
	// serviceerrors.ErrAgentUnavailable when the model call errors.
	Respond(ctx context.Context, history []entities.Message) (string, error)

	// SystemPrompt returns the configured prompt, stored alongside every
	// completed record.
	SystemPrompt() string
}
