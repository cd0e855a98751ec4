package serviceerrors

import (
	"errors"
	"fmt"
)

// Typed failures raised by the stores and the intake agent. The HTTP
// boundary maps each of them to a distinct client-visible status.
var (
	// ErrStoreUnavailable signals that the session or record store could
	// not be reached or returned a storage error.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrAgentUnavailable signals that the intake agent call itself failed.
	ErrAgentUnavailable = errors.New("agent unavailable")

	// ErrMalformedAgentResponse signals that the agent answered but its
	// output could not be used: the text failed to parse as a structured
	// extraction, or a required field was missing.
	ErrMalformedAgentResponse = errors.New("malformed agent response")

	// ErrMissingNextQuestion is the required-field case of
	// ErrMalformedAgentResponse: the extraction is not complete but the
	// agent supplied no next question.
	ErrMissingNextQuestion = fmt.Errorf("%w: agent supplied no next question", ErrMalformedAgentResponse)
)
