package repository

import (
	"context"

	"insurance-intake/internal/domain/entities"
)

// SessionRepository persists conversation state keyed by session id.
type SessionRepository interface {
	// GetOrCreate resolves a session id to its stored history. An empty or
	// unknown id is not an error: a fresh session with an empty history is
	// created and its generated id returned. Fails with
	// serviceerrors.ErrStoreUnavailable on storage errors.
	GetOrCreate(ctx context.Context, sessionID string) (string, []entities.Message, error)

	// UpdateHistory replaces the stored history wholesale and refreshes the
	// session's update timestamp. Creates the session if the id is unknown.
	UpdateHistory(ctx context.Context, sessionID string, history []entities.Message) error
}

// RecordRepository persists completed applications.
type RecordRepository interface {
	// ExistsByPlate reports whether at least one record with the given
	// licence plate exists. An empty plate is never treated as existing.
	ExistsByPlate(ctx context.Context, licencePlate string) (bool, error)

	// Save appends a new record. Uniqueness of the licence plate is the
	// caller's responsibility via ExistsByPlate.
	Save(ctx context.Context, licencePlate string, formData map[string]any, promptUsed string) error
}
