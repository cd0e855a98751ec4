package repository

import (
	"context"
	"sync"
	"time"

	"insurance-intake/internal/domain/entities"

	"github.com/google/uuid"
)

// MemorySessionRepository is an in-memory SessionRepository with the same
// semantics as the Mongo implementation. Safe for concurrent use.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]entities.Session
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: make(map[string]entities.Session)}
}

func (r *MemorySessionRepository) GetOrCreate(ctx context.Context, sessionID string) (string, []entities.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sessionID != "" {
		if session, ok := r.sessions[sessionID]; ok {
			return session.ID, copyHistory(session.History), nil
		}
	}

	newID := uuid.NewString()
	now := time.Now()
	r.sessions[newID] = entities.Session{
		ID:        newID,
		History:   []entities.Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return newID, []entities.Message{}, nil
}

func (r *MemorySessionRepository) UpdateHistory(ctx context.Context, sessionID string, history []entities.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		session = entities.Session{ID: sessionID, CreatedAt: time.Now()}
	}
	session.History = copyHistory(history)
	session.UpdatedAt = time.Now()
	r.sessions[sessionID] = session
	return nil
}

// Session returns a stored session for inspection in tests.
func (r *MemorySessionRepository) Session(sessionID string) (entities.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if ok {
		session.History = copyHistory(session.History)
	}
	return session, ok
}

func copyHistory(history []entities.Message) []entities.Message {
	copied := make([]entities.Message, len(history))
	copy(copied, history)
	return copied
}

// MemoryRecordRepository is an in-memory RecordRepository. Safe for
// concurrent use.
type MemoryRecordRepository struct {
	mu      sync.RWMutex
	records []entities.Record
}

func NewMemoryRecordRepository() *MemoryRecordRepository {
	return &MemoryRecordRepository{}
}

func (r *MemoryRecordRepository) ExistsByPlate(ctx context.Context, licencePlate string) (bool, error) {
	if licencePlate == "" {
		return false, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, record := range r.records {
		if record.LicencePlate == licencePlate {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRecordRepository) Save(ctx context.Context, licencePlate string, formData map[string]any, promptUsed string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	r.records = append(r.records, entities.Record{
		LicencePlate: licencePlate,
		FormData:     formData,
		PromptUsed:   promptUsed,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	return nil
}

// CountByPlate returns how many records carry the given licence plate.
func (r *MemoryRecordRepository) CountByPlate(licencePlate string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, record := range r.records {
		if record.LicencePlate == licencePlate {
			count++
		}
	}
	return count
}

// FindByPlate returns the first record with the given licence plate.
func (r *MemoryRecordRepository) FindByPlate(licencePlate string) (entities.Record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, record := range r.records {
		if record.LicencePlate == licencePlate {
			return record, true
		}
	}
	return entities.Record{}, false
}
