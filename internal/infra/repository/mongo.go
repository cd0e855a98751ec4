package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"insurance-intake/internal/domain/entities"
	"insurance-intake/internal/domain/serviceerrors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	SessionCollection = "sessions"
	RecordCollection  = "records"
)

type MongoSessionRepository struct {
	sessions *mongo.Collection
}

func NewMongoSessionRepository(db *mongo.Database) *MongoSessionRepository {
	return &MongoSessionRepository{sessions: db.Collection(SessionCollection)}
}

func (r *MongoSessionRepository) GetOrCreate(ctx context.Context, sessionID string) (string, []entities.Message, error) {
	if sessionID != "" {
		var session entities.Session
		err := r.sessions.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&session)
		if err == nil {
			return session.ID, session.History, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, fmt.Errorf("%w: find session: %v", serviceerrors.ErrStoreUnavailable, err)
		}
	}

	newID := uuid.NewString()
	now := time.Now()
	session := entities.Session{
		ID:        newID,
		History:   []entities.Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.sessions.InsertOne(ctx, session); err != nil {
		return "", nil, fmt.Errorf("%w: insert session: %v", serviceerrors.ErrStoreUnavailable, err)
	}

	return newID, []entities.Message{}, nil
}

func (r *MongoSessionRepository) UpdateHistory(ctx context.Context, sessionID string, history []entities.Message) error {
	filter := bson.M{"_id": sessionID}
	update := bson.M{
		"$set": bson.M{
			"history":    history,
			"updated_at": time.Now(),
		},
	}

	// Upsert keeps the call consistent when the id is unknown: the session
	// is created rather than the update silently matching nothing.
	_, err := r.sessions.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("%w: update session: %v", serviceerrors.ErrStoreUnavailable, err)
	}
	return nil
}

type MongoRecordRepository struct {
	records *mongo.Collection
}

func NewMongoRecordRepository(db *mongo.Database) *MongoRecordRepository {
	return &MongoRecordRepository{records: db.Collection(RecordCollection)}
}

func (r *MongoRecordRepository) ExistsByPlate(ctx context.Context, licencePlate string) (bool, error) {
	if licencePlate == "" {
		return false, nil
	}

	err := r.records.FindOne(ctx, bson.M{"licence_plate": licencePlate}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, fmt.Errorf("%w: find record: %v", serviceerrors.ErrStoreUnavailable, err)
}

func (r *MongoRecordRepository) Save(ctx context.Context, licencePlate string, formData map[string]any, promptUsed string) error {
	now := time.Now()
	record := entities.Record{
		LicencePlate: licencePlate,
		FormData:     formData,
		PromptUsed:   promptUsed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := r.records.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("%w: insert record: %v", serviceerrors.ErrStoreUnavailable, err)
	}
	return nil
}
