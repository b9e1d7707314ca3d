package recordsRepo

import (
	"context"
	"errors"
	"time"

	"roomly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new booking record and returns its ID.
func (r *mongoRecordRepo) Create(ctx context.Context, record models.BookingRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetByUserID fetches all booking records for a specific user.
func (r *mongoRecordRepo) GetByUserID(ctx context.Context, userID string) ([]models.BookingRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.BookingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteByID removes a booking record by ID.
func (r *mongoRecordRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("record not found")
	}
	return nil
}
