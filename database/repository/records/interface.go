package recordsRepo

import (
	"context"

	"roomly/database"
	"roomly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRecordRepository is the audit log of committed bookings.
type BookingRecordRepository interface {
	Create(ctx context.Context, record models.BookingRecord) (string, error)
	GetByUserID(ctx context.Context, userID string) ([]models.BookingRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoRecordRepo returns a new BookingRecordRepository instance using MongoDB.
func NewMongoRecordRepo() BookingRecordRepository {
	db := database.MongoClient.Database("roomly")
	return &mongoRecordRepo{
		coll: db.Collection("booking_records"),
	}
}
