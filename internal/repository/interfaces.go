package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image record lifecycle states. An external classifier moves records
// from pending to processed and writes the classifications field.
const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
)

// ImageRecord is one stored capture with its processing state.
type ImageRecord struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Timestamp       int64              `bson:"timestamp"`
	FormattedTime   string             `bson:"formatted_time"`
	ImageData       []byte             `bson:"image_data"`
	Status          string             `bson:"status"`
	Classifications []Classification   `bson:"classifications,omitempty"`
	ProcessedAt     int64              `bson:"processed_at,omitempty"`
	Definition      string             `bson:"definition,omitempty"`
}

// ImageRepository defines the data access operations over stored
// image records.
type ImageRepository interface {
	// Insert stores a new record and returns its assigned id.
	Insert(ctx context.Context, record *ImageRecord) (string, error)

	// FindByID retrieves a single record by its hex id.
	FindByID(ctx context.Context, id string) (*ImageRecord, error)

	// FindByStatus retrieves all records in the given status, newest
	// first by processing time.
	FindByStatus(ctx context.Context, status string) ([]ImageRecord, error)

	// CountByStatus counts records in the given status.
	CountByStatus(ctx context.Context, status string) (int64, error)

	// SetDefinition updates the definition field of one record.
	SetDefinition(ctx context.Context, id primitive.ObjectID, definition string) error
}
