package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const imagesCollection = "images"

// MongoImageRepository implements ImageRepository over a MongoDB
// collection.
type MongoImageRepository struct {
	collection *mongo.Collection
}

// NewMongoImageRepository creates a repository bound to the images
// collection of the given database.
func NewMongoImageRepository(db *mongo.Database) ImageRepository {
	return &MongoImageRepository{
		collection: db.Collection(imagesCollection),
	}
}

// Insert stores a new record and returns its assigned hex id.
func (r *MongoImageRepository) Insert(ctx context.Context, record *ImageRecord) (string, error) {
	result, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("insert image: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert image: unexpected inserted id type %T", result.InsertedID)
	}
	return id.Hex(), nil
}

// FindByID retrieves a single record by its hex id.
func (r *MongoImageRepository) FindByID(ctx context.Context, id string) (*ImageRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidImageID
	}

	var record ImageRecord
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find image %s: %w", id, err)
	}
	return &record, nil
}

// FindByStatus retrieves all records in the given status, newest
// first by processing time.
func (r *MongoImageRepository) FindByStatus(ctx context.Context, status string) ([]ImageRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "processed_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, fmt.Errorf("find images by status %q: %w", status, err)
	}
	defer cursor.Close(ctx)

	var records []ImageRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode images by status %q: %w", status, err)
	}
	return records, nil
}

// CountByStatus counts records in the given status.
func (r *MongoImageRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("count images by status %q: %w", status, err)
	}
	return count, nil
}

// SetDefinition updates the definition field of one record.
func (r *MongoImageRepository) SetDefinition(ctx context.Context, id primitive.ObjectID, definition string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"definition": definition}},
	)
	if err != nil {
		return fmt.Errorf("set definition for %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return ErrImageNotFound
	}
	return nil
}
