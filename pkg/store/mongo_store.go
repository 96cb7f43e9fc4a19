package store

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoStore struct {
	db       *mongo.Database
	validate *validator.Validate
}

// NewMongoStore wraps db. A nil db is accepted: every operation then fails
// with ErrStoreUnavailable.
func NewMongoStore(db *mongo.Database, validate *validator.Validate) DocumentStore {
	return &mongoStore{
		db:       db,
		validate: validate,
	}
}

func (s *mongoStore) Available() bool {
	return s.db != nil
}

func (s *mongoStore) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	if s.db == nil {
		return "", &StorageError{Op: "insert", Collection: collection, Err: ErrStoreUnavailable}
	}
	if err := validateRecord(s.validate, record); err != nil {
		return "", &StorageError{Op: "validate", Collection: collection, Err: err}
	}
	doc, err := toDocument(record, time.Now().UTC())
	if err != nil {
		return "", &StorageError{Op: "insert", Collection: collection, Err: err}
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", &StorageError{Op: "insert", Collection: collection, Err: err}
	}

	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return fmt.Sprint(id), nil
	}
}

func (s *mongoStore) GetDocuments(ctx context.Context, collection string, filter map[string]any) ([]bson.Raw, error) {
	if s.db == nil {
		return nil, &StorageError{Op: "find", Collection: collection, Err: ErrStoreUnavailable}
	}

	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	cursor, err := s.db.Collection(collection).Find(ctx, query)
	if err != nil {
		return nil, &StorageError{Op: "find", Collection: collection, Err: err}
	}
	defer cursor.Close(ctx)

	docs := make([]bson.Raw, 0)
	for cursor.Next(ctx) {
		// cursor.Current is reused by the next call to Next
		doc := make(bson.Raw, len(cursor.Current))
		copy(doc, cursor.Current)
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, &StorageError{Op: "find", Collection: collection, Err: err}
	}
	return docs, nil
}

func (s *mongoStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, &StorageError{Op: "list collections", Err: ErrStoreUnavailable}
	}
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, &StorageError{Op: "list collections", Err: err}
	}
	return names, nil
}
