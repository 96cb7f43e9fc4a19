package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrStoreUnavailable = errors.New("document store is not initialized")
	ErrInvalidRecord    = errors.New("invalid record")
)

type (
	// DocumentStore is the generic document access used by every repository.
	// Implementations must be safe for concurrent use.
	DocumentStore interface {
		// CreateDocument inserts record into collection and returns the new
		// document id in string form.
		CreateDocument(ctx context.Context, collection string, record any) (string, error)
		// GetDocuments returns the documents whose fields equal every value in
		// filter, in store order. No match yields an empty slice.
		GetDocuments(ctx context.Context, collection string, filter map[string]any) ([]bson.Raw, error)
		ListCollectionNames(ctx context.Context) ([]string, error)
		Available() bool
	}

	StorageError struct {
		Op         string
		Collection string
		Err        error
	}
)

func (e *StorageError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("store %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s %q: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func validateRecord(v *validator.Validate, record any) error {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(record)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return ErrInvalidRecord
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	if err := v.Struct(record); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return nil
}

// toDocument converts record into its BSON form and stamps the audit fields.
func toDocument(record any, now time.Time) (bson.M, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	doc["created_at"] = now
	doc["updated_at"] = now
	return doc, nil
}
