package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type memoryStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.Raw
	validate    *validator.Validate
	now         func() time.Time
}

// NewMemoryStore returns a process-local DocumentStore. Documents are kept
// in their BSON form so reads decode exactly like the mongo store.
func NewMemoryStore(validate *validator.Validate) DocumentStore {
	return &memoryStore{
		collections: make(map[string][]bson.Raw),
		validate:    validate,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *memoryStore) Available() bool {
	return true
}

func (s *memoryStore) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &StorageError{Op: "insert", Collection: collection, Err: err}
	}
	if err := validateRecord(s.validate, record); err != nil {
		return "", &StorageError{Op: "validate", Collection: collection, Err: err}
	}
	doc, err := toDocument(record, s.now())
	if err != nil {
		return "", &StorageError{Op: "insert", Collection: collection, Err: err}
	}

	id := uuid.NewString()
	doc["_id"] = id

	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", &StorageError{Op: "insert", Collection: collection, Err: err}
	}

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], raw)
	s.mu.Unlock()

	return id, nil
}

func (s *memoryStore) GetDocuments(ctx context.Context, collection string, filter map[string]any) ([]bson.Raw, error) {
	if err := ctx.Err(); err != nil {
		return nil, &StorageError{Op: "find", Collection: collection, Err: err}
	}

	want := make(map[string]bson.RawValue, len(filter))
	for k, v := range filter {
		t, data, err := bson.MarshalValue(v)
		if err != nil {
			return nil, &StorageError{Op: "find", Collection: collection, Err: err}
		}
		want[k] = bson.RawValue{Type: t, Value: data}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]bson.Raw, 0)
	for _, doc := range s.collections[collection] {
		if matches(doc, want) {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (s *memoryStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, &StorageError{Op: "list collections", Err: err}
	}

	s.mu.RLock()
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	s.mu.RUnlock()

	sort.Strings(names)
	return names, nil
}

// matches reports whether every filter key is present in doc with an equal
// BSON value. Dotted keys address embedded documents. Values compare by BSON
// type and bytes, so a double filter never matches a stored int32 or int64
// the way mongo's numeric comparison would.
func matches(doc bson.Raw, want map[string]bson.RawValue) bool {
	for key, value := range want {
		got, err := doc.LookupErr(strings.Split(key, ".")...)
		if err != nil || !got.Equal(value) {
			return false
		}
	}
	return true
}
