package config

import (
	"Fitness-Coach-API/internal/logger"
	"Fitness-Coach-API/internal/utils"
	"Fitness-Coach-API/pkg/store"
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"

	connectTimeout = 5 * time.Second
)

var ErrDatabaseNotConfigured = errors.New("DATABASE_URL and DATABASE_NAME must both be set")

// ConnectDB opens the mongo client. An unreachable server is logged but not
// fatal: the driver keeps retrying server selection per operation.
func ConnectDB(ctx context.Context) (*mongo.Database, error) {
	uri := utils.GetConfig("DATABASE_URL")
	name := utils.GetConfig("DATABASE_NAME")
	if uri == "" || name == "" {
		return nil, ErrDatabaseNotConfigured
	}

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(connectTimeout))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Warn("database ping failed", zap.String("database", name), zap.Error(err))
	}

	return client.Database(name), nil
}

func DisconnectDB(ctx context.Context, db *mongo.Database) {
	if db == nil {
		return
	}
	if err := db.Client().Disconnect(ctx); err != nil {
		logger.Warn("database disconnect failed", zap.Error(err))
	}
}

// NewDocumentStore selects the store named by DATABASE_DRIVER. When mongo
// cannot be set up the returned store is unavailable rather than nil, and
// the returned database is nil.
func NewDocumentStore(ctx context.Context, validate *validator.Validate) (store.DocumentStore, *mongo.Database) {
	if utils.GetConfig("DATABASE_DRIVER") == DriverMemory {
		logger.Info("using in-memory document store")
		return store.NewMemoryStore(validate), nil
	}

	db, err := ConnectDB(ctx)
	if err != nil {
		logger.Error("database connection failed", zap.Error(err))
		return store.NewMongoStore(nil, validate), nil
	}
	logger.Info("database connected", zap.String("database", db.Name()))
	return store.NewMongoStore(db, validate), db
}
