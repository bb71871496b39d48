package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authslice/internal/authentication/users"
	"github.com/dmitrijs2005/authslice/internal/logging"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// DefaultDatabaseName is used when the Mongo DSN names no database.
const DefaultDatabaseName = "authentication"

type MongoRepositoryManager struct {
	client *mongo.Client
	users  *users.MongoRepository
}

func (m *MongoRepositoryManager) Name() string {
	return StoreMongo
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MongoRepositoryManager) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// databaseName extracts the database from a Mongo connection string.
func databaseName(dsn string) (string, error) {
	cs, err := connstring.ParseAndValidate(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mongo dsn: %w", err)
	}
	if cs.Database == "" {
		return DefaultDatabaseName, nil
	}
	return cs.Database, nil
}

// NewMongoRepositoryManager connects to Mongo, verifies the connection and
// creates the unique email index.
func NewMongoRepositoryManager(ctx context.Context, dsn string, l logging.Logger) (*MongoRepositoryManager, error) {
	dbName, err := databaseName(dsn)
	if err != nil {
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(dsn))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping error: %w", err)
	}

	repo := users.NewMongoRepository(client.Database(dbName).Collection(users.CollectionName))
	if err := repo.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	l.Info(ctx, "connected to mongo", "database", dbName)

	return &MongoRepositoryManager{client: client, users: repo}, nil
}
