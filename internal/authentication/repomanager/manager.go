// Package repomanager opens the credential store named by a DSN and vends
// its repositories.
package repomanager

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/authslice/internal/authentication/users"
	"github.com/dmitrijs2005/authslice/internal/logging"
)

// Store names, also used as health indicator keys.
const (
	StoreMongo    = "mongodb"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type RepositoryManager interface {
	// Name is one of StoreMongo, StorePostgres or StoreMemory.
	Name() string
	Users() users.Repository
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// StoreName returns the store selected by the DSN scheme.
func StoreName(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse dsn: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "mongodb", "mongodb+srv":
		return StoreMongo, nil
	case "postgres", "postgresql":
		return StorePostgres, nil
	case "memory":
		return StoreMemory, nil
	default:
		return "", fmt.Errorf("unsupported dsn scheme %q", u.Scheme)
	}
}

// New connects to the store named by dsn and prepares its schema.
func New(ctx context.Context, dsn string, l logging.Logger) (RepositoryManager, error) {
	name, err := StoreName(dsn)
	if err != nil {
		return nil, err
	}

	l = l.With("module", "repomanager", "store", name)

	switch name {
	case StoreMongo:
		return NewMongoRepositoryManager(ctx, dsn, l)
	case StorePostgres:
		return NewPostgresRepositoryManager(ctx, dsn, l)
	default:
		l.Warn(ctx, "using in-memory store, data is lost on restart")
		return NewInMemoryRepositoryManager(), nil
	}
}
