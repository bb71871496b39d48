package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/authslice/internal/authentication/migrations"
	"github.com/dmitrijs2005/authslice/internal/logging"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreName(t *testing.T) {
	tests := []struct {
		dsn     string
		want    string
		wantErr bool
	}{
		{"mongodb://localhost:27017/authentication", StoreMongo, false},
		{"mongodb+srv://cluster.example.net/auth", StoreMongo, false},
		{"postgres://u:p@localhost:5432/auth?sslmode=disable", StorePostgres, false},
		{"postgresql://localhost/auth", StorePostgres, false},
		{"memory://", StoreMemory, false},
		{"redis://localhost:6379", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			got, err := StoreName(tt.dsn)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_Memory(t *testing.T) {
	m, err := New(context.Background(), "memory://", logging.Nop{})
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, m.Name())
	assert.NotNil(t, m.Users())
	assert.NoError(t, m.Ping(context.Background()))
	assert.NoError(t, m.Close(context.Background()))
}

func TestNew_UnsupportedScheme(t *testing.T) {
	_, err := New(context.Background(), "redis://localhost", logging.Nop{})
	assert.Error(t, err)
}

func TestDatabaseName(t *testing.T) {
	name, err := databaseName("mongodb://localhost:27017/users_db")
	require.NoError(t, err)
	assert.Equal(t, "users_db", name)

	name, err = databaseName("mongodb://localhost:27017")
	require.NoError(t, err)
	assert.Equal(t, DefaultDatabaseName, name)
}

func TestRunMigrations(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}

	m := newPostgresRepositoryManager(db)
	require.NoError(t, m.RunMigrations(context.Background()))
	assert.Equal(t, ".", gotDir)

	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	assert.EqualError(t, m.RunMigrations(context.Background()), "boom")
}

func TestPostgresManager_PingAndClose(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(errors.New("down"))
	mock.ExpectClose()

	m := newPostgresRepositoryManager(db)
	assert.Equal(t, StorePostgres, m.Name())
	assert.NoError(t, m.Ping(context.Background()))
	assert.Error(t, m.Ping(context.Background()))
	assert.NoError(t, m.Close(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(migrations.Migrations, "*.sql")
	require.NoError(t, err)
	assert.Contains(t, files, "00001_create_users.sql")
}
