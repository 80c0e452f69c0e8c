package database

import (
	"context"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_SortedSQLOnly(t *testing.T) {
	fsys := fstest.MapFS{
		"002_create_planets.sql": {Data: []byte("CREATE TABLE planets ();")},
		"001_create_systems.sql": {Data: []byte("CREATE TABLE systems ();")},
		"README.md":              {Data: []byte("notes")},
		"old/000_legacy.sql":     {Data: []byte("SELECT 1;")},
	}

	files, err := migrationFiles(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_systems.sql", "002_create_planets.sql"}, files)
}

func TestMigrationFiles_RepositoryMigrations(t *testing.T) {
	files, err := migrationFiles(os.DirFS("../../../migrations"))
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_systems.sql", "002_create_planets.sql"}, files)
}

func TestHealth_NilDB(t *testing.T) {
	var db *DB
	assert.Error(t, db.Health(context.Background()))
}
