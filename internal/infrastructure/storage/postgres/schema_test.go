package postgres

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// migrationsDir - каталог миграций в корне модуля
const migrationsDir = "../../../../migrations"

func readMigrations(t *testing.T) string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.up.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	var sb strings.Builder
	for _, f := range files {
		b, err := os.ReadFile(f)
		require.NoError(t, err)
		sb.Write(b)
		sb.WriteString("\n")
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func TestMigrations_Constraints(t *testing.T) {
	schema := readMigrations(t)

	for _, want := range []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_key ON users (lower(email))",
		"CREATE UNIQUE INDEX IF NOT EXISTS energetics_type_description_key ON energetics (type, description)",
		"collection_id UUID NOT NULL REFERENCES collections (id) ON DELETE CASCADE",
		"user_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE",
	} {
		assert.Contains(t, schema, want)
	}
}
