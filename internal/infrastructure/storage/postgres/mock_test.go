package postgres

import (
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

// newMockDB - пул на pgxmock; запросы сверяются регулярным выражением
// после схлопывания пробелов.
func newMockDB(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mock
}

func sql(fragment string) string {
	return regexp.QuoteMeta(fragment)
}
