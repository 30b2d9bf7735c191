package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBaseTablesFiltersByKind verifies BaseTables returns only
// physical-table entries, in first-registration order.
func TestBaseTablesFiltersByKind(t *testing.T) {
	sql := `
WITH recent AS (SELECT id FROM events)
SELECT d.id, x.ref
FROM (SELECT id FROM orders) d
JOIN archives a ON d.id = a.ref_id
WHERE a.state = x.state;`
	res, err := ExtractSQL(sql)
	require.NoError(t, err, "extraction failed")

	base := BaseTables(res)
	var names []string
	for _, entry := range base {
		names = append(names, entry.Qualifier)
	}
	assert.Equal(t, []string{"events", "orders", "a"}, names, "unexpected base tables")
}

// TestUnknownQualifiersFinds undeclared column prefixes.
func TestUnknownQualifiers(t *testing.T) {
	sql := "SELECT t.a FROM t1 t WHERE t.b = ghost.c;"
	res, err := ExtractSQL(sql)
	require.NoError(t, err, "extraction failed")

	unknown := UnknownQualifiers(res)
	require.Len(t, unknown, 1, "expected one unknown qualifier")
	assert.Equal(t, "ghost", unknown[0].Qualifier, "unexpected unknown qualifier")
	assert.Equal(t, []string{"c"}, unknown[0].Columns, "unexpected columns")
}

// TestEntriesOfKindNilResult tolerates nil input.
func TestEntriesOfKindNilResult(t *testing.T) {
	assert.Nil(t, EntriesOfKind(nil, SourceKindTable), "nil result should yield nil")
}

// TestEntryHasColumn exercises the column membership helper.
func TestEntryHasColumn(t *testing.T) {
	res, err := ExtractSQL("SELECT a.x, a.y FROM t1 a;")
	require.NoError(t, err, "extraction failed")

	entry, ok := res.Get("a")
	require.True(t, ok, "missing entry")
	assert.True(t, entry.HasColumn("x"), "expected column x")
	assert.True(t, entry.HasColumn("y"), "expected column y")
	assert.False(t, entry.HasColumn("z"), "did not expect column z")
}
