// Package analysis maps every qualifier of a parsed SQL statement (table
// alias, CTE name, subquery alias, or bare column prefix) to its
// underlying source and the set of columns referenced through it.
package analysis

import (
	"errors"
	"fmt"
	"sort"

	"github.com/valkdb/sqlscope"
)

// ErrNilQuery is returned by Extract when the parsed query is absent.
var ErrNilQuery = errors.New("nil parsed query")

// ExtractSQL parses the first SQL statement in the input and extracts its
// qualifier map.
func ExtractSQL(sql string) (*Result, error) {
	return ExtractSQLWithOptions(sql, sqlscope.ParseOptions{})
}

// ExtractSQLWithOptions parses with explicit parser options and extracts
// the qualifier map.
func ExtractSQLWithOptions(sql string, opts sqlscope.ParseOptions) (*Result, error) {
	pq, err := sqlscope.ParseSQLWithOptions(sql, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SQL: %w", err)
	}
	return Extract(pq)
}

// Extract builds the qualifier map from a parsed query. The input is read
// only; each call produces a fresh Result.
//
// Qualifiers are registered in passes: CTE definitions first, then table
// references keyed by alias-or-name, then aliased subqueries, then
// qualified column references, which create unknown-source entries for
// qualifiers never declared. Re-registering a qualifier overwrites its
// source and resets its columns but keeps its position; column attribution
// afterwards is additive across all occurrences.
func Extract(pq *sqlscope.ParsedQuery) (*Result, error) {
	if pq == nil {
		return nil, ErrNilQuery
	}

	res := newResult()

	for _, cte := range pq.CTEs {
		res.register(cte.Name, SourceKindCTE, "")
	}
	for _, tbl := range pq.Tables {
		res.register(tbl.Qualifier(), SourceKindTable, tbl.Name)
	}
	for _, sub := range pq.Subqueries {
		res.register(sub.Alias, SourceKindSubquery, "")
	}
	for _, col := range pq.Columns {
		if col.Qualifier == "" {
			continue
		}
		entry, ok := res.Get(col.Qualifier)
		if !ok {
			entry = res.register(col.Qualifier, SourceKindUnknown, col.Qualifier)
		}
		entry.Columns = append(entry.Columns, col.Name)
	}

	normalize(res, pq.Columns)
	return res, nil
}

// normalize dedupes and sorts every entry's columns, then applies the
// whole-tree column fallback to the final insertion-order entry only, and
// only when that entry ended up empty. The fallback list keeps traversal
// order and duplicates. Consumers depend on this exact single-entry
// behavior; do not extend it to every empty entry.
func normalize(res *Result, all []sqlscope.ColumnRef) {
	for _, entry := range res.Entries() {
		entry.Columns = sortedUnique(entry.Columns)
	}

	last, ok := res.lastEntry()
	if !ok || len(last.Columns) > 0 {
		return
	}
	cols := make([]string, 0, len(all))
	for _, col := range all {
		cols = append(cols, col.AliasOrName())
	}
	last.Columns = cols
}

// sortedUnique returns the deduplicated, lexicographically sorted copy of
// names.
func sortedUnique(names []string) []string {
	if len(names) == 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
