// helpers.go provides small accessors over extraction results.
package analysis

// EntriesOfKind returns the entries of the given source kind in
// first-registration order.
func EntriesOfKind(res *Result, kind SourceKind) []*Entry {
	if res == nil {
		return nil
	}
	var out []*Entry
	for _, entry := range res.Entries() {
		if entry.Kind == kind {
			out = append(out, entry)
		}
	}
	return out
}

// BaseTables returns the entries backed by physical tables.
func BaseTables(res *Result) []*Entry {
	return EntriesOfKind(res, SourceKindTable)
}

// UnknownQualifiers returns the entries whose qualifier was never declared
// as a table, CTE, or subquery alias.
func UnknownQualifiers(res *Result) []*Entry {
	return EntriesOfKind(res, SourceKindUnknown)
}
