// result.go defines the qualifier map produced by Extract and its
// serializable record form.
package analysis

import "encoding/json"

// SourceKind classifies what a qualifier refers to.
type SourceKind string

const (
	// SourceKindCTE marks a qualifier declared as a common table
	// expression.
	SourceKindCTE SourceKind = "cte"
	// SourceKindTable marks a qualifier backed by a physical table.
	SourceKindTable SourceKind = "table"
	// SourceKindSubquery marks a qualifier declared as a derived-table
	// alias.
	SourceKindSubquery SourceKind = "subquery"
	// SourceKindUnknown marks a qualifier seen only as a column prefix,
	// never declared as a table, CTE, or subquery alias.
	SourceKindUnknown SourceKind = "unknown"
)

// Entry holds the source classification and referenced columns for one
// qualifier.
type Entry struct {
	Qualifier string
	Kind      SourceKind
	// SourceName is the underlying table name for SourceKindTable and the
	// qualifier itself for SourceKindUnknown; empty otherwise.
	SourceName string
	Columns    []string
}

// HasColumn reports whether name appears in the entry's column collection.
func (e *Entry) HasColumn(name string) bool {
	for _, col := range e.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Result maps each qualifier of one statement to its Entry, preserving
// first-registration order. Re-registering a qualifier keeps its original
// position, so "last entry" means the final position in that order, the
// sole target of the column fallback in Extract.
type Result struct {
	order   []string
	entries map[string]*Entry
}

func newResult() *Result {
	return &Result{entries: make(map[string]*Entry)}
}

// register creates or overwrites the entry for qualifier, resetting its
// columns. Ordering position is assigned on first registration only.
func (r *Result) register(qualifier string, kind SourceKind, sourceName string) *Entry {
	entry := r.entries[qualifier]
	if entry == nil {
		entry = &Entry{Qualifier: qualifier}
		r.entries[qualifier] = entry
		r.order = append(r.order, qualifier)
	}
	entry.Kind = kind
	entry.SourceName = sourceName
	entry.Columns = nil
	return entry
}

// lastEntry returns the entry in the final insertion-order position.
func (r *Result) lastEntry() (*Entry, bool) {
	if len(r.order) == 0 {
		return nil, false
	}
	return r.entries[r.order[len(r.order)-1]], true
}

// Len returns the number of qualifiers.
func (r *Result) Len() int {
	return len(r.order)
}

// Qualifiers returns the qualifier names in first-registration order.
func (r *Result) Qualifiers() []string {
	return append([]string(nil), r.order...)
}

// Get returns the entry for qualifier.
func (r *Result) Get(qualifier string) (*Entry, bool) {
	entry, ok := r.entries[qualifier]
	return entry, ok
}

// Entries returns all entries in first-registration order.
func (r *Result) Entries() []*Entry {
	out := make([]*Entry, 0, len(r.order))
	for _, q := range r.order {
		out = append(out, r.entries[q])
	}
	return out
}

// Record is the serializable form of one entry.
type Record struct {
	Qualifier  string     `json:"qualifier"`
	SourceKind SourceKind `json:"sourceKind"`
	SourceName string     `json:"sourceName,omitempty"`
	Columns    []string   `json:"columns"`
}

// Records returns the entries as serializable records in
// first-registration order. Columns are never nil so empty collections
// serialize as [].
func (r *Result) Records() []Record {
	out := make([]Record, 0, len(r.order))
	for _, q := range r.order {
		entry := r.entries[q]
		cols := make([]string, len(entry.Columns))
		copy(cols, entry.Columns)
		out = append(out, Record{
			Qualifier:  entry.Qualifier,
			SourceKind: entry.Kind,
			SourceName: entry.SourceName,
			Columns:    cols,
		})
	}
	return out
}

// MarshalJSON emits the ordered record list.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Records())
}
