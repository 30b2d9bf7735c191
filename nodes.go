// nodes.go defines the syntax-tree IR materialized by the ParseSQL entry
// points: the four node kinds the analysis layer consumes.
package sqlscope

// CTERef is one common-table-expression definition from a WITH clause.
type CTERef struct {
	// Name is the identifier declared after WITH, as emitted by the parser.
	Name string
	// Recursive reports whether the enclosing WITH clause is recursive.
	Recursive bool
}

// TableRef is one table reference from a FROM, JOIN, or DML target
// position. A reference to a CTE name looks identical to a base table
// here; classification happens downstream and never resolves across query
// boundaries.
type TableRef struct {
	Schema string
	Name   string
	Alias  string
	// Raw is the parser's rendering of the full table expression,
	// including alias and quoting when required.
	Raw string
}

// Qualifier returns the effective qualifier for the reference: the alias
// when present, else the table name.
func (t TableRef) Qualifier() string {
	if t.Alias != "" {
		return t.Alias
	}
	return t.Name
}

// SubqueryRef is one aliased derived table. Unaliased subqueries (scalar
// and EXISTS forms) are not recorded; their inner tables and columns still
// appear in the other slices.
type SubqueryRef struct {
	Alias  string
	RawSQL string
}

// ColumnRef is one qualified or bare column reference.
type ColumnRef struct {
	// Qualifier is the table or alias prefix, empty for bare columns. For
	// fully qualified db.table.column references it is the table part.
	Qualifier string
	Name      string
	// OutputAlias is set when this reference is directly the expression of
	// an aliased select item, empty otherwise.
	OutputAlias string
}

// AliasOrName returns the output alias when present, else the bare name.
func (c ColumnRef) AliasOrName() string {
	if c.OutputAlias != "" {
		return c.OutputAlias
	}
	return c.Name
}

// ParsedQuery is the materialized syntax tree for one parsed statement.
// The slices hold nodes in pre-order traversal order. A ParsedQuery is not
// mutated after ParseSQL returns and is safe for concurrent reads.
type ParsedQuery struct {
	// RawSQL is the preprocessed statement text that was parsed.
	RawSQL string

	CTEs       []CTERef
	Tables     []TableRef
	Subqueries []SubqueryRef
	Columns    []ColumnRef
}
