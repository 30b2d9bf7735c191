// collect.go materializes the ParsedQuery node slices from the parsed AST
// in a single pre-order walk.
package sqlscope

import (
	"vitess.io/vitess/go/vt/sqlparser"
)

// isImplicitDual reports whether the table expression is the dual
// placeholder the parser synthesizes for table-less selects. An unaliased,
// schema-less dual carries no table reference the input declared.
func isImplicitDual(name sqlparser.TableName, as sqlparser.IdentifierCS) bool {
	return name.Name.String() == "dual" && name.Qualifier.IsEmpty() && as.IsEmpty()
}

// collectNodes walks the statement once and fills the four IR slices in
// traversal order. Table references come only from table-expression
// positions: the walk also visits column qualifiers as TableName nodes,
// which must not register as tables.
func collectNodes(res *ParsedQuery, stmt sqlparser.Statement) {
	// Output aliases live on the AliasedExpr parent; the walk reaches the
	// parent before its ColName child.
	outputAliases := make(map[*sqlparser.ColName]string)

	_ = sqlparser.Walk(func(node sqlparser.SQLNode) (bool, error) {
		switch n := node.(type) {
		case *sqlparser.With:
			for _, cte := range n.CTEs {
				res.CTEs = append(res.CTEs, CTERef{
					Name:      cte.ID.String(),
					Recursive: n.Recursive,
				})
			}

		case *sqlparser.AliasedTableExpr:
			switch expr := n.Expr.(type) {
			case sqlparser.TableName:
				if isImplicitDual(expr, n.As) {
					break
				}
				res.Tables = append(res.Tables, TableRef{
					Schema: expr.Qualifier.String(),
					Name:   expr.Name.String(),
					Alias:  n.As.String(),
					Raw:    sqlparser.String(n),
				})
			case *sqlparser.DerivedTable:
				if !n.As.IsEmpty() {
					res.Subqueries = append(res.Subqueries, SubqueryRef{
						Alias:  n.As.String(),
						RawSQL: sqlparser.String(expr.Select),
					})
				}
			}

		case *sqlparser.AliasedExpr:
			if col, ok := n.Expr.(*sqlparser.ColName); ok && !n.As.IsEmpty() {
				outputAliases[col] = n.As.String()
			}

		case *sqlparser.ColName:
			ref := ColumnRef{
				Name:        n.Name.String(),
				OutputAlias: outputAliases[n],
			}
			if !n.Qualifier.IsEmpty() {
				ref.Qualifier = n.Qualifier.Name.String()
			}
			res.Columns = append(res.Columns, ref)
		}
		return true, nil
	}, stmt)
}
