// preprocess.go normalizes raw SQL input before parsing. The underlying
// parser speaks the MySQL dialect, so ANSI double-quoted identifiers are
// rewritten to backtick quoting; single-quoted string literals pass
// through untouched.
package sqlscope

import (
	"strings"

	"github.com/valkdb/sqlscope/internal/ident"
)

// preprocessSQLInput trims surrounding whitespace and, only when a double
// quote is present, rewrites ANSI-quoted identifiers. The cheap precheck
// keeps the common path allocation-free.
func preprocessSQLInput(sql string) string {
	trimmed := strings.TrimSpace(sql)
	if !strings.Contains(trimmed, `"`) {
		return trimmed
	}
	return rewriteANSIQuotes(trimmed)
}

// rewriteANSIQuotes scans the input once. Single-quoted literals are
// copied verbatim; a double-quoted run is re-emitted as a backtick
// identifier with inner "" escapes collapsed.
func rewriteANSIQuotes(sql string) string {
	var b strings.Builder
	b.Grow(len(sql))
	for i := 0; i < len(sql); i++ {
		switch sql[i] {
		case '\'':
			end := scanSingleQuoted(sql, i)
			b.WriteString(sql[i:end])
			i = end - 1
		case '"':
			end := scanDoubleQuoted(sql, i)
			inner := ident.TrimQuotes(sql[i:end])
			b.WriteByte('`')
			b.WriteString(strings.ReplaceAll(inner, `""`, `"`))
			b.WriteByte('`')
			i = end - 1
		default:
			b.WriteByte(sql[i])
		}
	}
	return b.String()
}

// scanSingleQuoted returns the index just past the single-quoted literal
// starting at i, honoring backslash and '' escapes.
func scanSingleQuoted(sql string, i int) int {
	j := i + 1
	for j < len(sql) {
		switch sql[j] {
		case '\\':
			j += 2
			continue
		case '\'':
			if j+1 < len(sql) && sql[j+1] == '\'' {
				j += 2
				continue
			}
			return j + 1
		}
		j++
	}
	return len(sql)
}

// scanDoubleQuoted returns the index just past the double-quoted
// identifier starting at i, honoring "" escapes.
func scanDoubleQuoted(sql string, i int) int {
	j := i + 1
	for j < len(sql) {
		if sql[j] == '"' {
			if j+1 < len(sql) && sql[j+1] == '"' {
				j += 2
				continue
			}
			return j + 1
		}
		j++
	}
	return len(sql)
}
