package ident

import "strings"

// TrimQuotes removes outer quote characters from identifier-like strings,
// accepting both ANSI double quotes and MySQL backticks.
func TrimQuotes(s string) string {
	return strings.Trim(s, "`\"")
}
