package util

import "strings"

// QuoteLiteral escapes a string for use as a DuckDB SQL literal,
// doubling any single quotes.
func QuoteLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// QuoteIdent wraps an identifier in double quotes, doubling any
// embedded double quotes.
func QuoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
