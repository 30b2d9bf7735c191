package sqlscope

// ParseOptions controls optional parser behavior.
type ParseOptions struct {
	// MySQLServerVersion selects the dialect compatibility version used by
	// the underlying parser; empty uses the parser default.
	MySQLServerVersion string
}
