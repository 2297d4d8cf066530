package app

import (
	"net/url"
	"strings"
)

type dsnOptions struct {
	disablePreparedBinary bool
	applicationName       string
}

// buildDSN fills in driver parameters on URL-style DSNs. Key/value DSNs are
// returned untouched, as are parameters the operator already set.
func buildDSN(raw string, opts dsnOptions) string {
	raw = strings.TrimSpace(raw)
	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	changed := false
	setDefault := func(key, value string) {
		if value == "" || query.Has(key) {
			return
		}
		query.Set(key, value)
		changed = true
	}
	if opts.disablePreparedBinary {
		setDefault("disable_prepared_binary_result", "yes")
	}
	setDefault("application_name", opts.applicationName)

	if !changed {
		return raw
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// databaseName reads the database from either DSN form; "" when absent.
func databaseName(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if parsed, err := url.Parse(dsn); err == nil && parsed.Scheme != "" {
		return strings.Trim(parsed.Path, "/ ")
	}

	for _, field := range strings.Fields(dsn) {
		if name, ok := strings.CutPrefix(field, "dbname="); ok {
			return strings.Trim(name, `"'`)
		}
	}
	return ""
}
