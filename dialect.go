package lapisdb

// Dialect describes the syntax capabilities of one SQL server family. Every
// field is set explicitly on every built-in constant; there is no
// missing-means-false fallback.
type Dialect struct {
	Name                      string
	DriverName                string
	SupportsDropIndexIfExists bool
	SupportsTimeZone          bool
	SupportsPartialIndex      bool
	SupportsRenameColumn      bool
	SupportsReturning         bool
	// TruncateIdentityRestart is appended to TRUNCATE statements; empty when
	// the dialect has no identity-restart syntax.
	TruncateIdentityRestart string
	// TableExistsQuery is a probe with a single ? placeholder for the table
	// name.
	TableExistsQuery string
}

var Dialects = &struct {
	PostgreSQL *Dialect
	MySQL      *Dialect
	SQLite3    *Dialect
}{
	PostgreSQL: &Dialect{
		Name:                      "postgresql",
		DriverName:                "postgres",
		SupportsDropIndexIfExists: true,
		SupportsTimeZone:          true,
		SupportsPartialIndex:      true,
		SupportsRenameColumn:      true,
		SupportsReturning:         true,
		TruncateIdentityRestart:   "RESTART IDENTITY",
		TableExistsQuery:          "SELECT 1 FROM pg_class WHERE relname = ?",
	},
	MySQL: &Dialect{
		Name:                      "mysql",
		DriverName:                "mysql",
		SupportsDropIndexIfExists: false,
		SupportsTimeZone:          false,
		SupportsPartialIndex:      false,
		SupportsRenameColumn:      true,
		SupportsReturning:         false,
		TruncateIdentityRestart:   "",
		TableExistsQuery:          "SHOW TABLES LIKE ?",
	},
	SQLite3: &Dialect{
		Name:                      "sqlite3",
		DriverName:                "sqlite3",
		SupportsDropIndexIfExists: true,
		SupportsTimeZone:          false,
		SupportsPartialIndex:      true,
		SupportsRenameColumn:      true,
		SupportsReturning:         true,
		TruncateIdentityRestart:   "",
		TableExistsQuery:          "SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?",
	},
}

func getDialect(backend string) (*Dialect, error) {
	switch backend {
	case "postgres", "postgresql":
		return Dialects.PostgreSQL, nil
	case "mysql":
		return Dialects.MySQL, nil
	case "sqlite", "sqlite3":
		return Dialects.SQLite3, nil
	default:
		return nil, configErrorf("no dialect matched backend %q", backend)
	}
}
