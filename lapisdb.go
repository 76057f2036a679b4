// Package lapisdb builds dialect-aware SQL text from structured values.
//
// Escaping is the security boundary: every literal and identifier that goes
// through the builders is quoted with embedded quotes doubled, and only an
// explicit Raw value bypasses that. The package also ships a small parser
// that splits a trailing clause string (where/group/having/order/limit/
// offset) into named pieces.
//
// Statements execute through a backend selected once at startup, either on
// an explicit DB value or on the package-level default configured with
// SetBackend.
package lapisdb

// The package-level API mirrors the DB methods on a single default instance.
// Programs that talk to one database configure it once at startup; everything
// else should construct DB values explicitly.
var defaultDB *DB

// SetBackend configures the package-level default instance with the named
// backend ("postgres", "mysql", "sqlite3") and its dialect.
func SetBackend(backend string, dsn string) error {
	db, err := Open(backend, dsn)
	if err != nil {
		return err
	}
	defaultDB = db
	return nil
}

// UseDB installs db as the package-level default instance.
func UseDB(db *DB) {
	defaultDB = db
}

// SetLogger installs the SQL sink on the default instance.
func SetLogger(l Logger) error {
	db, err := defaultConn()
	if err != nil {
		return err
	}
	db.SetLogger(l)
	return nil
}

func defaultConn() (*DB, error) {
	if defaultDB == nil {
		return nil, configErrorf("no backend selected, call SetBackend first")
	}
	return defaultDB, nil
}

func Query(q string, args ...any) (*Result, error) {
	db, err := defaultConn()
	if err != nil {
		return nil, err
	}
	return db.Query(q, args...)
}

func Select(fragment string, args ...any) (*Result, error) {
	db, err := defaultConn()
	if err != nil {
		return nil, err
	}
	return db.Select(fragment, args...)
}

func Insert(table string, vals Values, returning ...string) (*Result, error) {
	db, err := defaultConn()
	if err != nil {
		return nil, err
	}
	return db.Insert(table, vals, returning...)
}

func Update(table string, vals Values, cond any, args ...any) (*Result, error) {
	db, err := defaultConn()
	if err != nil {
		return nil, err
	}
	return db.Update(table, vals, cond, args...)
}

func Delete(table string, cond any, args ...any) (*Result, error) {
	db, err := defaultConn()
	if err != nil {
		return nil, err
	}
	return db.Delete(table, cond, args...)
}

func Truncate(tables ...string) (*Result, error) {
	db, err := defaultConn()
	if err != nil {
		return nil, err
	}
	return db.Truncate(tables...)
}

func TableExists(name string) (bool, error) {
	db, err := defaultConn()
	if err != nil {
		return false, err
	}
	return db.TableExists(name)
}
