package lapisdb

import (
	"database/sql"
	"fmt"

	"github.com/jedib0t/go-pretty/table"
	"github.com/valyala/bytebufferpool"
)

// DB pairs one execute operation with one dialect. It is immutable after
// construction apart from the optional logger, so a single DB is safe for
// concurrent use; tests and multi-database programs simply construct several.
type DB struct {
	backend Executor
	dialect *Dialect
	logger  Logger
}

// Open selects one of the named backends ("postgres", "mysql", "sqlite3")
// together with its dialect and connects through database/sql.
func Open(backend string, dsn string) (*DB, error) {
	dialect, err := getDialect(backend)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(dialect.DriverName, dsn)
	if err != nil {
		return nil, configErrorf("open %s backend: %s", backend, err)
	}
	return NewDB(db, dialect), nil
}

// NewDB wraps an existing database/sql handle. Tests pass a sqlmock handle
// here.
func NewDB(db *sql.DB, dialect *Dialect) *DB {
	return &DB{backend: &sqlBackend{db: db}, dialect: dialect}
}

// FromExecutor builds a DB on any Executor implementation.
func FromExecutor(e Executor, dialect *Dialect) *DB {
	return &DB{backend: e, dialect: dialect}
}

// SetLogger installs a sink that receives every outgoing SQL text before
// execution. Call it during setup, before the DB is shared.
func (d *DB) SetLogger(l Logger) {
	d.logger = l
}

func (d *DB) Dialect() *Dialect {
	return d.dialect
}

// exec is the single funnel to the backend. Failures come back wrapped in a
// BackendError carrying the SQL text; nothing is retried.
func (d *DB) exec(sqlText string) (*Result, error) {
	if d.logger != nil {
		d.logger.Debugf("%s", sqlText)
	}
	res, err := d.backend.Exec(sqlText)
	if err != nil {
		return nil, &BackendError{SQL: sqlText, Err: err}
	}
	return res, nil
}

// Query interpolates args into q and executes the result.
func (d *DB) Query(q string, args ...any) (*Result, error) {
	sqlText, err := Interpolate(q, args...)
	if err != nil {
		return nil, err
	}
	return d.exec(sqlText)
}

// Select executes "SELECT " + fragment with args interpolated.
func (d *DB) Select(fragment string, args ...any) (*Result, error) {
	return d.Query("SELECT "+fragment, args...)
}

// Insert builds and executes an INSERT INTO statement from vals. With
// returning columns it appends a RETURNING list, which fails with an
// UnsupportedFeatureError on dialects that lack it.
func (d *DB) Insert(table string, vals Values, returning ...string) (*Result, error) {
	vals = applyTimestamps(vals, true)
	id, err := EscapeIdentifier(table)
	if err != nil {
		return nil, err
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	buf.WriteString("INSERT INTO ")
	buf.WriteString(id)
	buf.WriteByte(' ')
	if err := appendValues(buf, vals); err != nil {
		return nil, err
	}
	if len(returning) > 0 {
		if !d.dialect.SupportsReturning {
			return nil, &UnsupportedFeatureError{Feature: "RETURNING", Dialect: d.dialect.Name}
		}
		buf.WriteString(" RETURNING ")
		if err := appendIdentifiers(buf, returning); err != nil {
			return nil, err
		}
	}
	return d.exec(buf.String())
}

// Update builds and executes an UPDATE statement. cond may be nil (no
// WHERE), a Conditions map, a template string interpolated with args, or a
// RawValue.
func (d *DB) Update(table string, vals Values, cond any, args ...any) (*Result, error) {
	vals = applyTimestamps(vals, false)
	id, err := EscapeIdentifier(table)
	if err != nil {
		return nil, err
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	buf.WriteString("UPDATE ")
	buf.WriteString(id)
	buf.WriteString(" SET ")
	if err := appendAssigns(buf, vals); err != nil {
		return nil, err
	}
	if err := appendWhere(buf, cond, args); err != nil {
		return nil, err
	}
	return d.exec(buf.String())
}

// Delete builds and executes a DELETE FROM statement; cond works as in
// Update.
func (d *DB) Delete(table string, cond any, args ...any) (*Result, error) {
	id, err := EscapeIdentifier(table)
	if err != nil {
		return nil, err
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	buf.WriteString("DELETE FROM ")
	buf.WriteString(id)
	if err := appendWhere(buf, cond, args); err != nil {
		return nil, err
	}
	return d.exec(buf.String())
}

// Truncate builds and executes a TRUNCATE statement over the given tables,
// followed by the dialect's identity-restart suffix when it has one.
func (d *DB) Truncate(tables ...string) (*Result, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	buf.WriteString("TRUNCATE ")
	if err := appendIdentifiers(buf, tables); err != nil {
		return nil, err
	}
	if suffix := d.dialect.TruncateIdentityRestart; suffix != "" {
		buf.WriteByte(' ')
		buf.WriteString(suffix)
	}
	return d.exec(buf.String())
}

// TableExists runs the dialect's probe query for the given table name.
func (d *DB) TableExists(name string) (bool, error) {
	q, err := Interpolate(d.dialect.TableExistsQuery, name)
	if err != nil {
		return false, err
	}
	res, err := d.exec(q)
	if err != nil {
		return false, err
	}
	return len(res.Rows) > 0, nil
}

// Schematic prints the active dialect and its capability flags.
func (d *DB) Schematic() {
	fmt.Printf("SQL Dialect: %s\n", d.dialect.Name)
	w := table.NewWriter()
	w.AppendHeader(table.Row{"Capability", "Value"})
	w.AppendRow(table.Row{"DROP INDEX IF EXISTS", d.dialect.SupportsDropIndexIfExists})
	w.AppendRow(table.Row{"Time zone", d.dialect.SupportsTimeZone})
	w.AppendRow(table.Row{"Partial index", d.dialect.SupportsPartialIndex})
	w.AppendRow(table.Row{"Rename column", d.dialect.SupportsRenameColumn})
	w.AppendRow(table.Row{"RETURNING", d.dialect.SupportsReturning})
	w.AppendRow(table.Row{"TRUNCATE suffix", d.dialect.TruncateIdentityRestart})
	fmt.Println(w.Render())
}

func appendIdentifiers(buf *bytebufferpool.ByteBuffer, names []string) error {
	for i, name := range names {
		if i > 0 {
			buf.WriteString(", ")
		}
		id, err := EscapeIdentifier(name)
		if err != nil {
			return err
		}
		buf.WriteString(id)
	}
	return nil
}

// appendWhere resolves the optional condition argument of Update and Delete
// by its runtime shape.
func appendWhere(buf *bytebufferpool.ByteBuffer, cond any, args []any) error {
	switch c := cond.(type) {
	case nil:
		return nil
	case Conditions:
		buf.WriteString(" WHERE ")
		return appendClause(buf, c)
	case map[string]any:
		buf.WriteString(" WHERE ")
		return appendClause(buf, c)
	case string:
		s, err := Interpolate(c, args...)
		if err != nil {
			return err
		}
		buf.WriteString(" WHERE ")
		buf.WriteString(s)
		return nil
	case RawValue:
		buf.WriteString(" WHERE ")
		buf.WriteString(c.sql)
		return nil
	default:
		return escapeErrorf("unsupported condition of type %T (%v)", cond, cond)
	}
}
