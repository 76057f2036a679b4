package lapisdb

import (
	"database/sql"
	"strings"

	// Registered backend drivers.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Row is one result row keyed by column name. Byte slices are converted to
// strings so drivers that return []byte for text columns stay comparable.
type Row map[string]any

// Result is the outcome of one executed statement. Rows is populated for
// row-returning statements, AffectedRows/LastInsertID for the rest (when the
// driver reports them).
type Result struct {
	Rows         []Row
	AffectedRows int64
	LastInsertID int64
}

// Executor is the execute operation the builders hand finished SQL text to.
// Implementations own the connection; the builders never inspect it.
type Executor interface {
	Exec(sqlText string) (*Result, error)
}

// sqlBackend adapts a database/sql handle to the Executor contract. All
// literals are already inlined in the SQL text, so statements run without
// bind arguments.
type sqlBackend struct {
	db *sql.DB
}

func (b *sqlBackend) Exec(sqlText string) (*Result, error) {
	if returnsRows(sqlText) {
		rows, err := b.db.Query(sqlText)
		if err != nil {
			return nil, err
		}
		defer rows.Close()
		scanned, err := scanRows(rows)
		if err != nil {
			return nil, err
		}
		return &Result{Rows: scanned}, nil
	}
	res, err := b.db.Exec(sqlText)
	if err != nil {
		return nil, err
	}
	out := &Result{}
	// Not every driver reports these; lib/pq has no LastInsertId.
	if n, err := res.RowsAffected(); err == nil {
		out.AffectedRows = n
	}
	if id, err := res.LastInsertId(); err == nil {
		out.LastInsertID = id
	}
	return out, nil
}

// returnsRows decides whether sqlText goes through Query or Exec. The
// builders only append RETURNING at the statement tail, so a plain substring
// check is enough here.
func returnsRows(sqlText string) bool {
	upper := strings.ToUpper(strings.TrimSpace(sqlText))
	for _, prefix := range []string{"SELECT", "SHOW", "VALUES", "WITH", "PRAGMA", "EXPLAIN"} {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return strings.Contains(upper, " RETURNING ")
}

func scanRows(rows *sql.Rows) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var out []Row
	for rows.Next() {
		cells := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			if b, ok := cells[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = cells[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
