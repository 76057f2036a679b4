package lapisdb

import "github.com/valyala/bytebufferpool"

// EncodeValues renders vals as a "(cols) VALUES (vals)" fragment for an
// INSERT statement. Columns are emitted in sorted key order; an empty map
// produces "() VALUES ()".
func EncodeValues(vals Values) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := appendValues(buf, vals); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// EncodeAssigns renders vals as a comma-joined "col = val" list for an
// UPDATE statement, in sorted key order.
func EncodeAssigns(vals Values) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := appendAssigns(buf, vals); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// EncodeClause renders conds as an AND-joined condition list, in sorted key
// order. Null and nil values emit "col IS NULL", everything else
// "col = literal".
func EncodeClause(conds Conditions) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := appendClause(buf, conds); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// The append variants below are what the statement builders compose with;
// the Encode* forms above just wrap them with a pooled buffer.

func appendValues(buf *bytebufferpool.ByteBuffer, vals Values) error {
	keys := sortedKeys(vals)
	buf.WriteByte('(')
	for i, k := range keys {
		if i > 0 {
			buf.WriteString(", ")
		}
		id, err := EscapeIdentifier(k)
		if err != nil {
			return err
		}
		buf.WriteString(id)
	}
	buf.WriteString(") VALUES (")
	for i, k := range keys {
		if i > 0 {
			buf.WriteString(", ")
		}
		lit, err := EscapeLiteral(vals[k])
		if err != nil {
			return err
		}
		buf.WriteString(lit)
	}
	buf.WriteByte(')')
	return nil
}

func appendAssigns(buf *bytebufferpool.ByteBuffer, vals Values) error {
	for i, k := range sortedKeys(vals) {
		if i > 0 {
			buf.WriteString(", ")
		}
		id, err := EscapeIdentifier(k)
		if err != nil {
			return err
		}
		lit, err := EscapeLiteral(vals[k])
		if err != nil {
			return err
		}
		buf.WriteString(id)
		buf.WriteString(" = ")
		buf.WriteString(lit)
	}
	return nil
}

func appendClause(buf *bytebufferpool.ByteBuffer, conds Conditions) error {
	for i, k := range sortedKeys(conds) {
		if i > 0 {
			buf.WriteString(" AND ")
		}
		id, err := EscapeIdentifier(k)
		if err != nil {
			return err
		}
		buf.WriteString(id)
		if isNull(conds[k]) {
			buf.WriteString(" IS NULL")
			continue
		}
		lit, err := EscapeLiteral(conds[k])
		if err != nil {
			return err
		}
		buf.WriteString(" = ")
		buf.WriteString(lit)
	}
	return nil
}
