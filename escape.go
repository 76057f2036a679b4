package lapisdb

import (
	"strconv"
	"strings"
	"time"

	"github.com/valyala/bytebufferpool"
)

// EscapeLiteral renders v as a SQL literal. Strings are single-quoted with
// embedded quotes doubled, numbers become decimal text, booleans become
// TRUE/FALSE, Null and nil become NULL, a time.Time becomes a quoted UTC
// timestamp, and a RawValue passes through untouched. Any other type fails
// with an EscapeError.
func EscapeLiteral(v any) (string, error) {
	switch t := v.(type) {
	case RawValue:
		return t.sql, nil
	case NullType, nil:
		return "NULL", nil
	case string:
		return "'" + strings.ReplaceAll(t, "'", "''") + "'", nil
	case bool:
		if t {
			return "TRUE", nil
		}
		return "FALSE", nil
	case int:
		return strconv.FormatInt(int64(t), 10), nil
	case int8:
		return strconv.FormatInt(int64(t), 10), nil
	case int16:
		return strconv.FormatInt(int64(t), 10), nil
	case int32:
		return strconv.FormatInt(int64(t), 10), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case time.Time:
		return "'" + FormatTimestamp(t) + "'", nil
	default:
		return "", escapeErrorf("cannot escape literal of type %T (%v)", v, v)
	}
}

// EscapeIdentifier renders id as a quoted column or table name. Strings are
// double-quoted with embedded double quotes doubled; a RawValue passes
// through untouched.
func EscapeIdentifier(id any) (string, error) {
	switch t := id.(type) {
	case RawValue:
		return t.sql, nil
	case string:
		return `"` + strings.ReplaceAll(t, `"`, `""`) + `"`, nil
	default:
		return "", escapeErrorf("cannot escape identifier of type %T (%v)", id, id)
	}
}

// Interpolate replaces every literal ? in tmpl with the escaped form of the
// corresponding argument, left to right. A placeholder with no matching
// argument fails with an EscapeError rather than silently emitting NULL.
func Interpolate(tmpl string, args ...any) (string, error) {
	if !strings.ContainsRune(tmpl, '?') {
		return tmpl, nil
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	next := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '?' {
			buf.WriteByte(tmpl[i])
			continue
		}
		if next >= len(args) {
			return "", escapeErrorf("no argument for placeholder %d in %q", next+1, tmpl)
		}
		lit, err := EscapeLiteral(args[next])
		if err != nil {
			return "", err
		}
		buf.WriteString(lit)
		next++
	}
	return buf.String(), nil
}
