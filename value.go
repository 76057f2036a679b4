package lapisdb

import "sort"

// RawValue carries SQL text that is emitted verbatim, bypassing all escaping.
// It can only be built through Raw, so a RawValue anywhere in a statement is
// always an explicit decision by the caller.
type RawValue struct {
	sql string
}

// Raw marks s as pre-escaped SQL text.
func Raw(s string) RawValue {
	return RawValue{sql: s}
}

func (r RawValue) String() string {
	return r.sql
}

// IsRaw reports whether v was built with Raw.
func IsRaw(v any) bool {
	_, is := v.(RawValue)
	return is
}

// NullType is the type of the Null sentinel.
type NullType struct{}

// Null encodes SQL NULL. Inside a Conditions map it turns the condition into
// IS NULL instead of an equality check. A plain nil value behaves the same.
var Null NullType

// True and False are raw SQL keywords. They escape to the same text as the
// Go booleans true and false.
var (
	True  = Raw("TRUE")
	False = Raw("FALSE")
)

// Values maps column names to literal values for INSERT and UPDATE
// statements.
type Values map[string]any

// Conditions maps column names to values for an AND-joined WHERE clause.
// A Null (or nil) value emits IS NULL.
type Conditions map[string]any

// Go randomizes map iteration, so every encoder walks keys in sorted order to
// keep the generated SQL reproducible byte for byte.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func isNull(v any) bool {
	if v == nil {
		return true
	}
	_, is := v.(NullType)
	return is
}
