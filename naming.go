package lapisdb

import (
	"reflect"

	"github.com/gertd/go-pluralize"
	"github.com/iancoleman/strcase"
)

var pluralizeClient = pluralize.NewClient()

// TableName derives a table name from a model: snake case, pluralized.
// Accepts either a string ("UserProfile" -> "user_profiles") or a struct
// value/pointer, in which case the type name is used.
func TableName(model any) string {
	if s, ok := model.(string); ok {
		return pluralizeClient.Plural(strcase.ToSnake(s))
	}
	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return pluralizeClient.Plural(strcase.ToSnake(t.Name()))
}

// ColumnName derives a column name from a struct field name.
func ColumnName(field string) string {
	return strcase.ToSnake(field)
}

// StructValues flattens the exported fields of a struct into a Values map
// keyed by snake-case column names. A `db:"name"` tag overrides the derived
// name; `db:"-"` skips the field.
func StructValues(model any) Values {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()
	vals := make(Values, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		col := f.Tag.Get("db")
		if col == "-" {
			continue
		}
		if col == "" {
			col = strcase.ToSnake(f.Name)
		}
		vals[col] = v.Field(i).Interface()
	}
	return vals
}

// InsertModel inserts a struct using its derived table name and flattened
// field values.
func (d *DB) InsertModel(model any, returning ...string) (*Result, error) {
	return d.Insert(TableName(model), StructValues(model), returning...)
}
