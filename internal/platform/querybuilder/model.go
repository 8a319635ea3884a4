package querybuilder

import (
	"errors"
	"reflect"
	"strings"
)

// ModelColumns reads the db-tagged exported fields of a struct in
// declaration order. Fields tagged "-" or untagged are skipped.
func ModelColumns(model any) ([]string, []any, error) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil, errors.New("querybuilder: model is nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil, errors.New("querybuilder: model must be a struct")
	}

	t := v.Type()
	cols := make([]string, 0, t.NumField())
	vals := make([]any, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		cols = append(cols, name)
		vals = append(vals, v.Field(i).Interface())
	}
	if len(cols) == 0 {
		return nil, nil, errors.New("querybuilder: model has no db columns")
	}
	return cols, vals, nil
}

// InsertModel starts an insert for one tagged struct.
func InsertModel(table string, model any) (*InsertBuilder, error) {
	cols, vals, err := ModelColumns(model)
	if err != nil {
		return nil, err
	}
	return InsertInto(table).Columns(cols...).Values(vals...), nil
}

// UpsertModel inserts model and overwrites every non-key column when the
// conflict columns already exist.
func UpsertModel(table string, model any, conflict ...string) (string, []any, error) {
	b, err := InsertModel(table, model)
	if err != nil {
		return "", nil, err
	}
	return b.OnConflict(conflict...).DoUpdate().ToSQL()
}
