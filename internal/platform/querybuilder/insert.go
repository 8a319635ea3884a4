package querybuilder

import (
	"fmt"
	"strings"
)

type InsertBuilder struct {
	table     string
	columns   []string
	rows      [][]any
	conflict  []string
	updates   []string
	doNothing bool
	suffix    string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// OnConflict starts an upsert on the given unique columns.
func (b *InsertBuilder) OnConflict(columns ...string) *InsertBuilder {
	b.conflict = append([]string(nil), columns...)
	return b
}

// DoUpdate overwrites the listed columns from EXCLUDED. With no columns it
// updates every inserted column outside the conflict target.
func (b *InsertBuilder) DoUpdate(columns ...string) *InsertBuilder {
	b.updates = append([]string(nil), columns...)
	if len(b.updates) == 0 {
		for _, c := range b.columns {
			if !contains(b.conflict, c) {
				b.updates = append(b.updates, c)
			}
		}
	}
	b.doNothing = false
	return b
}

func (b *InsertBuilder) DoNothing() *InsertBuilder {
	b.doNothing = true
	b.updates = nil
	return b
}

// Suffix appends raw SQL after the VALUES and conflict clauses,
// e.g. "RETURNING id".
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if blank(b.table) {
		return "", nil, ErrMissingTable
	}
	if len(b.columns) == 0 {
		return "", nil, ErrMissingColumns
	}
	if len(b.rows) == 0 {
		return "", nil, ErrMissingValues
	}

	var w writer
	w.raw("INSERT INTO ", b.table, " (", strings.Join(b.columns, ", "), ") VALUES ")
	for r, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("querybuilder: insert row %d has %d values, expected %d", r, len(row), len(b.columns))
		}
		if r > 0 {
			w.raw(", ")
		}
		w.raw("(")
		for i, v := range row {
			if i > 0 {
				w.raw(", ")
			}
			w.bind(v)
		}
		w.raw(")")
	}

	if len(b.conflict) > 0 {
		w.raw(" ON CONFLICT (", strings.Join(b.conflict, ", "), ")")
		switch {
		case b.doNothing || len(b.updates) == 0:
			w.raw(" DO NOTHING")
		default:
			w.raw(" DO UPDATE SET ")
			for i, c := range b.updates {
				if i > 0 {
					w.raw(", ")
				}
				w.raw(c, " = EXCLUDED.", c)
			}
		}
	}
	if b.suffix != "" {
		w.raw(" ", b.suffix)
	}
	return w.result()
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
