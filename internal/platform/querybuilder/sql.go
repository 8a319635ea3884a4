// Package querybuilder renders postgres statements with numbered
// placeholders for sqlx.
package querybuilder

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrMissingTable   = errors.New("querybuilder: table is required")
	ErrMissingColumns = errors.New("querybuilder: columns are required")
	ErrMissingValues  = errors.New("querybuilder: values are required")
	ErrMissingSets    = errors.New("querybuilder: set clauses are required")
)

// writer accumulates SQL text and its positional args.
type writer struct {
	sb   strings.Builder
	args []any
}

func (w *writer) raw(parts ...string) {
	for _, p := range parts {
		w.sb.WriteString(p)
	}
}

func (w *writer) bind(value any) {
	w.args = append(w.args, value)
	w.sb.WriteByte('$')
	w.sb.WriteString(strconv.Itoa(len(w.args)))
}

// expr writes expr with each '?' bound to the next value. Surplus
// markers stay literal.
func (w *writer) expr(expr string, values []any) {
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && next < len(values) {
			w.bind(values[next])
			next++
			continue
		}
		w.sb.WriteByte(expr[i])
	}
}

func (w *writer) where(conds []Condition) {
	if len(conds) == 0 {
		return
	}
	w.raw(" WHERE ")
	for i, c := range conds {
		if i > 0 {
			w.raw(" AND ")
		}
		c.render(w)
	}
}

func (w *writer) list(keyword string, parts []string) {
	if len(parts) == 0 {
		return
	}
	w.raw(" ", keyword, " ", strings.Join(parts, ", "))
}

func (w *writer) result() (string, []any, error) {
	return w.sb.String(), w.args, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
