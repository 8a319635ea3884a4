package querybuilder

import "strings"

// Condition is one predicate of a WHERE clause; predicates are ANDed.
type Condition interface {
	render(w *writer)
}

type compare struct {
	column string
	op     string
	value  any
}

func (c compare) render(w *writer) {
	w.raw(c.column, " ", c.op, " ")
	w.bind(c.value)
}

func Eq(column string, value any) Condition  { return compare{column: column, op: "=", value: value} }
func Neq(column string, value any) Condition { return compare{column: column, op: "<>", value: value} }
func Gt(column string, value any) Condition  { return compare{column: column, op: ">", value: value} }
func Gte(column string, value any) Condition { return compare{column: column, op: ">=", value: value} }
func Lt(column string, value any) Condition  { return compare{column: column, op: "<", value: value} }
func Lte(column string, value any) Condition { return compare{column: column, op: "<=", value: value} }

type in struct {
	column string
	values []any
}

// In renders "column IN (...)"; an empty set matches nothing.
func In(column string, values []any) Condition {
	return in{column: column, values: values}
}

// InStrings is In for string ids.
func InStrings(column string, values []string) Condition {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return in{column: column, values: out}
}

func (c in) render(w *writer) {
	if len(c.values) == 0 {
		w.raw("1=0")
		return
	}
	w.raw(c.column, " IN (")
	for i, v := range c.values {
		if i > 0 {
			w.raw(", ")
		}
		w.bind(v)
	}
	w.raw(")")
}

type nullCheck struct {
	column string
	not    bool
}

func IsNull(column string) Condition  { return nullCheck{column: column} }
func NotNull(column string) Condition { return nullCheck{column: column, not: true} }

func (c nullCheck) render(w *writer) {
	if c.not {
		w.raw(c.column, " IS NOT NULL")
		return
	}
	w.raw(c.column, " IS NULL")
}

type rawExpr struct {
	expr string
	args []any
}

// Expr embeds a hand-written predicate; '?' markers bind args in order.
func Expr(expr string, args ...any) Condition {
	return rawExpr{expr: expr, args: args}
}

func (c rawExpr) render(w *writer) {
	w.expr(c.expr, c.args)
}

type eqLiteral struct {
	column string
	value  string
}

// EqLiteral inlines a quoted constant instead of binding it.
func EqLiteral(column, value string) Condition {
	return eqLiteral{column: column, value: value}
}

func (c eqLiteral) render(w *writer) {
	w.raw(c.column, " = '", strings.ReplaceAll(c.value, "'", "''"), "'")
}
