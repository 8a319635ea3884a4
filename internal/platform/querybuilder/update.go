package querybuilder

import "strings"

type assignment struct {
	column string
	expr   string
	args   []any
}

type UpdateBuilder struct {
	table  string
	sets   []assignment
	where  []Condition
	suffix string
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, expr: "?", args: []any{value}})
	return b
}

// SetExpr assigns a SQL expression such as "NOW()" or "balance + ?".
func (b *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, expr: expr, args: args})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) Suffix(sql string) *UpdateBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if blank(b.table) {
		return "", nil, ErrMissingTable
	}
	if len(b.sets) == 0 {
		return "", nil, ErrMissingSets
	}

	var w writer
	w.raw("UPDATE ", b.table, " SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.raw(", ")
		}
		w.raw(s.column, " = ")
		w.expr(s.expr, s.args)
	}
	w.where(b.where)
	if b.suffix != "" {
		w.raw(" ", b.suffix)
	}
	return w.result()
}
