package querybuilder

import "strconv"

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	groupBy []string
	orderBy []string
	limit   int
	offset  int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) GroupBy(parts ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, parts...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) Offset(offset int) *SelectBuilder {
	b.offset = offset
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, ErrMissingColumns
	}
	if blank(b.table) {
		return "", nil, ErrMissingTable
	}

	var w writer
	w.raw("SELECT ")
	for i, c := range b.columns {
		if i > 0 {
			w.raw(", ")
		}
		w.raw(c)
	}
	w.raw(" FROM ", b.table)
	w.where(b.where)
	w.list("GROUP BY", b.groupBy)
	w.list("ORDER BY", b.orderBy)
	if b.limit > 0 {
		w.raw(" LIMIT ", strconv.Itoa(b.limit))
	}
	if b.offset > 0 {
		w.raw(" OFFSET ", strconv.Itoa(b.offset))
	}
	return w.result()
}
