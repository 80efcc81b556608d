package schema

import "csv-mapper/primitive"

// Row is a record of plain string fields, used when no generated table exists.
type Row []string

// RowTable builds a table of string columns addressing Row positions.
func RowTable(names ...string) *Table[Row] {
	columns := make([]Column[Row], len(names))
	for i, name := range names {
		columns[i] = Column[Row]{
			Name:   name,
			Type:   primitive.Of(primitive.KindString),
			Access: rowAccessor(i),
		}
	}
	return NewTable("Row", columns...)
}

func rowAccessor(i int) Accessor[Row] {
	return Accessor[Row]{
		Get: func(r *Row) any {
			if i >= len(*r) {
				return nil
			}
			return (*r)[i]
		},
		Set: func(r *Row, v any) error {
			for len(*r) <= i {
				*r = append(*r, "")
			}
			if v == nil {
				(*r)[i] = ""
				return nil
			}
			s, ok := v.(string)
			if !ok {
				return mismatch[string](v)
			}
			(*r)[i] = s
			return nil
		},
	}
}
