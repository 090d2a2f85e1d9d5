package props

// Table is an ordered list of rows, each an ordered list of styled spans.
// List widgets use one span-per-column rows; table widgets use the full
// grid.
type Table [][]TextSpan

// TableBuilder assembles a Table row by row.
type TableBuilder struct {
	rows Table
	row  []TextSpan
}

// NewTableBuilder creates an empty builder.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{}
}

// AddCol appends a span to the current row.
func (b *TableBuilder) AddCol(span TextSpan) *TableBuilder {
	b.row = append(b.row, span)
	return b
}

// AddRow closes the current row and starts a new one.
func (b *TableBuilder) AddRow() *TableBuilder {
	b.rows = append(b.rows, b.row)
	b.row = nil
	return b
}

// Build closes any pending row and returns the table.
func (b *TableBuilder) Build() Table {
	if len(b.row) > 0 {
		b.rows = append(b.rows, b.row)
		b.row = nil
	}
	return b.rows
}
