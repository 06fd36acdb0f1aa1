package datatables

// Column represents a single column answered by a Processor.
//
// Fields:
//   - Searchable: Whether the column takes part in searches.
//   - Orderable: Whether the column can be ordered by.
//   - Name: The SQL column name used in conditions and ordering.
//   - Data: The key of the column in each response row.
//   - RenderFunc: Optional function computing the cell value from the row.
type Column struct {
	Searchable bool
	Orderable  bool
	Name       string
	Data       string
	RenderFunc func(map[string]any) any
}

// sqlName returns the column to use in SQL, falling back to Data.
func (c Column) sqlName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Data
}

// AddColumn adds a column, replacing any column with the same Data key in
// place.
func (p *Processor) AddColumn(col Column) *Processor {
	if _, ok := p.columnsMap[col.Data]; !ok {
		p.columns = append(p.columns, col)
	} else {
		for i := range p.columns {
			if p.columns[i].Data == col.Data {
				p.columns[i] = col
			}
		}
	}
	p.columnsMap[col.Data] = col
	return p
}

// AddColumns calls AddColumn for each column.
func (p *Processor) AddColumns(columns ...Column) *Processor {
	for _, col := range columns {
		p.AddColumn(col)
	}
	return p
}

// EditColumn replaces the cell value of the column keyed data with the
// result of editFunc applied to the fetched value. Unknown columns are
// ignored, so EditColumn must be called after Req or AddColumn.
func (p *Processor) EditColumn(data string, editFunc func(any) any) *Processor {
	col, ok := p.columnsMap[data]
	if !ok {
		return p
	}
	col.RenderFunc = func(row map[string]any) any {
		return editFunc(row[data])
	}
	return p.AddColumn(col)
}

// BlacklistColumn excludes columns from searching, ordering and the
// response rows.
func (p *Processor) BlacklistColumn(data ...string) *Processor {
	for _, d := range data {
		p.blacklist[d] = true
	}
	return p
}

func (p *Processor) isColumnAllowed(data string) bool {
	return !p.blacklist[data]
}

// dropBlacklisted removes blacklisted keys from every row.
func (p *Processor) dropBlacklisted(rows []map[string]any) {
	if len(p.blacklist) == 0 {
		return
	}
	for _, row := range rows {
		for key := range p.blacklist {
			delete(row, key)
		}
	}
}
