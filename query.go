package datatables

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// hasJoinClause returns true if the base query joins other tables.
func (p *Processor) hasJoinClause() bool {
	return p.tx != nil && p.tx.Statement != nil && len(p.tx.Statement.Joins) > 0
}

// applyFilters applies the scopes added with Filter, in order.
func (p *Processor) applyFilters(query *gorm.DB) *gorm.DB {
	for _, filter := range p.filters {
		query = filter(query)
	}
	return query
}

// applyRelations preloads the associations added with With, unless the
// query already joins them.
func (p *Processor) applyRelations(query *gorm.DB) *gorm.DB {
	if p.hasJoinClause() {
		return query
	}
	for _, rel := range p.relations {
		query = query.Preload(rel)
	}
	return query
}

// searchCondition matches col against search, either with LIKE or, for
// regular expressions, with REGEXP. Case-insensitive regular expressions use
// REGEXP_LIKE's match type so the pattern is passed through unchanged.
func (p *Processor) searchCondition(col Column, search Search) clause.Expression {
	column := clause.Column{Name: col.sqlName()}
	val := search.Value
	if p.config.CaseInsensitive {
		if search.Regex {
			return clause.Expr{SQL: "REGEXP_LIKE(?, ?, 'i')", Vars: []any{column, val}}
		}
		return clause.Expr{SQL: "LOWER(?) LIKE ?", Vars: []any{column, "%" + strings.ToLower(val) + "%"}}
	}
	if search.Regex {
		return clause.Expr{SQL: "? REGEXP ?", Vars: []any{column, val}}
	}
	return clause.Like{Column: column, Value: "%" + val + "%"}
}

// searchableColumn returns the registered column for a requested one, if it
// may be searched.
func (p *Processor) searchableColumn(req ColumnRequest) (Column, bool) {
	if !p.isColumnAllowed(req.Data) {
		return Column{}, false
	}
	col, ok := p.columnsMap[req.Data]
	return col, ok && col.Searchable
}

// hasSearch reports whether the request filters the records at all.
func (p *Processor) hasSearch() bool {
	if !p.config.Searchable {
		return false
	}
	if p.req.Search.Value != "" {
		return true
	}
	for _, c := range p.req.Columns {
		if c.Search.Value != "" {
			return true
		}
	}
	return false
}

// applySearch matches the global search term against every searchable
// requested column, OR-ed together.
func (p *Processor) applySearch(query *gorm.DB) *gorm.DB {
	if !p.config.Searchable || p.req.Search.Value == "" {
		return query
	}

	var conditions []clause.Expression
	for _, reqCol := range p.req.Columns {
		if col, ok := p.searchableColumn(reqCol); ok {
			conditions = append(conditions, p.searchCondition(col, p.req.Search))
		}
	}

	if len(conditions) > 0 {
		query = query.Where(clause.Or(conditions...))
	}
	return query
}

// applyColumnSearch matches each per-column search term against its column.
// The conditions are AND-ed with each other and the global search.
func (p *Processor) applyColumnSearch(query *gorm.DB) *gorm.DB {
	if !p.config.Searchable {
		return query
	}
	for _, reqCol := range p.req.Columns {
		if reqCol.Search.Value == "" {
			continue
		}
		if col, ok := p.searchableColumn(reqCol); ok {
			query = query.Where(p.searchCondition(col, reqCol.Search))
		}
	}
	return query
}

// executeQuery runs query and returns one map per row.
func (p *Processor) executeQuery(query *gorm.DB) ([]map[string]any, error) {
	var rows []map[string]any
	err := query.Find(&rows).Error
	return rows, err
}

// buildBaseQuery returns the query all others derive from: the model or
// table with the Filter scopes applied.
func (p *Processor) buildBaseQuery() *gorm.DB {
	var query *gorm.DB
	if table, ok := p.model.(string); ok {
		query = p.tx
		if p.tx.Statement.TableExpr == nil {
			query = p.tx.Table(table)
		}
	} else {
		query = p.tx.Model(p.model)
	}
	return p.applyFilters(query)
}

// buildFilteredQuery applies the global and per-column searches to a new
// session of baseQuery.
func (p *Processor) buildFilteredQuery(baseQuery *gorm.DB) *gorm.DB {
	query := baseQuery.Session(&gorm.Session{})
	query = p.applySearch(query)
	return p.applyColumnSearch(query)
}

// count returns *preset when set, otherwise runs a count on a new session
// of query.
func count(query *gorm.DB, preset *int64) (int64, error) {
	if preset != nil {
		return *preset, nil
	}
	var n int64
	err := query.Session(&gorm.Session{}).Count(&n).Error
	return n, err
}

// applyOrder orders by the requested orderable columns, or by DefaultSort
// when the request has no ordering.
func (p *Processor) applyOrder(query *gorm.DB) *gorm.DB {
	if !p.config.Orderable {
		return query
	}

	for _, order := range p.req.Order {
		if order.Column < 0 || order.Column >= len(p.req.Columns) {
			continue
		}
		reqCol := p.req.Columns[order.Column]
		if !p.isColumnAllowed(reqCol.Data) {
			continue
		}
		if col, ok := p.columnsMap[reqCol.Data]; ok && col.Orderable {
			query = query.Order(clause.OrderByColumn{
				Column: clause.Column{Name: col.sqlName()},
				Desc:   strings.ToUpper(order.Dir) == orderDescending,
			})
		}
	}

	if len(p.req.Order) == 0 {
		for _, sort := range p.config.DefaultSort {
			name := sort.Data
			if col, ok := p.columnsMap[sort.Data]; ok {
				name = col.sqlName()
			}
			query = query.Order(clause.OrderByColumn{
				Column: clause.Column{Name: name},
				Desc:   sort.Desc,
			})
		}
	}

	return query
}

// applyPagination limits the query to the requested display window. A
// non-positive length returns all records.
func (p *Processor) applyPagination(query *gorm.DB) *gorm.DB {
	if p.config.Paginate && p.req.Length > 0 {
		query = query.Offset(p.req.Start).Limit(p.req.Length)
	}
	return query
}

// processQuery counts all and filtered records and fetches the requested
// page. The filtered count is only queried when the request searches.
func (p *Processor) processQuery() ([]map[string]any, int64, int64, error) {
	baseQuery := p.buildBaseQuery()
	filteredQuery := p.buildFilteredQuery(baseQuery)

	total, err := count(baseQuery, p.totalRecords)
	if err != nil {
		return nil, 0, 0, err
	}

	filtered := total
	if p.filteredRecords != nil || p.hasSearch() {
		filtered, err = count(filteredQuery, p.filteredRecords)
		if err != nil {
			return nil, 0, 0, err
		}
	}

	query := p.applyOrder(filteredQuery)
	query = p.applyPagination(query)
	query = p.applyRelations(query)
	rows, err := p.executeQuery(query)
	if err != nil {
		return nil, 0, 0, err
	}

	return rows, total, filtered, nil
}

// Raw validates the processor and returns the rows of the requested page
// without render functions, row attributes or blacklist trimming applied.
func (p *Processor) Raw() ([]map[string]any, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rows, _, _, err := p.processQuery()
	return rows, err
}
