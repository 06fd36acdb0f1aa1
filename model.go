package datatables

import (
	"fmt"
	"regexp"

	"gorm.io/gorm"
)

// Processor answers the server-side requests of one table from a gorm query.
//
// A Processor is configured fluently and used for a single request:
//
//	resp, err := datatables.New(db).
//		Model(&User{}).
//		Options(table).
//		Req(*req).
//		Make()
type Processor struct {
	totalRecords    *int64
	filteredRecords *int64
	rowClass        string
	model           any
	tx              *gorm.DB
	req             Request
	config          ServerConfig
	relations       []string
	columns         []Column
	blacklist       map[string]bool
	additionalData  map[string]any
	columnsMap      map[string]Column
	rowIDFunc       func(map[string]any) string
	rowDataFunc     func(map[string]any) map[string]any
	filters         []func(*gorm.DB) *gorm.DB
}

// Model sets the model to query: a struct pointer, or a table name.
//
// Without a model, Validate falls back to the model or table already set on
// the gorm statement.
func (p *Processor) Model(model any) *Processor {
	p.model = model
	return p
}

// Options applies the server-relevant client options of view: filtering,
// sorting, pagination and the response data property.
func (p *Processor) Options(view TableView) *Processor {
	cfg := serverConfigFor(view)
	cfg.CaseInsensitive = p.config.CaseInsensitive
	cfg.DefaultSort = p.config.DefaultSort
	p.config = cfg
	return p
}

// Req sets the request to answer and adds one column per requested column.
//
// Columns the plugin addresses only by array index, with no sName, name no
// SQL column and are skipped. Map them with AddColumn, keyed by the index,
// before or after Req.
func (p *Processor) Req(req Request) *Processor {
	p.req = req
	for _, v := range req.Columns {
		if isArrayIndex(v.Name) {
			continue
		}
		p.AddColumn(Column{
			Name:       v.Name,
			Data:       v.Data,
			Searchable: v.Searchable,
			Orderable:  v.Orderable,
		})
	}
	return p
}

// With preloads the named associations. Ignored when the query joins.
func (p *Processor) With(relations ...string) *Processor {
	p.relations = append(p.relations, relations...)
	return p
}

// WithData adds a top-level key to the response.
func (p *Processor) WithData(key string, value any) *Processor {
	p.additionalData[key] = value
	return p
}

// Filter adds a scope applied to every query, counts included.
func (p *Processor) Filter(filterFunc func(*gorm.DB) *gorm.DB) *Processor {
	p.filters = append(p.filters, filterFunc)
	return p
}

// DefaultSort sets the ordering used when the request carries none.
func (p *Processor) DefaultSort(sorts ...ColumnSort) *Processor {
	p.config.DefaultSort = sorts
	return p
}

// CaseInsensitive matches search terms and regular expressions ignoring case.
func (p *Processor) CaseInsensitive() *Processor {
	p.config.CaseInsensitive = true
	return p
}

// SetTotalRecords fixes the total record count and skips its query.
func (p *Processor) SetTotalRecords(count int64) *Processor {
	p.totalRecords = &count
	return p
}

// SetFilteredRecords fixes the filtered record count and skips its query.
func (p *Processor) SetFilteredRecords(count int64) *Processor {
	p.filteredRecords = &count
	return p
}

// SetRowAttributes sets the DT_RowId, DT_RowClass and DT_RowData_* values
// added to every row. Nil functions and an empty class are skipped.
func (p *Processor) SetRowAttributes(idFunc func(map[string]any) string, class string, dataFunc func(map[string]any) map[string]any) *Processor {
	p.rowIDFunc = idFunc
	p.rowClass = class
	p.rowDataFunc = dataFunc
	return p
}

// Validate checks that there is something to query and a request to answer.
//
// A missing model is resolved from the gorm statement's model or table
// expression. A request with neither an echo value nor columns, or with an
// invalid regular expression as global search, is rejected. All failures
// match ErrInvalidRequest.
func (p *Processor) Validate() error {
	if p.model == nil {
		model, err := p.statementModel()
		if err != nil {
			return err
		}
		p.model = model
	}

	if p.req.Echo == 0 && len(p.req.Columns) == 0 {
		return fmt.Errorf("%w: no echo value or columns", ErrInvalidRequest)
	}

	if p.req.Search.Regex {
		if _, err := regexp.Compile(p.req.Search.Value); err != nil {
			return fmt.Errorf("%w: invalid regex search pattern", ErrInvalidRequest)
		}
	}

	return nil
}

func (p *Processor) statementModel() (any, error) {
	switch {
	case p.tx == nil:
		return nil, fmt.Errorf("%w: no tx or model provided", ErrInvalidRequest)
	case p.tx.Statement == nil:
		return nil, fmt.Errorf("%w: gorm statement is required", ErrInvalidRequest)
	case p.tx.Statement.Model != nil:
		return p.tx.Statement.Model, nil
	case p.tx.Statement.TableExpr != nil && p.tx.Statement.TableExpr.SQL != "":
		return p.tx.Statement.TableExpr.SQL, nil
	case p.tx.Statement.Table != "":
		return p.tx.Statement.Table, nil
	}
	return nil, fmt.Errorf("%w: model is required", ErrInvalidRequest)
}
