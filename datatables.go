package datatables

import (
	"maps"

	"gorm.io/gorm"
)

// New returns a Processor running its queries on tx, with searching,
// ordering and pagination enabled.
func New(tx *gorm.DB) *Processor {
	return &Processor{
		tx:             tx,
		config:         defaultServerConfig(),
		additionalData: make(map[string]any),
		blacklist:      make(map[string]bool),
		columnsMap:     make(map[string]Column),
	}
}

// Make answers the request set with Req.
//
// It validates the processor, counts all and filtered records, fetches the
// requested page and then, for every row, runs the column render functions,
// sets the row attributes and drops blacklisted columns. The response holds
// sEcho, iTotalRecords, iTotalDisplayRecords, the rows under the configured
// data property and any values added with WithData.
func (p *Processor) Make() (map[string]any, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	rows, total, filtered, err := p.processQuery()
	if err != nil {
		return nil, err
	}

	rows = normalizeRows(rows)
	for _, row := range rows {
		for _, col := range p.columns {
			if render := p.columnsMap[col.Data].RenderFunc; render != nil {
				row[col.Data] = render(row)
			}
		}
	}
	p.applyRowAttributes(rows)
	p.dropBlacklisted(rows)

	if rows == nil {
		rows = []map[string]any{}
	}
	response := map[string]any{
		responseEcho:          p.req.Echo,
		responseTotal:         total,
		responseTotalFiltered: filtered,
		p.config.DataProperty: rows,
	}
	maps.Copy(response, p.additionalData)

	return response, nil
}
