package datatables

// applyRowAttributes adds the DT_RowId, DT_RowClass and DT_RowData_* keys
// configured with SetRowAttributes to every row, in place.
func (p *Processor) applyRowAttributes(rows []map[string]any) {
	for _, row := range rows {
		if p.rowIDFunc != nil {
			row[datatableRowID] = p.rowIDFunc(row)
		}
		if p.rowClass != "" {
			row[datatableRowClass] = p.rowClass
		}
		if p.rowDataFunc != nil {
			for k, v := range p.rowDataFunc(row) {
				row[datatableRowDataPrefix+k] = v
			}
		}
	}
}
