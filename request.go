package datatables

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Search represents a search term sent by the plugin.
//
// Fields:
//   - Value: The search term or value to be used.
//   - Regex: Whether the term is a regular expression.
type Search struct {
	Value string
	Regex bool
}

// Order specifies the ordering criteria for a requested column.
//
// Fields:
//   - Column: The index of the column to be ordered.
//   - Dir: The direction of ordering, either "asc" or "desc".
type Order struct {
	Column int
	Dir    string
}

// ColumnRequest describes one column of a server-side request.
//
// Fields:
//   - Searchable: Indicates if the column is searchable (bSearchable_n).
//   - Orderable: Indicates if the column can be ordered (bSortable_n).
//   - Data: The data property of the column (mDataProp_n).
//   - Name: The column name from sColumns, or Data when none was sent.
//   - Search: The per-column search (sSearch_n, bRegex_n).
type ColumnRequest struct {
	Searchable bool
	Orderable  bool
	Data       string
	Name       string
	Search     Search
}

// Request is a server-side processing request as sent by the plugin.
//
// Echo must be returned unchanged in the response. A negative Length asks
// for all records.
type Request struct {
	Echo    int
	Start   int
	Length  int
	Search  Search
	Order   []Order
	Columns []ColumnRequest
}

// ParseRequest parses a server-side processing request from r. Parameters
// are read from the query string and, for POST requests, the form body.
//
// sEcho and iDisplayStart are required. When no valid sort column is sent,
// the request is ordered ascending by its first column if that column is
// sortable.
func ParseRequest(r *http.Request) (*Request, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	form := r.Form

	var (
		data Request
		err  error
	)
	data.Echo, err = strconv.Atoi(form.Get(paramEcho))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid value for %s: %v", ErrInvalidRequest, paramEcho, err)
	}
	data.Start, err = strconv.Atoi(form.Get(paramStart))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid value for %s: %v", ErrInvalidRequest, paramStart, err)
	}
	data.Length, _ = strconv.Atoi(form.Get(paramLength))
	data.Search.Value = form.Get(paramSearch)
	if raw := form.Get(paramRegex); raw != "" {
		data.Search.Regex, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid value for %s: %v", ErrInvalidRequest, paramRegex, err)
		}
	}

	data.Columns, err = parseColumns(form)
	if err != nil {
		return nil, err
	}
	data.Order, err = parseOrder(form, data.Columns)
	if err != nil {
		return nil, err
	}

	return &data, nil
}

// indexedCount reads the count of an indexed parameter group. Negative
// counts are rejected. Counts are capped at the number of parameters in
// form, since every indexed entry needs at least one of its own.
func indexedCount(form url.Values, param string) (int, bool, error) {
	raw := form.Get(param)
	if raw == "" {
		return 0, false, nil
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, nil
	}
	if count < 0 {
		return 0, false, fmt.Errorf("%w: invalid value for %s: %d", ErrInvalidRequest, param, count)
	}
	return min(count, len(form)), true, nil
}

// parseColumns reads iColumns columns, or counts mDataProp_n parameters when
// iColumns is absent.
func parseColumns(form url.Values) ([]ColumnRequest, error) {
	count, ok, err := indexedCount(form, paramColumnCount)
	if err != nil {
		return nil, err
	}
	if !ok {
		for form.Has(indexed(paramDataProp, count)) {
			count++
		}
	}

	var names []string
	if raw := form.Get(paramColumnNames); raw != "" {
		names = strings.Split(raw, ",")
	}

	columns := make([]ColumnRequest, 0, count)
	for i := 0; i < count; i++ {
		data := form.Get(indexed(paramDataProp, i))
		if data == "" {
			data = strconv.Itoa(i)
		}
		name := data
		if i < len(names) && strings.TrimSpace(names[i]) != "" {
			name = strings.TrimSpace(names[i])
		}
		columns = append(columns, ColumnRequest{
			Data:       data,
			Name:       name,
			Searchable: form.Get(indexed(paramSearchable, i)) == "true",
			Orderable:  form.Get(indexed(paramSortable, i)) == "true",
			Search: Search{
				Value: form.Get(indexed(paramSearch, i)),
				Regex: form.Get(indexed(paramRegex, i)) == "true",
			},
		})
	}
	return columns, nil
}

func parseOrder(form url.Values, columns []ColumnRequest) ([]Order, error) {
	count, _, err := indexedCount(form, paramSortCount)
	if err != nil {
		return nil, err
	}

	var order []Order
	for i := 0; i < count; i++ {
		col, err := strconv.Atoi(form.Get(indexed(paramSortColumn, i)))
		if err != nil {
			continue
		}
		if col >= 0 && col < len(columns) && columns[col].Orderable {
			order = append(order, Order{
				Column: col,
				Dir:    form.Get(indexed(paramSortDir, i)),
			})
		}
	}

	if len(order) == 0 && len(columns) > 0 && columns[0].Orderable {
		order = append(order, Order{Column: 0, Dir: "asc"})
	}
	return order, nil
}
