package datatables

// ServerConfig holds the switches a Processor applies when answering a
// server-side request.
//
// Fields:
//   - Searchable: Enables the global and per-column search.
//   - Orderable: Enables ordering by the requested columns.
//   - Paginate: Enables LIMIT/OFFSET from the requested display window.
//   - CaseInsensitive: Lower-cases search terms before matching.
//   - DataProperty: Response key holding the rows.
//   - DefaultSort: Ordering applied when the request carries none.
type ServerConfig struct {
	Searchable      bool
	Orderable       bool
	Paginate        bool
	CaseInsensitive bool
	DataProperty    string
	DefaultSort     []ColumnSort
}

// ColumnSort orders by the column whose Data key is Data.
type ColumnSort struct {
	Data string
	Desc bool
}

func defaultServerConfig() ServerConfig {
	return ServerConfig{
		Searchable:   true,
		Orderable:    true,
		Paginate:     true,
		DataProperty: defaultAjaxDataProperty,
	}
}

// serverConfigFor derives the server switches from the client options, so
// that a table with filtering, sorting or paging disabled in the browser is
// not filtered, sorted or paged on the server either.
func serverConfigFor(view TableView) ServerConfig {
	cfg := defaultServerConfig()
	cfg.Searchable = view.Filter()
	cfg.Orderable = view.SortEnabled()
	cfg.Paginate = view.Paginate()
	if prop := view.AjaxDataProperty(); prop != "" {
		cfg.DataProperty = prop
	}
	return cfg
}
