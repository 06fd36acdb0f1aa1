package datatables

// orderDescending is the upper-cased sSortDir value for descending order.
const orderDescending = "DESC"

// Parameters the plugin sends with a server-side request. Indexed
// parameters are suffixed with "_<n>".
const (
	paramEcho        = "sEcho"
	paramStart       = "iDisplayStart"
	paramLength      = "iDisplayLength"
	paramSearch      = "sSearch"
	paramRegex       = "bRegex"
	paramColumnCount = "iColumns"
	paramColumnNames = "sColumns"
	paramDataProp    = "mDataProp"
	paramSearchable  = "bSearchable"
	paramSortable    = "bSortable"
	paramSortCount   = "iSortingCols"
	paramSortColumn  = "iSortCol"
	paramSortDir     = "sSortDir"
)

// Keys of a server-side response, besides the rows whose key is the
// table's ajaxDataProperty.
const (
	responseEcho          = "sEcho"
	responseTotal         = "iTotalRecords"
	responseTotalFiltered = "iTotalDisplayRecords"
)

// Row attributes the plugin applies to the generated TR element.
const (
	datatableRowID         = "DT_RowId"    // Row ID attribute.
	datatableRowClass      = "DT_RowClass" // Row class attribute.
	datatableRowDataPrefix = "DT_RowData_" // Row data attribute prefix.
)
