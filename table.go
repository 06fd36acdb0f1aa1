package datatables

// Pagination types understood by the plugin.
const (
	PaginationTwoButton   = "two_button"
	PaginationFullNumbers = "full_numbers"
)

// HTTP methods the plugin may use for Ajax requests.
const (
	ServerMethodGet  = "GET"
	ServerMethodPost = "POST"
)

// Layout templates managed by SetThemed.
const (
	LayoutPlain  = `lfrtip`
	LayoutThemed = `<"H"lfr>t<"F"ip>`
)

const (
	defaultName             = "dataTable"
	defaultCookieDuration   = 7200
	defaultDisplayLength    = 10
	defaultScrollLoadGap    = 100
	defaultAjaxDataProperty = "aaData"
	defaultCookiePrefix     = "SpryMedia_DataTables"
)

// TableView is a read-only view of a table configuration.
//
// Collaborators that turn a configuration into markup or answer the table's
// server-side requests depend on TableView instead of *TableConfig so they
// cannot change the options they were handed.
type TableView interface {
	Name() string

	AutoWidth() bool
	DeferRender() bool
	Filter() bool
	Info() bool
	Themed() bool
	LengthChange() bool
	Paginate() bool
	Processing() bool
	ScrollInfinite() bool
	ServerSide() bool
	SortEnabled() bool
	SortClasses() bool
	StateSave() bool
	Destroy() bool
	Retrieve() bool
	ScrollAutoCss() bool
	ScrollCollapse() bool
	SortCellsTop() bool

	CookieDurationSeconds() int
	DeferLoadingCount() (int, bool)
	DisplayLength() int
	DisplayStart() int
	ScrollLoadGap() int
	TabIndex() int

	ScrollX() string
	ScrollY() string
	SearchInitialState() string
	AjaxDataProperty() string
	AjaxSource() string
	CookiePrefix() string
	LayoutTemplate() string
	PaginationType() string
	ScrollXInner() string
	ServerMethod() string

	CookieCallback() string
	CreatedRowCallback() string
	DrawCallback() string
	FooterCallback() string
	FormatNumberCallback() string
	HeaderCallback() string
	InfoCallback() string
	InitCompleteCallback() string
	PreDrawCallback() string
	RowCallback() string
	ServerDataCallback() string
	ServerParamsCallback() string
	StateLoadCallback() string
	StateLoadParamsCallback() string
	StateLoadedCallback() string
	StateSaveCallback() string
	StateSaveParamsCallback() string

	ColumnDefs() any
	Columns() any
}

// TableConfig holds the initialisation options of a single jQuery DataTables
// instance.
//
// A TableConfig is created fully defaulted by NewTableConfig or Build and is
// owned by its creator. Callback fields hold JavaScript function bodies that
// are stored and returned verbatim; they are never parsed here. Empty strings
// mean "unset" for the optional string options (ajaxSource,
// searchInitialState) and the callbacks.
type TableConfig struct {
	name string

	autoWidth      bool
	deferRender    bool
	filter         bool
	info           bool
	themed         bool
	lengthChange   bool
	paginate       bool
	processing     bool
	scrollInfinite bool
	serverSide     bool
	sortEnabled    bool
	sortClasses    bool
	stateSave      bool
	destroy        bool
	retrieve       bool
	scrollAutoCss  bool
	scrollCollapse bool
	sortCellsTop   bool

	cookieDurationSeconds int
	deferLoadingCount     *int
	displayLength         int
	displayStart          int
	scrollLoadGap         int
	tabIndex              int

	scrollX            string
	scrollY            string
	searchInitialState string
	ajaxDataProperty   string
	ajaxSource         string
	cookiePrefix       string
	layoutTemplate     string
	paginationType     string
	scrollXInner       string
	serverMethod       string

	cookieCallback          string
	createdRowCallback      string
	drawCallback            string
	footerCallback          string
	formatNumberCallback    string
	headerCallback          string
	infoCallback            string
	initCompleteCallback    string
	preDrawCallback         string
	rowCallback             string
	serverDataCallback      string
	serverParamsCallback    string
	stateLoadCallback       string
	stateLoadParamsCallback string
	stateLoadedCallback     string
	stateSaveCallback       string
	stateSaveParamsCallback string

	columnDefs any
	columns    any
}

var _ TableView = (*TableConfig)(nil)

// NewTableConfig returns a TableConfig with every option set to the plugin's
// default.
func NewTableConfig() *TableConfig {
	return &TableConfig{
		name:                  defaultName,
		autoWidth:             true,
		filter:                true,
		info:                  true,
		lengthChange:          true,
		paginate:              true,
		sortEnabled:           true,
		sortClasses:           true,
		scrollAutoCss:         true,
		cookieDurationSeconds: defaultCookieDuration,
		displayLength:         defaultDisplayLength,
		scrollLoadGap:         defaultScrollLoadGap,
		ajaxDataProperty:      defaultAjaxDataProperty,
		cookiePrefix:          defaultCookiePrefix,
		layoutTemplate:        LayoutPlain,
		paginationType:        PaginationTwoButton,
		serverMethod:          ServerMethodGet,
	}
}

// Clone returns a copy of t that shares no mutable state with it, except for
// the opaque column descriptors which are copied by reference.
func (t *TableConfig) Clone() *TableConfig {
	c := *t
	if t.deferLoadingCount != nil {
		n := *t.deferLoadingCount
		c.deferLoadingCount = &n
	}
	return &c
}

// Name returns the table name, also used as the id of the generated table
// element.
func (t *TableConfig) Name() string { return t.name }

// SetName sets the table name.
func (t *TableConfig) SetName(name string) *TableConfig {
	t.name = name
	return t
}

// AutoWidth reports whether automatic column width calculation is enabled.
func (t *TableConfig) AutoWidth() bool { return t.autoWidth }

// SetAutoWidth sets the value returned by AutoWidth.
func (t *TableConfig) SetAutoWidth(v bool) *TableConfig {
	t.autoWidth = v
	return t
}

// DeferRender reports whether row elements are created lazily on draw.
func (t *TableConfig) DeferRender() bool { return t.deferRender }

// SetDeferRender sets the value returned by DeferRender.
func (t *TableConfig) SetDeferRender(v bool) *TableConfig {
	t.deferRender = v
	return t
}

// Filter reports whether filtering of data is enabled.
func (t *TableConfig) Filter() bool { return t.filter }

// SetFilter sets the value returned by Filter.
func (t *TableConfig) SetFilter(v bool) *TableConfig {
	t.filter = v
	return t
}

// Info reports whether the table information line is shown.
func (t *TableConfig) Info() bool { return t.info }

// SetInfo sets the value returned by Info.
func (t *TableConfig) SetInfo(v bool) *TableConfig {
	t.info = v
	return t
}

// Themed reports whether jQuery UI ThemeRoller support is enabled.
func (t *TableConfig) Themed() bool { return t.themed }

// SetThemed enables or disables jQuery UI ThemeRoller support.
//
// The layout template is switched between LayoutPlain and LayoutThemed only
// while it is empty or still holds the literal the previous flag value would
// have selected. Any other template was customised by the caller and is left
// untouched. Switching back after such a customisation does not restore the
// custom template.
func (t *TableConfig) SetThemed(enabled bool) *TableConfig {
	if enabled {
		if t.layoutTemplate == "" || t.layoutTemplate == LayoutPlain {
			t.layoutTemplate = LayoutThemed
		}
	} else {
		if t.layoutTemplate == "" || t.layoutTemplate == LayoutThemed {
			t.layoutTemplate = LayoutPlain
		}
	}
	t.themed = enabled
	return t
}

// LengthChange reports whether the page size select menu is shown.
func (t *TableConfig) LengthChange() bool { return t.lengthChange }

// SetLengthChange sets the value returned by LengthChange.
func (t *TableConfig) SetLengthChange(v bool) *TableConfig {
	t.lengthChange = v
	return t
}

// Paginate reports whether pagination is enabled.
func (t *TableConfig) Paginate() bool { return t.paginate }

// SetPaginate sets the value returned by Paginate.
func (t *TableConfig) SetPaginate(v bool) *TableConfig {
	t.paginate = v
	return t
}

// Processing reports whether the "processing" indicator is shown.
func (t *TableConfig) Processing() bool { return t.processing }

// SetProcessing sets the value returned by Processing.
func (t *TableConfig) SetProcessing(v bool) *TableConfig {
	t.processing = v
	return t
}

// ScrollInfinite reports whether infinite scrolling is enabled.
func (t *TableConfig) ScrollInfinite() bool { return t.scrollInfinite }

// SetScrollInfinite sets the value returned by ScrollInfinite.
func (t *TableConfig) SetScrollInfinite(v bool) *TableConfig {
	t.scrollInfinite = v
	return t
}

// ServerSide reports whether the table is fed by server-side processing.
func (t *TableConfig) ServerSide() bool { return t.serverSide }

// SetServerSide sets the value returned by ServerSide.
func (t *TableConfig) SetServerSide(v bool) *TableConfig {
	t.serverSide = v
	return t
}

// SortEnabled reports whether sorting is enabled.
func (t *TableConfig) SortEnabled() bool { return t.sortEnabled }

// SetSortEnabled sets the value returned by SortEnabled.
func (t *TableConfig) SetSortEnabled(v bool) *TableConfig {
	t.sortEnabled = v
	return t
}

// SortClasses returns the bSortClasses option.
func (t *TableConfig) SortClasses() bool { return t.sortClasses }

// SetSortClasses sets the value returned by SortClasses.
func (t *TableConfig) SetSortClasses(v bool) *TableConfig {
	t.sortClasses = v
	return t
}

// StateSave returns the bStateSave option.
func (t *TableConfig) StateSave() bool { return t.stateSave }

// SetStateSave sets the value returned by StateSave.
func (t *TableConfig) SetStateSave(v bool) *TableConfig {
	t.stateSave = v
	return t
}

// Destroy returns the bDestroy option.
func (t *TableConfig) Destroy() bool { return t.destroy }

// SetDestroy sets the value returned by Destroy.
func (t *TableConfig) SetDestroy(v bool) *TableConfig {
	t.destroy = v
	return t
}

// Retrieve returns the bRetrieve option.
func (t *TableConfig) Retrieve() bool { return t.retrieve }

// SetRetrieve sets the value returned by Retrieve.
func (t *TableConfig) SetRetrieve(v bool) *TableConfig {
	t.retrieve = v
	return t
}

// ScrollAutoCss returns the bScrollAutoCss option.
func (t *TableConfig) ScrollAutoCss() bool { return t.scrollAutoCss }

// SetScrollAutoCss sets the value returned by ScrollAutoCss.
func (t *TableConfig) SetScrollAutoCss(v bool) *TableConfig {
	t.scrollAutoCss = v
	return t
}

// ScrollCollapse returns the bScrollCollapse option.
func (t *TableConfig) ScrollCollapse() bool { return t.scrollCollapse }

// SetScrollCollapse sets the value returned by ScrollCollapse.
func (t *TableConfig) SetScrollCollapse(v bool) *TableConfig {
	t.scrollCollapse = v
	return t
}

// SortCellsTop returns the bSortCellsTop option.
func (t *TableConfig) SortCellsTop() bool { return t.sortCellsTop }

// SetSortCellsTop sets the value returned by SortCellsTop.
func (t *TableConfig) SetSortCellsTop(v bool) *TableConfig {
	t.sortCellsTop = v
	return t
}

// CookieDurationSeconds returns how long the state cookie is kept.
func (t *TableConfig) CookieDurationSeconds() int { return t.cookieDurationSeconds }

// SetCookieDurationSeconds sets the value returned by CookieDurationSeconds.
func (t *TableConfig) SetCookieDurationSeconds(v int) *TableConfig {
	t.cookieDurationSeconds = v
	return t
}

// DeferLoadingCount returns the number of records already rendered into the
// page on first draw, and false when deferred loading is not used.
func (t *TableConfig) DeferLoadingCount() (int, bool) {
	if t.deferLoadingCount == nil {
		return 0, false
	}
	return *t.deferLoadingCount, true
}

// SetDeferLoadingCount sets the value returned by DeferLoadingCount.
func (t *TableConfig) SetDeferLoadingCount(v int) *TableConfig {
	t.deferLoadingCount = &v
	return t
}

// ClearDeferLoadingCount disables deferred loading.
func (t *TableConfig) ClearDeferLoadingCount() *TableConfig {
	t.deferLoadingCount = nil
	return t
}

// DisplayLength returns the iDisplayLength option.
func (t *TableConfig) DisplayLength() int { return t.displayLength }

// SetDisplayLength sets the value returned by DisplayLength.
func (t *TableConfig) SetDisplayLength(v int) *TableConfig {
	t.displayLength = v
	return t
}

// DisplayStart returns the iDisplayStart option.
func (t *TableConfig) DisplayStart() int { return t.displayStart }

// SetDisplayStart sets the value returned by DisplayStart.
func (t *TableConfig) SetDisplayStart(v int) *TableConfig {
	t.displayStart = v
	return t
}

// ScrollLoadGap returns the iScrollLoadGap option.
func (t *TableConfig) ScrollLoadGap() int { return t.scrollLoadGap }

// SetScrollLoadGap sets the value returned by ScrollLoadGap.
func (t *TableConfig) SetScrollLoadGap(v int) *TableConfig {
	t.scrollLoadGap = v
	return t
}

// TabIndex returns the iTabIndex option.
func (t *TableConfig) TabIndex() int { return t.tabIndex }

// SetTabIndex sets the value returned by TabIndex.
func (t *TableConfig) SetTabIndex(v int) *TableConfig {
	t.tabIndex = v
	return t
}

// ScrollX returns the sScrollX option.
func (t *TableConfig) ScrollX() string { return t.scrollX }

// SetScrollX sets the value returned by ScrollX.
func (t *TableConfig) SetScrollX(v string) *TableConfig {
	t.scrollX = v
	return t
}

// ScrollY returns the sScrollY option.
func (t *TableConfig) ScrollY() string { return t.scrollY }

// SetScrollY sets the value returned by ScrollY.
func (t *TableConfig) SetScrollY(v string) *TableConfig {
	t.scrollY = v
	return t
}

// SearchInitialState returns the filter applied on first draw.
func (t *TableConfig) SearchInitialState() string { return t.searchInitialState }

// SetSearchInitialState sets the value returned by SearchInitialState.
func (t *TableConfig) SetSearchInitialState(v string) *TableConfig {
	t.searchInitialState = v
	return t
}

// AjaxDataProperty returns the name of the property holding the rows in an
// Ajax response.
func (t *TableConfig) AjaxDataProperty() string { return t.ajaxDataProperty }

// SetAjaxDataProperty sets the value returned by AjaxDataProperty.
func (t *TableConfig) SetAjaxDataProperty(v string) *TableConfig {
	t.ajaxDataProperty = v
	return t
}

// AjaxSource returns the URL the table loads its data from.
func (t *TableConfig) AjaxSource() string { return t.ajaxSource }

// SetAjaxSource sets the value returned by AjaxSource.
func (t *TableConfig) SetAjaxSource(v string) *TableConfig {
	t.ajaxSource = v
	return t
}

// CookiePrefix returns the sCookiePrefix option.
func (t *TableConfig) CookiePrefix() string { return t.cookiePrefix }

// SetCookiePrefix sets the value returned by CookiePrefix.
func (t *TableConfig) SetCookiePrefix(v string) *TableConfig {
	t.cookiePrefix = v
	return t
}

// LayoutTemplate returns the template describing where the plugin injects
// its controls (the plugin's sDom option).
func (t *TableConfig) LayoutTemplate() string { return t.layoutTemplate }

// SetLayoutTemplate sets the value returned by LayoutTemplate.
func (t *TableConfig) SetLayoutTemplate(v string) *TableConfig {
	t.layoutTemplate = v
	return t
}

// PaginationType returns the sPaginationType option.
func (t *TableConfig) PaginationType() string { return t.paginationType }

// SetPaginationType sets the value returned by PaginationType.
func (t *TableConfig) SetPaginationType(v string) *TableConfig {
	t.paginationType = v
	return t
}

// ScrollXInner returns the sScrollXInner option.
func (t *TableConfig) ScrollXInner() string { return t.scrollXInner }

// SetScrollXInner sets the value returned by ScrollXInner.
func (t *TableConfig) SetScrollXInner(v string) *TableConfig {
	t.scrollXInner = v
	return t
}

// ServerMethod returns the HTTP method used for Ajax requests.
func (t *TableConfig) ServerMethod() string { return t.serverMethod }

// SetServerMethod sets the value returned by ServerMethod.
func (t *TableConfig) SetServerMethod(v string) *TableConfig {
	t.serverMethod = v
	return t
}

// CookieCallback returns the fnCookieCallback option.
func (t *TableConfig) CookieCallback() string { return t.cookieCallback }

// SetCookieCallback sets the value returned by CookieCallback.
func (t *TableConfig) SetCookieCallback(body string) *TableConfig {
	t.cookieCallback = body
	return t
}

// CreatedRowCallback returns the fnCreatedRow option.
func (t *TableConfig) CreatedRowCallback() string { return t.createdRowCallback }

// SetCreatedRowCallback sets the value returned by CreatedRowCallback.
func (t *TableConfig) SetCreatedRowCallback(body string) *TableConfig {
	t.createdRowCallback = body
	return t
}

// DrawCallback returns the fnDrawCallback option.
func (t *TableConfig) DrawCallback() string { return t.drawCallback }

// SetDrawCallback sets the value returned by DrawCallback.
func (t *TableConfig) SetDrawCallback(body string) *TableConfig {
	t.drawCallback = body
	return t
}

// FooterCallback returns the fnFooterCallback option.
func (t *TableConfig) FooterCallback() string { return t.footerCallback }

// SetFooterCallback sets the value returned by FooterCallback.
func (t *TableConfig) SetFooterCallback(body string) *TableConfig {
	t.footerCallback = body
	return t
}

// FormatNumberCallback returns the fnFormatNumber option.
func (t *TableConfig) FormatNumberCallback() string { return t.formatNumberCallback }

// SetFormatNumberCallback sets the value returned by FormatNumberCallback.
func (t *TableConfig) SetFormatNumberCallback(body string) *TableConfig {
	t.formatNumberCallback = body
	return t
}

// HeaderCallback returns the fnHeaderCallback option.
func (t *TableConfig) HeaderCallback() string { return t.headerCallback }

// SetHeaderCallback sets the value returned by HeaderCallback.
func (t *TableConfig) SetHeaderCallback(body string) *TableConfig {
	t.headerCallback = body
	return t
}

// InfoCallback returns the fnInfoCallback option.
func (t *TableConfig) InfoCallback() string { return t.infoCallback }

// SetInfoCallback sets the value returned by InfoCallback.
func (t *TableConfig) SetInfoCallback(body string) *TableConfig {
	t.infoCallback = body
	return t
}

// InitCompleteCallback returns the fnInitComplete option.
func (t *TableConfig) InitCompleteCallback() string { return t.initCompleteCallback }

// SetInitCompleteCallback sets the value returned by InitCompleteCallback.
func (t *TableConfig) SetInitCompleteCallback(body string) *TableConfig {
	t.initCompleteCallback = body
	return t
}

// PreDrawCallback returns the fnPreDrawCallback option.
func (t *TableConfig) PreDrawCallback() string { return t.preDrawCallback }

// SetPreDrawCallback sets the value returned by PreDrawCallback.
func (t *TableConfig) SetPreDrawCallback(body string) *TableConfig {
	t.preDrawCallback = body
	return t
}

// RowCallback returns the fnRowCallback option.
func (t *TableConfig) RowCallback() string { return t.rowCallback }

// SetRowCallback sets the value returned by RowCallback.
func (t *TableConfig) SetRowCallback(body string) *TableConfig {
	t.rowCallback = body
	return t
}

// ServerDataCallback returns the fnServerData option.
func (t *TableConfig) ServerDataCallback() string { return t.serverDataCallback }

// SetServerDataCallback sets the value returned by ServerDataCallback.
func (t *TableConfig) SetServerDataCallback(body string) *TableConfig {
	t.serverDataCallback = body
	return t
}

// ServerParamsCallback returns the fnServerParams option.
func (t *TableConfig) ServerParamsCallback() string { return t.serverParamsCallback }

// SetServerParamsCallback sets the value returned by ServerParamsCallback.
func (t *TableConfig) SetServerParamsCallback(body string) *TableConfig {
	t.serverParamsCallback = body
	return t
}

// StateLoadCallback returns the fnStateLoad option.
func (t *TableConfig) StateLoadCallback() string { return t.stateLoadCallback }

// SetStateLoadCallback sets the value returned by StateLoadCallback.
func (t *TableConfig) SetStateLoadCallback(body string) *TableConfig {
	t.stateLoadCallback = body
	return t
}

// StateLoadParamsCallback returns the fnStateLoadParams option.
func (t *TableConfig) StateLoadParamsCallback() string { return t.stateLoadParamsCallback }

// SetStateLoadParamsCallback sets the value returned by StateLoadParamsCallback.
func (t *TableConfig) SetStateLoadParamsCallback(body string) *TableConfig {
	t.stateLoadParamsCallback = body
	return t
}

// StateLoadedCallback returns the fnStateLoaded option.
func (t *TableConfig) StateLoadedCallback() string { return t.stateLoadedCallback }

// SetStateLoadedCallback sets the value returned by StateLoadedCallback.
func (t *TableConfig) SetStateLoadedCallback(body string) *TableConfig {
	t.stateLoadedCallback = body
	return t
}

// StateSaveCallback returns the fnStateSave option.
func (t *TableConfig) StateSaveCallback() string { return t.stateSaveCallback }

// SetStateSaveCallback sets the value returned by StateSaveCallback.
func (t *TableConfig) SetStateSaveCallback(body string) *TableConfig {
	t.stateSaveCallback = body
	return t
}

// StateSaveParamsCallback returns the fnStateSaveParams option.
func (t *TableConfig) StateSaveParamsCallback() string { return t.stateSaveParamsCallback }

// SetStateSaveParamsCallback sets the value returned by StateSaveParamsCallback.
func (t *TableConfig) SetStateSaveParamsCallback(body string) *TableConfig {
	t.stateSaveParamsCallback = body
	return t
}

// ColumnDefs returns the column definition overrides (aoColumnDefs). The value
// is opaque: either source text of the array contents or structured data.
func (t *TableConfig) ColumnDefs() any { return t.columnDefs }

// SetColumnDefs sets the value returned by ColumnDefs.
func (t *TableConfig) SetColumnDefs(v any) *TableConfig {
	t.columnDefs = v
	return t
}

// Columns returns the per-column overrides (aoColumns), opaque like
// ColumnDefs.
func (t *TableConfig) Columns() any { return t.columns }

// SetColumns sets the value returned by Columns.
func (t *TableConfig) SetColumns(v any) *TableConfig {
	t.columns = v
	return t
}
