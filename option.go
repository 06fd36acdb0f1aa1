package datatables

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// optionKind tells the renderer how an option value is written out.
type optionKind int

const (
	kindBool optionKind = iota
	kindInt
	kindNullableInt
	kindString
	kindSearch
	kindCallback
	kindStructured
)

// option binds an input key to the typed accessors of TableConfig.
//
// plugin is the option name the jQuery plugin expects; it is empty for
// options that are not plugin settings (the table name). params is the
// argument list of the JavaScript function a callback body is wrapped in.
type option struct {
	key    string
	plugin string
	kind   optionKind
	params string
	get    func(TableView) any
	set    func(*TableConfig, any) error
}

func boolOption(key, plugin string, get func(TableView) bool, set func(*TableConfig, bool) *TableConfig) option {
	return option{
		key:    key,
		plugin: plugin,
		kind:   kindBool,
		get:    func(v TableView) any { return get(v) },
		set: func(t *TableConfig, value any) error {
			b, err := cast.ToBoolE(value)
			if err != nil {
				return err
			}
			set(t, b)
			return nil
		},
	}
}

func intOption(key, plugin string, get func(TableView) int, set func(*TableConfig, int) *TableConfig) option {
	return option{
		key:    key,
		plugin: plugin,
		kind:   kindInt,
		get:    func(v TableView) any { return get(v) },
		set: func(t *TableConfig, value any) error {
			n, err := toInt(value)
			if err != nil {
				return err
			}
			set(t, n)
			return nil
		},
	}
}

// toInt converts value to an int. Floats must be integral.
func toInt(value any) (int, error) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	default:
		return cast.ToIntE(value)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("unable to cast %v of type %T to int: not an integer", value, value)
	}
	return cast.ToIntE(value)
}

func stringOption(key, plugin string, get func(TableView) string, set func(*TableConfig, string) *TableConfig) option {
	return option{
		key:    key,
		plugin: plugin,
		kind:   kindString,
		get:    func(v TableView) any { return get(v) },
		set: func(t *TableConfig, value any) error {
			s, err := cast.ToStringE(value)
			if err != nil {
				return err
			}
			set(t, s)
			return nil
		},
	}
}

func searchOption(key, plugin string, get func(TableView) string, set func(*TableConfig, string) *TableConfig) option {
	o := stringOption(key, plugin, get, set)
	o.kind = kindSearch
	return o
}

func callbackOption(key, plugin, params string, get func(TableView) string, set func(*TableConfig, string) *TableConfig) option {
	o := stringOption(key, plugin, get, set)
	o.kind = kindCallback
	o.params = params
	return o
}

func structuredOption(key, plugin string, get func(TableView) any, set func(*TableConfig, any) *TableConfig) option {
	return option{
		key:    key,
		plugin: plugin,
		kind:   kindStructured,
		get:    get,
		set: func(t *TableConfig, value any) error {
			set(t, value)
			return nil
		},
	}
}

var deferLoadingOption = option{
	key:    "deferLoadingCount",
	plugin: "iDeferLoading",
	kind:   kindNullableInt,
	get: func(v TableView) any {
		if n, ok := v.DeferLoadingCount(); ok {
			return n
		}
		return nil
	},
	set: func(t *TableConfig, value any) error {
		if value == nil {
			t.ClearDeferLoadingCount()
			return nil
		}
		n, err := toInt(value)
		if err != nil {
			return err
		}
		t.SetDeferLoadingCount(n)
		return nil
	},
}

// optionTable lists every option in application order. A mapping input is
// applied in this order, so themed is applied before layoutTemplate and an
// explicit template always wins over the one SetThemed selects.
var optionTable = []option{
	stringOption("name", "", TableView.Name, (*TableConfig).SetName),

	boolOption("autoWidth", "bAutoWidth", TableView.AutoWidth, (*TableConfig).SetAutoWidth),
	boolOption("deferRender", "bDeferRender", TableView.DeferRender, (*TableConfig).SetDeferRender),
	boolOption("filter", "bFilter", TableView.Filter, (*TableConfig).SetFilter),
	boolOption("info", "bInfo", TableView.Info, (*TableConfig).SetInfo),
	boolOption("themed", "bJQueryUI", TableView.Themed, (*TableConfig).SetThemed),
	boolOption("lengthChange", "bLengthChange", TableView.LengthChange, (*TableConfig).SetLengthChange),
	boolOption("paginate", "bPaginate", TableView.Paginate, (*TableConfig).SetPaginate),
	boolOption("processing", "bProcessing", TableView.Processing, (*TableConfig).SetProcessing),
	boolOption("scrollInfinite", "bScrollInfinite", TableView.ScrollInfinite, (*TableConfig).SetScrollInfinite),
	boolOption("serverSide", "bServerSide", TableView.ServerSide, (*TableConfig).SetServerSide),
	boolOption("sortEnabled", "bSort", TableView.SortEnabled, (*TableConfig).SetSortEnabled),
	boolOption("sortClasses", "bSortClasses", TableView.SortClasses, (*TableConfig).SetSortClasses),
	boolOption("stateSave", "bStateSave", TableView.StateSave, (*TableConfig).SetStateSave),
	stringOption("scrollX", "sScrollX", TableView.ScrollX, (*TableConfig).SetScrollX),
	stringOption("scrollY", "sScrollY", TableView.ScrollY, (*TableConfig).SetScrollY),
	boolOption("destroy", "bDestroy", TableView.Destroy, (*TableConfig).SetDestroy),
	boolOption("retrieve", "bRetrieve", TableView.Retrieve, (*TableConfig).SetRetrieve),
	boolOption("scrollAutoCss", "bScrollAutoCss", TableView.ScrollAutoCss, (*TableConfig).SetScrollAutoCss),
	boolOption("scrollCollapse", "bScrollCollapse", TableView.ScrollCollapse, (*TableConfig).SetScrollCollapse),
	boolOption("sortCellsTop", "bSortCellsTop", TableView.SortCellsTop, (*TableConfig).SetSortCellsTop),

	intOption("cookieDurationSeconds", "iCookieDuration", TableView.CookieDurationSeconds, (*TableConfig).SetCookieDurationSeconds),
	deferLoadingOption,
	intOption("displayLength", "iDisplayLength", TableView.DisplayLength, (*TableConfig).SetDisplayLength),
	intOption("displayStart", "iDisplayStart", TableView.DisplayStart, (*TableConfig).SetDisplayStart),
	intOption("scrollLoadGap", "iScrollLoadGap", TableView.ScrollLoadGap, (*TableConfig).SetScrollLoadGap),
	intOption("tabIndex", "iTabIndex", TableView.TabIndex, (*TableConfig).SetTabIndex),

	searchOption("searchInitialState", "oSearch", TableView.SearchInitialState, (*TableConfig).SetSearchInitialState),
	stringOption("ajaxDataProperty", "sAjaxDataProp", TableView.AjaxDataProperty, (*TableConfig).SetAjaxDataProperty),
	stringOption("ajaxSource", "sAjaxSource", TableView.AjaxSource, (*TableConfig).SetAjaxSource),
	stringOption("cookiePrefix", "sCookiePrefix", TableView.CookiePrefix, (*TableConfig).SetCookiePrefix),
	stringOption("layoutTemplate", "sDom", TableView.LayoutTemplate, (*TableConfig).SetLayoutTemplate),
	stringOption("paginationType", "sPaginationType", TableView.PaginationType, (*TableConfig).SetPaginationType),
	stringOption("scrollXInner", "sScrollXInner", TableView.ScrollXInner, (*TableConfig).SetScrollXInner),
	stringOption("serverMethod", "sServerMethod", TableView.ServerMethod, (*TableConfig).SetServerMethod),

	callbackOption("cookieCallback", "fnCookieCallback", "sName, oData, sExpires, sPath", TableView.CookieCallback, (*TableConfig).SetCookieCallback),
	callbackOption("createdRowCallback", "fnCreatedRow", "nRow, aData, iDataIndex", TableView.CreatedRowCallback, (*TableConfig).SetCreatedRowCallback),
	callbackOption("drawCallback", "fnDrawCallback", "oSettings", TableView.DrawCallback, (*TableConfig).SetDrawCallback),
	callbackOption("footerCallback", "fnFooterCallback", "nFoot, aData, iStart, iEnd, aiDisplay", TableView.FooterCallback, (*TableConfig).SetFooterCallback),
	callbackOption("formatNumberCallback", "fnFormatNumber", "iIn", TableView.FormatNumberCallback, (*TableConfig).SetFormatNumberCallback),
	callbackOption("headerCallback", "fnHeaderCallback", "nHead, aData, iStart, iEnd, aiDisplay", TableView.HeaderCallback, (*TableConfig).SetHeaderCallback),
	callbackOption("infoCallback", "fnInfoCallback", "oSettings, iStart, iEnd, iMax, iTotal, sPre", TableView.InfoCallback, (*TableConfig).SetInfoCallback),
	callbackOption("initCompleteCallback", "fnInitComplete", "oSettings, json", TableView.InitCompleteCallback, (*TableConfig).SetInitCompleteCallback),
	callbackOption("preDrawCallback", "fnPreDrawCallback", "oSettings", TableView.PreDrawCallback, (*TableConfig).SetPreDrawCallback),
	callbackOption("rowCallback", "fnRowCallback", "nRow, aData, iDisplayIndex, iDisplayIndexFull", TableView.RowCallback, (*TableConfig).SetRowCallback),
	callbackOption("serverDataCallback", "fnServerData", "sSource, aoData, fnCallback, oSettings", TableView.ServerDataCallback, (*TableConfig).SetServerDataCallback),
	callbackOption("serverParamsCallback", "fnServerParams", "aoData", TableView.ServerParamsCallback, (*TableConfig).SetServerParamsCallback),
	callbackOption("stateLoadCallback", "fnStateLoad", "oSettings", TableView.StateLoadCallback, (*TableConfig).SetStateLoadCallback),
	callbackOption("stateLoadParamsCallback", "fnStateLoadParams", "oSettings, oData", TableView.StateLoadParamsCallback, (*TableConfig).SetStateLoadParamsCallback),
	callbackOption("stateLoadedCallback", "fnStateLoaded", "oSettings, oData", TableView.StateLoadedCallback, (*TableConfig).SetStateLoadedCallback),
	callbackOption("stateSaveCallback", "fnStateSave", "oSettings, oData", TableView.StateSaveCallback, (*TableConfig).SetStateSaveCallback),
	callbackOption("stateSaveParamsCallback", "fnStateSaveParams", "oSettings, oData", TableView.StateSaveParamsCallback, (*TableConfig).SetStateSaveParamsCallback),

	structuredOption("columnDefs", "aoColumnDefs", TableView.ColumnDefs, (*TableConfig).SetColumnDefs),
	structuredOption("columns", "aoColumns", TableView.Columns, (*TableConfig).SetColumns),
}

var optionIndex = func() map[string]*option {
	index := make(map[string]*option, len(optionTable))
	for i := range optionTable {
		index[optionTable[i].key] = &optionTable[i]
	}
	return index
}()

// OptionKeys returns the keys accepted by Build, in application order.
func OptionKeys() []string {
	keys := make([]string, len(optionTable))
	for i, o := range optionTable {
		keys[i] = o.key
	}
	return keys
}

// Get returns the value of the option named key. Unset nullable options are
// returned as nil. The second result is false for unknown keys.
func (t *TableConfig) Get(key string) (any, bool) {
	o, ok := optionIndex[key]
	if !ok {
		return nil, false
	}
	return o.get(t), true
}

// Set assigns value to the option named key, coercing it to the option's
// type.
func (t *TableConfig) Set(key string, value any) error {
	o, ok := optionIndex[key]
	if !ok {
		return &UnknownOptionError{Key: key}
	}
	if err := o.set(t, value); err != nil {
		return &InvalidInputError{Key: key, Got: typeName(value), Err: err}
	}
	return nil
}
