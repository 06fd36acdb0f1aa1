package datatables

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"
)

func TestParseRequest(t *testing.T) {
	type TestCaseParseRequest struct {
		Name           string
		Method         string
		QueryParams    url.Values
		RequestBody    string
		ExpectedError  bool
		ExpectedEcho   int
		ExpectedStart  int
		ExpectedLength int
		ExpectedSearch Search
		ExpectedCols   []string
		ExpectedOrder  []Order
	}

	tests := []TestCaseParseRequest{
		{
			Name:   "valid_get_request",
			Method: http.MethodGet,
			QueryParams: url.Values{
				"sEcho": {"3"}, "iDisplayStart": {"0"}, "iDisplayLength": {"10"}, "sSearch": {"test"}, "bRegex": {"false"},
				"iColumns": {"2"}, "sColumns": {","},
				"mDataProp_0": {"id"}, "bSearchable_0": {"true"}, "bSortable_0": {"true"},
				"mDataProp_1": {"name"}, "bSearchable_1": {"true"}, "bSortable_1": {"true"},
				"iSortingCols": {"1"}, "iSortCol_0": {"1"}, "sSortDir_0": {"desc"},
			},
			ExpectedEcho:   3,
			ExpectedStart:  0,
			ExpectedLength: 10,
			ExpectedSearch: Search{Value: "test"},
			ExpectedCols:   []string{"id", "name"},
			ExpectedOrder:  []Order{{Column: 1, Dir: "desc"}},
		},
		{
			Name:           "valid_post_request",
			Method:         http.MethodPost,
			RequestBody:    "sEcho=1&iDisplayStart=20&iDisplayLength=-1&sSearch=^J&bRegex=true&iColumns=1&mDataProp_0=name&bSortable_0=true",
			ExpectedEcho:   1,
			ExpectedStart:  20,
			ExpectedLength: -1,
			ExpectedSearch: Search{Value: "^J", Regex: true},
			ExpectedCols:   []string{"name"},
			ExpectedOrder:  []Order{{Column: 0, Dir: "asc"}},
		},
		{
			Name:   "columns_counted_without_icolumns",
			Method: http.MethodGet,
			QueryParams: url.Values{
				"sEcho": {"1"}, "iDisplayStart": {"0"},
				"mDataProp_0": {"id"}, "mDataProp_1": {"email"},
			},
			ExpectedEcho: 1,
			ExpectedCols: []string{"id", "email"},
		},
		{
			Name:   "out_of_range_sort_column_ignored",
			Method: http.MethodGet,
			QueryParams: url.Values{
				"sEcho": {"1"}, "iDisplayStart": {"0"}, "iColumns": {"1"},
				"mDataProp_0": {"id"}, "bSortable_0": {"false"},
				"iSortingCols": {"1"}, "iSortCol_0": {"99"}, "sSortDir_0": {"asc"},
			},
			ExpectedEcho: 1,
			ExpectedCols: []string{"id"},
		},
		{
			Name:   "huge_column_count_capped",
			Method: http.MethodGet,
			QueryParams: url.Values{
				"sEcho": {"1"}, "iDisplayStart": {"0"}, "iColumns": {"2000000000"},
				"mDataProp_0": {"id"}, "iSortingCols": {"2000000000"},
			},
			ExpectedEcho: 1,
			ExpectedCols: []string{"id", "1", "2", "3", "4"},
		},
		{
			Name:          "negative_column_count",
			Method:        http.MethodGet,
			QueryParams:   url.Values{"sEcho": {"1"}, "iDisplayStart": {"0"}, "iColumns": {"-1"}},
			ExpectedError: true,
		},
		{
			Name:          "negative_sorting_count",
			Method:        http.MethodGet,
			QueryParams:   url.Values{"sEcho": {"1"}, "iDisplayStart": {"0"}, "iSortingCols": {"-3"}},
			ExpectedError: true,
		},
		{
			Name:          "empty_get_query_params",
			Method:        http.MethodGet,
			QueryParams:   url.Values{},
			ExpectedError: true,
		},
		{
			Name:          "missing_display_start",
			Method:        http.MethodGet,
			QueryParams:   url.Values{"sEcho": {"1"}},
			ExpectedError: true,
		},
		{
			Name:          "invalid_echo",
			Method:        http.MethodGet,
			QueryParams:   url.Values{"sEcho": {"abc"}, "iDisplayStart": {"0"}},
			ExpectedError: true,
		},
		{
			Name:          "invalid_search_regex",
			Method:        http.MethodGet,
			QueryParams:   url.Values{"sEcho": {"1"}, "iDisplayStart": {"0"}, "sSearch": {"test"}, "bRegex": {"invalid"}},
			ExpectedError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.Name, func(t *testing.T) {
			var req *http.Request
			if tc.Method == http.MethodPost {
				req = httptest.NewRequest(http.MethodPost, "/data", strings.NewReader(tc.RequestBody))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			} else {
				req = httptest.NewRequest(http.MethodGet, "/data?"+tc.QueryParams.Encode(), nil)
			}

			result, err := ParseRequest(req)
			if tc.ExpectedError {
				if !errors.Is(err, ErrInvalidRequest) {
					t.Fatalf("expected ErrInvalidRequest, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if result.Echo != tc.ExpectedEcho {
				t.Errorf("expected echo %d, got %d", tc.ExpectedEcho, result.Echo)
			}
			if result.Start != tc.ExpectedStart {
				t.Errorf("expected start %d, got %d", tc.ExpectedStart, result.Start)
			}
			if result.Length != tc.ExpectedLength {
				t.Errorf("expected length %d, got %d", tc.ExpectedLength, result.Length)
			}
			if result.Search != tc.ExpectedSearch {
				t.Errorf("expected search %+v, got %+v", tc.ExpectedSearch, result.Search)
			}

			var cols []string
			for _, c := range result.Columns {
				cols = append(cols, c.Data)
			}
			if !reflect.DeepEqual(cols, tc.ExpectedCols) {
				t.Errorf("expected columns %v, got %v", tc.ExpectedCols, cols)
			}
			if !reflect.DeepEqual(result.Order, tc.ExpectedOrder) {
				t.Errorf("expected order %v, got %v", tc.ExpectedOrder, result.Order)
			}
		})
	}
}

func TestParseColumns(t *testing.T) {
	form := url.Values{
		"iColumns":      {"3"},
		"sColumns":      {"user_id, ,full_name"},
		"mDataProp_0":   {"id"},
		"bSearchable_0": {"true"},
		"bSortable_0":   {"false"},
		"sSearch_0":     {"4"},
		"bRegex_0":      {"true"},
		"mDataProp_1":   {"email"},
		"bSearchable_1": {"false"},
		"bSortable_1":   {"true"},
		"bSearchable_2": {"true"},
	}

	expected := []ColumnRequest{
		{Data: "id", Name: "user_id", Searchable: true, Orderable: false, Search: Search{Value: "4", Regex: true}},
		{Data: "email", Name: "email", Searchable: false, Orderable: true},
		{Data: "2", Name: "full_name", Searchable: true, Orderable: false},
	}

	actual, err := parseColumns(form)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("expected %+v, got %+v", expected, actual)
	}
}

func TestParseOrder(t *testing.T) {
	columns := []ColumnRequest{
		{Data: "id", Orderable: true},
		{Data: "name", Orderable: false},
		{Data: "age", Orderable: true},
	}

	tests := []struct {
		name     string
		form     url.Values
		expected []Order
	}{
		{
			name:     "multiple_columns",
			form:     url.Values{"iSortingCols": {"2"}, "iSortCol_0": {"2"}, "sSortDir_0": {"desc"}, "iSortCol_1": {"0"}, "sSortDir_1": {"asc"}},
			expected: []Order{{Column: 2, Dir: "desc"}, {Column: 0, Dir: "asc"}},
		},
		{
			name:     "non_orderable_column_falls_back",
			form:     url.Values{"iSortingCols": {"1"}, "iSortCol_0": {"1"}, "sSortDir_0": {"desc"}},
			expected: []Order{{Column: 0, Dir: "asc"}},
		},
		{
			name:     "invalid_index_skipped",
			form:     url.Values{"iSortingCols": {"2"}, "iSortCol_0": {"x"}, "iSortCol_1": {"2"}, "sSortDir_1": {"asc"}},
			expected: []Order{{Column: 2, Dir: "asc"}},
		},
		{
			name:     "no_sorting",
			form:     url.Values{},
			expected: []Order{{Column: 0, Dir: "asc"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := parseOrder(tt.form, columns)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !reflect.DeepEqual(actual, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, actual)
			}
		})
	}
}
