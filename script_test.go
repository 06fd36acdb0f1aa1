package datatables

import (
	"strings"
	"testing"
)

func TestScript(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *TableConfig
		expected string
	}{
		{
			name:     "defaults",
			cfg:      NewTableConfig(),
			expected: `$("#dataTable").dataTable();`,
		},
		{
			name:     "name_only",
			cfg:      NewTableConfig().SetName("users"),
			expected: `$("#users").dataTable();`,
		},
		{
			name: "changed_options",
			cfg:  NewTableConfig().SetName("users").SetPaginate(false).SetDisplayLength(25).SetPaginationType(PaginationFullNumbers),
			expected: "$(\"#users\").dataTable({\n" +
				"\t\"bPaginate\": false,\n" +
				"\t\"iDisplayLength\": 25,\n" +
				"\t\"sPaginationType\": \"full_numbers\"\n" +
				"});",
		},
		{
			name: "themed",
			cfg:  NewTableConfig().SetThemed(true),
			expected: "$(\"#dataTable\").dataTable({\n" +
				"\t\"bJQueryUI\": true,\n" +
				"\t\"sDom\": \"\\u003c\\\"H\\\"lfr\\u003et\\u003c\\\"F\\\"ip\\u003e\"\n" +
				"});",
		},
		{
			name: "defer_loading_and_search",
			cfg:  NewTableConfig().SetDeferLoadingCount(57).SetSearchInitialState("abc"),
			expected: "$(\"#dataTable\").dataTable({\n" +
				"\t\"iDeferLoading\": 57,\n" +
				"\t\"oSearch\": {\"sSearch\":\"abc\"}\n" +
				"});",
		},
		{
			name: "callback",
			cfg:  NewTableConfig().SetDrawCallback("alert('drawn');").SetFormatNumberCallback("return iIn;"),
			expected: "$(\"#dataTable\").dataTable({\n" +
				"\t\"fnDrawCallback\": function(oSettings) { alert('drawn'); },\n" +
				"\t\"fnFormatNumber\": function(iIn) { return iIn; }\n" +
				"});",
		},
		{
			name: "column_source_text",
			cfg:  NewTableConfig().SetColumns(`{ "sWidth": "20%" }, null`),
			expected: "$(\"#dataTable\").dataTable({\n" +
				"\t\"aoColumns\": [{ \"sWidth\": \"20%\" }, null]\n" +
				"});",
		},
		{
			name: "column_values",
			cfg:  NewTableConfig().SetColumnDefs([]any{map[string]any{"aTargets": []int{0}, "bVisible": false}}),
			expected: "$(\"#dataTable\").dataTable({\n" +
				"\t\"aoColumnDefs\": [{\"aTargets\":[0],\"bVisible\":false}]\n" +
				"});",
		},
		{
			name:     "empty_column_text",
			cfg:      NewTableConfig().SetColumns(""),
			expected: `$("#dataTable").dataTable();`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := Script(tt.cfg)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if actual != tt.expected {
				t.Errorf("expected:\n%s\ngot:\n%s", tt.expected, actual)
			}
		})
	}
}

func TestScriptUnencodableValue(t *testing.T) {
	_, err := Script(NewTableConfig().SetColumns([]any{make(chan int)}))
	if err == nil || !strings.Contains(err.Error(), "columns") {
		t.Errorf("expected error naming the option, got %v", err)
	}
}

func TestTableMarkup(t *testing.T) {
	actual, err := TableMarkup(NewTableConfig().SetName("users"), "ID", "Name & Email")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := "<table id=\"users\" class=\"display\">\n" +
		"<thead>\n" +
		"<tr>\n" +
		"<th>ID</th>\n" +
		"<th>Name &amp; Email</th>\n" +
		"</tr>\n" +
		"</thead>\n" +
		"<tbody>\n" +
		"</tbody>\n" +
		"</table>\n"
	if actual != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, actual)
	}
}

func TestRender(t *testing.T) {
	assets := (&Assets{}).AppendJavaScriptFile("/jquery.js")

	actual, err := Render(NewTableConfig().SetInfo(false), assets)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := "<script type=\"text/javascript\" src=\"/jquery.js\"></script>\n" +
		"<script type=\"text/javascript\">\n" +
		"$(document).ready(function() {\n" +
		"\t$(\"#dataTable\").dataTable({\n" +
		"\t\"bInfo\": false\n" +
		"});\n" +
		"});\n" +
		"</script>\n"
	if actual != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, actual)
	}
	if len(assets.ReadySnippets()) != 1 {
		t.Errorf("expected script to be added to assets, got %v", assets.ReadySnippets())
	}
}
