package datatables

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	doc := `
name: users
themed: true
serverSide: true
ajaxSource: /users/data
deferLoadingCount: ~
displayLength: 25
drawCallback: |
  console.log(oSettings.fnRecordsDisplay());
columns:
  - mData: id
  - mData: name
    bSortable: false
`
	cfg, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	assertValues(t, cfg, map[string]any{
		"name":              "users",
		"themed":            true,
		"layoutTemplate":    LayoutThemed,
		"serverSide":        true,
		"ajaxSource":        "/users/data",
		"deferLoadingCount": nil,
		"displayLength":     25,
		"drawCallback":      "console.log(oSettings.fnRecordsDisplay());\n",
	})

	expectedColumns := []any{
		map[string]any{"mData": "id"},
		map[string]any{"mData": "name", "bSortable": false},
	}
	if !reflect.DeepEqual(cfg.Columns(), expectedColumns) {
		t.Errorf("expected columns %#v, got %#v", expectedColumns, cfg.Columns())
	}
}

func TestLoadKeepsDocumentOrder(t *testing.T) {
	tests := []struct {
		name           string
		doc            string
		expectedLayout string
	}{
		{"layout_then_themed", "layoutTemplate: lfrtip\nthemed: true\n", LayoutThemed},
		{"themed_then_layout", "themed: true\nlayoutTemplate: lfrtip\n", LayoutPlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(strings.NewReader(tt.doc))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if cfg.LayoutTemplate() != tt.expectedLayout {
				t.Errorf("expected layout %q, got %q", tt.expectedLayout, cfg.LayoutTemplate())
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name        string
		doc         string
		expectedErr error
	}{
		{"sequence_root", "- paginate\n- filter\n", ErrInvalidInput},
		{"scalar_root", "just text\n", ErrInvalidInput},
		{"unknown_key", "bPaginate: false\n", ErrUnknownOption},
		{"bad_value", "displayLength: [1, 2]\n", ErrInvalidInput},
		{"fractional_number", "displayLength: 20.5\n", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(strings.NewReader(tt.doc))
			if cfg != nil {
				t.Errorf("expected no configuration, got %+v", cfg)
			}
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestLoadEmptyDocument(t *testing.T) {
	cfg, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(cfg, NewTableConfig()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	if err := os.WriteFile(path, []byte("paginationType: full_numbers\n"), 0o600); err != nil {
		t.Fatalf("failed to write options file: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.PaginationType() != PaginationFullNumbers {
		t.Errorf("expected %q, got %q", PaginationFullNumbers, cfg.PaginationType())
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
