package datatables

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"text/template"
)

var tableTemplate = template.Must(template.New("table").Parse(
	`<table id="{{html .ID}}" class="display">
<thead>
<tr>
{{range .Headers}}<th>{{html .}}</th>
{{end}}</tr>
</thead>
<tbody>
</tbody>
</table>
`))

// Script returns the JavaScript statement that initialises the plugin on the
// table element named by view.
//
// Only options whose value differs from the default are written, using the
// plugin's option names. Callback bodies are wrapped in a function with the
// parameters the plugin passes to that callback. Column descriptors given as
// source text are wrapped in an array literal; structured descriptors are
// encoded as JSON.
func Script(view TableView) (string, error) {
	defaults := NewTableConfig()

	var entries []string
	for i := range optionTable {
		o := &optionTable[i]
		if o.plugin == "" {
			continue
		}
		value := o.get(view)
		if o.omit(value, o.get(defaults)) {
			continue
		}
		literal, err := o.literal(value)
		if err != nil {
			return "", fmt.Errorf("render option %s: %w", o.key, err)
		}
		entries = append(entries, "\t"+jsString(o.plugin)+": "+literal)
	}

	selector := jsString("#" + view.Name())
	if len(entries) == 0 {
		return "$(" + selector + ").dataTable();", nil
	}
	return "$(" + selector + ").dataTable({\n" + strings.Join(entries, ",\n") + "\n});", nil
}

// TableMarkup returns the table element the plugin is attached to, with one
// header cell per entry in headers.
func TableMarkup(view TableView, headers ...string) (string, error) {
	var b strings.Builder
	err := tableTemplate.Execute(&b, struct {
		ID      string
		Headers []string
	}{view.Name(), headers})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// Render adds the initialisation script for view to assets and returns the
// resulting head markup.
func Render(view TableView, assets *Assets) (string, error) {
	script, err := Script(view)
	if err != nil {
		return "", err
	}
	return assets.AppendReadySnippet(script).Head()
}

func (o *option) omit(value, def any) bool {
	if reflect.DeepEqual(value, def) {
		return true
	}
	s, ok := value.(string)
	return ok && s == "" && o.kind == kindStructured
}

func (o *option) literal(value any) (string, error) {
	switch o.kind {
	case kindCallback:
		return "function(" + o.params + ") { " + value.(string) + " }", nil
	case kindSearch:
		return jsonLiteral(map[string]string{"sSearch": value.(string)})
	case kindStructured:
		if s, ok := value.(string); ok {
			return "[" + s + "]", nil
		}
	}
	return jsonLiteral(value)
}

func jsonLiteral(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// jsString quotes s as a JavaScript string literal. JSON escaping keeps the
// result safe inside a script element.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
