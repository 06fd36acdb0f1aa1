package datatables

import (
	"strings"
	"text/template"
)

// Assets collects the stylesheets, scripts and document-ready snippets a
// page needs to display its tables, and renders them as markup for the
// document head.
//
// The zero value is ready to use. Lists keep insertion order; the Prepend
// methods insert at the front.
type Assets struct {
	cssFiles        []string
	javaScriptFiles []string
	readySnippets   []string
}

var headTemplate = template.Must(template.New("head").Parse(
	`{{range .CSS}}<link href="{{html .}}" media="screen" rel="stylesheet" type="text/css"/>
{{end}}{{range .JavaScript}}<script type="text/javascript" src="{{html .}}"></script>
{{end}}{{if .Ready}}<script type="text/javascript">
$(document).ready(function() {
{{range .Ready}}	{{.}}
{{end}}});
</script>
{{end}}`))

// CSSFiles returns the stylesheet URLs in output order.
func (a *Assets) CSSFiles() []string { return a.cssFiles }

// AppendCSSFile adds url after the listed stylesheets.
func (a *Assets) AppendCSSFile(url string) *Assets {
	a.cssFiles = append(a.cssFiles, url)
	return a
}

// PrependCSSFile adds url before the listed stylesheets.
func (a *Assets) PrependCSSFile(url string) *Assets {
	a.cssFiles = append([]string{url}, a.cssFiles...)
	return a
}

// JavaScriptFiles returns the script URLs in output order.
func (a *Assets) JavaScriptFiles() []string { return a.javaScriptFiles }

// AppendJavaScriptFile adds url after the listed scripts.
func (a *Assets) AppendJavaScriptFile(url string) *Assets {
	a.javaScriptFiles = append(a.javaScriptFiles, url)
	return a
}

// PrependJavaScriptFile adds url before the listed scripts.
func (a *Assets) PrependJavaScriptFile(url string) *Assets {
	a.javaScriptFiles = append([]string{url}, a.javaScriptFiles...)
	return a
}

// ReadySnippets returns the JavaScript snippets run once the document is
// ready, in output order.
func (a *Assets) ReadySnippets() []string { return a.readySnippets }

// AppendReadySnippet adds code after the listed ready snippets.
func (a *Assets) AppendReadySnippet(code string) *Assets {
	a.readySnippets = append(a.readySnippets, code)
	return a
}

// PrependReadySnippet adds code before the listed ready snippets.
func (a *Assets) PrependReadySnippet(code string) *Assets {
	a.readySnippets = append([]string{code}, a.readySnippets...)
	return a
}

// Head renders the link and script elements for the document head.
// URLs are HTML-escaped; snippets are written verbatim inside a single
// $(document).ready handler, which is omitted when there are no snippets.
func (a *Assets) Head() (string, error) {
	var b strings.Builder
	err := headTemplate.Execute(&b, struct {
		CSS        []string
		JavaScript []string
		Ready      []string
	}{a.cssFiles, a.javaScriptFiles, a.readySnippets})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
