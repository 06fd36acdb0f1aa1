package main

import (
	"fmt"

	"github.com/spf13/cobra"

	datatables "github.com/ZihxS/golang-jquery-datatables"
)

var (
	cssFiles        []string
	javaScriptFiles []string
	headers         []string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the head markup and table element for the table options",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}
		head, markup, err := renderPage(table, cssFiles, javaScriptFiles, headers)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), head+markup)
		return err
	},
}

func init() {
	for _, cmd := range []*cobra.Command{renderCmd, serveCmd} {
		cmd.Flags().StringSliceVar(&cssFiles, "css", []string{"//cdn.datatables.net/1.9.4/css/jquery.dataTables.css"}, "stylesheet URLs")
		cmd.Flags().StringSliceVar(&javaScriptFiles, "js", []string{
			"//code.jquery.com/jquery-1.8.3.min.js",
			"//cdn.datatables.net/1.9.4/js/jquery.dataTables.min.js",
		}, "script URLs, in load order")
		cmd.Flags().StringSliceVar(&headers, "headers", nil, "table header cells")
	}
}

// renderPage returns the head markup, including the initialisation script,
// and the table element for table.
func renderPage(table datatables.TableView, css, js, headers []string) (string, string, error) {
	var assets datatables.Assets
	for _, f := range css {
		assets.AppendCSSFile(f)
	}
	for _, f := range js {
		assets.AppendJavaScriptFile(f)
	}

	head, err := datatables.Render(table, &assets)
	if err != nil {
		return "", "", fmt.Errorf("render head: %w", err)
	}
	markup, err := datatables.TableMarkup(table, headers...)
	if err != nil {
		return "", "", fmt.Errorf("render table: %w", err)
	}
	return head, markup, nil
}
