// Command datatables renders jQuery DataTables pages from YAML option files
// and serves their server-side requests from a MySQL table.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
