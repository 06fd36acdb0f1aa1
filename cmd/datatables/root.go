package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	datatables "github.com/ZihxS/golang-jquery-datatables"
)

var (
	optionsFile string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:          "datatables",
	Short:        "Render and serve jQuery DataTables from option files",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var level slog.Level
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&optionsFile, "options", "o", "", "YAML file with the table options")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(renderCmd, serveCmd)
}

// loadTable returns the options from --options, or the defaults.
func loadTable() (*datatables.TableConfig, error) {
	if optionsFile == "" {
		return datatables.NewTableConfig(), nil
	}
	table, err := datatables.LoadFile(optionsFile)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded table options", "file", optionsFile, "table", table.Name())
	return table, nil
}
