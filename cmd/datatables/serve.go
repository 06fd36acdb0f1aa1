package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	datatables "github.com/ZihxS/golang-jquery-datatables"
)

const defaultDataPath = "/data"

var (
	listenAddr string
	dsn        string
	sqlTable   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a page with the table and answer its server-side requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}
		if dsn == "" {
			return errors.New("--dsn is required")
		}
		if sqlTable == "" {
			return errors.New("--table is required")
		}

		db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}

		router, err := newRouter(db, table, sqlTable)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              listenAddr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			slog.Info("listening", "addr", listenAddr, "table", sqlTable)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			slog.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&dsn, "dsn", "", "MySQL DSN, e.g. user:pass@tcp(localhost:3306)/db")
	serveCmd.Flags().StringVar(&sqlTable, "table", "", "SQL table the rows are read from")
}

// newRouter mounts the page at / and the server-side handler at the path of
// the table's ajaxSource. The served page always uses server-side
// processing against that path. Without columns in the options, the
// --headers name the SQL columns the page requests.
func newRouter(db *gorm.DB, table *datatables.TableConfig, sqlTable string) (chi.Router, error) {
	method := strings.ToUpper(table.ServerMethod())
	if method != datatables.ServerMethodGet && method != datatables.ServerMethodPost {
		return nil, fmt.Errorf("unsupported server method %q", table.ServerMethod())
	}

	page := table.Clone().SetServerSide(true)
	if !hasColumns(page.Columns()) {
		if len(headers) == 0 {
			return nil, errors.New("the options define no columns: set columns or pass --headers with the SQL column names")
		}
		page.SetColumns(headerColumns(headers))
	}
	path := dataPath(page.AjaxSource())
	if page.AjaxSource() == "" {
		page.SetAjaxSource(path)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		head, markup, err := renderPage(page, cssFiles, javaScriptFiles, headers)
		if err != nil {
			slog.Error("render page failed", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n%s</head>\n<body>\n%s</body>\n</html>\n", head, markup)
	})

	r.Method(method, path, datatables.Handler(db, page, func(p *datatables.Processor) {
		p.Model(sqlTable)
	}))

	return r, nil
}

func hasColumns(v any) bool {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return v != nil
}

// headerColumns maps each header to the SQL column of the same name.
func headerColumns(headers []string) []map[string]string {
	columns := make([]map[string]string, 0, len(headers))
	for _, h := range headers {
		columns = append(columns, map[string]string{"mData": h, "sName": h})
	}
	return columns
}

// dataPath returns the path component of an ajaxSource URL.
func dataPath(source string) string {
	if source == "" {
		return defaultDataPath
	}
	u, err := url.Parse(source)
	if err != nil || u.Path == "" {
		return defaultDataPath
	}
	return u.Path
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
