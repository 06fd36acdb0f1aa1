package datatables

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// Handler returns an http.Handler answering the server-side requests of
// table from tx.
//
// Requests must use the table's server method; others get 405. Malformed
// requests get 400. configure, when not nil, is called on every request's
// Processor after the table options and the request are applied, to set the
// model, columns, filters and so on.
func Handler(tx *gorm.DB, table TableView, configure func(*Processor)) http.Handler {
	method := strings.ToUpper(table.ServerMethod())
	if method == "" {
		method = ServerMethodGet
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
			return
		}

		req, err := ParseRequest(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		db := tx
		if db != nil {
			db = db.WithContext(r.Context())
		}
		p := New(db).Options(table).Req(*req)
		if configure != nil {
			configure(p)
		}

		resp, err := p.Make()
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, ErrInvalidRequest) {
				status = http.StatusBadRequest
			}
			writeJSON(w, status, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, resp)
	})
}

// writeJSON encodes data before writing the header so an encoding failure
// still produces a well-formed 500 response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
