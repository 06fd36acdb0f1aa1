package datatables

import (
	"strconv"
)

// indexed returns the name of the n-th instance of an indexed request
// parameter, e.g. indexed("mDataProp", 2) is "mDataProp_2".
func indexed(param string, n int) string {
	return param + "_" + strconv.Itoa(n)
}

// isArrayIndex reports whether s is a non-negative integer, the data
// property the plugin sends for columns without mData.
func isArrayIndex(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0
}

// normalizeRows converts int64 values, as returned by database drivers, to
// int so rows compare and encode the same way regardless of driver.
// It returns nil if rows is nil.
func normalizeRows(rows []map[string]any) []map[string]any {
	if rows == nil {
		return nil
	}
	normalized := make([]map[string]any, len(rows))
	for i, row := range rows {
		normalized[i] = make(map[string]any, len(row))
		for key, value := range row {
			switch v := value.(type) {
			case int64:
				normalized[i][key] = int(v)
			case []byte:
				normalized[i][key] = string(v)
			default:
				normalized[i][key] = value
			}
		}
	}
	return normalized
}
