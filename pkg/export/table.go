// Package export turns cleaned list records into tabular artifacts: an
// in-memory table, CSV or Parquet files, and a console preview.
package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/sicedia/sharepoint-2019-connect-api/pkg/logging"
	"github.com/sicedia/sharepoint-2019-connect-api/pkg/sharepoint"
)

// Table is a flat view over a record set. Columns are the union of the keys
// seen across all records; records missing a column get an empty cell.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// ToTable assembles a table from cleaned records, one row per record in
// input order. Columns appear in the order records introduce them,
// alphabetically within a single record. An empty record set is not an
// error: it produces an empty table and a logged warning.
func ToTable(records []sharepoint.Record) Table {
	if len(records) == 0 {
		logger := logging.NewLogger("export")
		logger.Warn().Msg("No items were retrieved from the list")
		return Table{}
	}

	var columns []string
	index := make(map[string]int)
	for _, rec := range records {
		var unseen []string
		for k := range rec {
			if _, ok := index[k]; !ok {
				unseen = append(unseen, k)
			}
		}
		sort.Strings(unseen)
		for _, k := range unseen {
			index[k] = len(columns)
			columns = append(columns, k)
		}
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(columns))
		for k, v := range rec {
			row[index[k]] = renderCell(v)
		}
		rows = append(rows, row)
	}

	return Table{Columns: columns, Rows: rows}
}

// renderCell converts a JSON value to its cell representation. Scalars are
// rendered plainly, null becomes an empty cell, arrays and objects keep
// their JSON encoding.
func renderCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(b)
	}
}
