package export

import (
	"encoding/json"
	"fmt"
	"os"

	writerfile "github.com/xitongsys/parquet-go-source/writerfile"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/sicedia/sharepoint-2019-connect-api/pkg/logging"
)

// WriteParquet writes the table to path as a single Parquet file. Every
// column is an optional UTF8 field; cells keep the same rendering as CSV.
func WriteParquet(t Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	pfw := writerfile.NewWriterFile(f)
	pw, err := writer.NewJSONWriter(buildParquetSchema(t.Columns), pfw, 4)
	if err != nil {
		f.Close()
		return fmt.Errorf("parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, row := range t.Rows {
		rec := make(map[string]any, len(t.Columns))
		for i, col := range t.Columns {
			rec[col] = row[i]
		}
		// JSONWriter accepts rows as JSON-encoded strings only.
		enc, err := json.Marshal(rec)
		if err != nil {
			_ = pw.WriteStop()
			f.Close()
			return fmt.Errorf("encode row: %w", err)
		}
		if err := pw.Write(string(enc)); err != nil {
			_ = pw.WriteStop()
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		f.Close()
		return fmt.Errorf("finalize %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	logger := logging.NewLogger("export")
	logger.Info().
		Str("path", path).
		Int("items", len(t.Rows)).
		Msg("Data saved")
	return nil
}

func buildParquetSchema(columns []string) string {
	fields := make([]map[string]string, 0, len(columns))
	for _, c := range columns {
		fields = append(fields, map[string]string{
			"Tag": fmt.Sprintf("name=%s, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL", c),
		})
	}
	out := map[string]any{
		"Tag":    "name=parquet_go_root, repetitiontype=REQUIRED",
		"Fields": fields,
	}
	b, _ := json.Marshal(out)
	return string(b)
}
