package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteParquet(t *testing.T) {
	table := Table{
		Columns: []string{"Id", "Title"},
		Rows: [][]string{
			{"1", "A"},
			{"2", "B"},
		},
	}

	path := filepath.Join(t.TempDir(), "out.parquet")
	if err := WriteParquet(table, path); err != nil {
		t.Fatalf("WriteParquet() unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() unexpected error: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Parquet file should not be empty")
	}
}

func TestBuildParquetSchema(t *testing.T) {
	schema := buildParquetSchema([]string{"Id", "Title"})

	for _, want := range []string{"parquet_go_root", "name=Id", "name=Title", "convertedtype=UTF8"} {
		if !strings.Contains(schema, want) {
			t.Errorf("Schema %q missing %q", schema, want)
		}
	}
}
