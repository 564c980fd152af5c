package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/sicedia/sharepoint-2019-connect-api/pkg/logging"
)

// Filename derives a filesystem-safe file name from the list display title:
// characters other than letters, digits, spaces, hyphens and underscores are
// stripped, trailing spaces trimmed, remaining spaces become underscores.
func Filename(listTitle, ext string) string {
	var b strings.Builder
	for _, r := range listTitle {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	name := strings.TrimRight(b.String(), " ")
	name = strings.ReplaceAll(name, " ", "_")
	return name + ext
}

// WriteCSV writes the table to path: a header row of column names followed
// by one row per record. An empty table produces an empty file.
func WriteCSV(t Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if len(t.Columns) > 0 {
		if err := w.Write(t.Columns); err != nil {
			f.Close()
			return fmt.Errorf("write header: %w", err)
		}
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
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
