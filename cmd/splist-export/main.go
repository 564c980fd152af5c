// Command splist-export downloads the items of a SharePoint list and writes
// the cleaned records to a CSV or Parquet file, with a short console preview.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/sicedia/sharepoint-2019-connect-api/pkg/client"
	"github.com/sicedia/sharepoint-2019-connect-api/pkg/config"
	"github.com/sicedia/sharepoint-2019-connect-api/pkg/export"
	"github.com/sicedia/sharepoint-2019-connect-api/pkg/logging"
	"github.com/sicedia/sharepoint-2019-connect-api/pkg/sharepoint"
)

func main() {
	limit := flag.Int("limit", 0, "maximum number of items to fetch (0 = all items, paginated)")
	format := flag.String("format", "csv", "output format: csv or parquet")
	out := flag.String("out", "", "output file path (default: derived from the list title)")
	previewRows := flag.Int("preview", 5, "number of rows to preview on stdout")
	pretty := flag.Bool("pretty", false, "human-readable console logging")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	// A .env file is optional; the environment itself takes precedence.
	_ = godotenv.Load()

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(*logLevel),
		Pretty: *pretty,
		Output: os.Stderr,
	})

	cfg := config.FromEnv()

	path, err := exportPath(*format, *out, cfg.ListTitle)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid arguments")
	}

	spClient, err := client.New(client.Config{
		SiteURL:  cfg.SiteURL,
		Username: cfg.Username,
		Password: cfg.Password,
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create SharePoint session")
	}

	list := sharepoint.NewList(spClient, cfg.SiteURL, cfg.ListTitle)

	ctx := context.Background()
	var records []sharepoint.Record
	if *limit > 0 {
		records, err = list.GetItemsWithLimit(ctx, *limit)
	} else {
		records, err = list.GetAllItems(ctx)
	}
	if err != nil {
		var reqErr *client.RequestError
		if errors.As(err, &reqErr) && reqErr.StatusCode != 0 {
			logger.Fatal().Int("status", reqErr.StatusCode).Err(err).Msg("Fetch failed")
		}
		logger.Fatal().Err(err).Msg("Fetch failed")
	}

	table := export.ToTable(records)
	export.Preview(os.Stdout, table, *previewRows)

	switch *format {
	case "csv":
		err = export.WriteCSV(table, path)
	case "parquet":
		err = export.WriteParquet(table, path)
	}
	if err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("Failed to write output")
	}
}

// exportPath resolves the output file path for the chosen format. An empty
// override derives the name from the list title.
func exportPath(format, override, listTitle string) (string, error) {
	var ext string
	switch format {
	case "csv":
		ext = ".csv"
	case "parquet":
		ext = ".parquet"
	default:
		return "", fmt.Errorf("unknown output format %q (expected csv or parquet)", format)
	}
	if override != "" {
		return override, nil
	}
	return export.Filename(listTitle, ext), nil
}
