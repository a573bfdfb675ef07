// Package delivery serializes the run's records and hands the artifact to
// the configured collaborators: local CSV, S3 upload, email, and Kafka.
package delivery

import (
	"encoding/csv"
	"fmt"
	"os"

	"newsharvest/types"
)

// csvHeader fixes the output field order.
var csvHeader = []string{"site", "url", "title", "authors", "summary", "text", "publish_date", "category"}

// WriteCSV persists records to path as delimited text with a header row.
func WriteCSV(path string, records []types.ArticleRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{r.Site, r.URL, r.Title, r.Authors, r.Summary, r.Text, r.PublishDate, r.Category}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row for %s: %w", r.URL, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}
