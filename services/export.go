package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"researchflow/models"
)

var exportHeader = []string{"id", "title", "status", "version", "updated_at"}

// WriteArticlesCSV writes one row per article after a header row.
func WriteArticlesCSV(w io.Writer, articles []models.Article) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, a := range articles {
		row := []string{
			a.ID,
			a.Title,
			a.CurrentStatus.Label(),
			strconv.Itoa(a.CurrentVersionNumber),
			a.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", a.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
