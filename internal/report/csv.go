package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

var csvHeader = []string{"cycle", "living", "burning", "ash", "empty", "changes", "cumulative"}

// WriteCSV writes one row per recorded cycle.
func (h *History) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range h.Records {
		row := []string{
			strconv.Itoa(r.Cycle),
			strconv.Itoa(r.Living),
			strconv.Itoa(r.Burning),
			strconv.Itoa(r.Ash),
			strconv.Itoa(r.Empty),
			strconv.Itoa(r.Changes),
			strconv.Itoa(r.Cumulative),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the history to path.
func (h *History) SaveCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := h.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
