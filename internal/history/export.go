package history

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Export file naming
const (
	ExportFilePrefix    = "power-triangle-"
	ExportFileExtension = ".csv"
	ExportTimeLayout    = "20060102-150405"
	ExportValueDecimals = 6
)

var exportHeader = []string{
	"recorded_at",
	"active_power_kw",
	"apparent_power_kva",
	"reactive_power_kvar",
	"power_factor",
	"angle_deg",
}

// ExportCSV writes all retained snapshots, oldest first, to a timestamped
// CSV file inside dir and returns the file path. Exporting an empty history
// is an error so the UI can tell the user instead of writing a header-only
// file.
func (s *Store) ExportCSV(dir string) (string, error) {
	snapshots := s.All()
	if len(snapshots) == 0 {
		return "", fmt.Errorf("history is empty, nothing to export")
	}

	name := ExportFilePrefix + time.Now().Format(ExportTimeLayout) + ExportFileExtension
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(exportHeader); err != nil {
		return "", fmt.Errorf("failed to write export header: %w", err)
	}

	// Store order is newest first; export reads better chronologically.
	for i := len(snapshots) - 1; i >= 0; i-- {
		snapshot := snapshots[i]
		r := snapshot.Result
		record := []string{
			snapshot.CreatedAt.Format(time.RFC3339),
			formatField(r.ActivePower),
			formatField(r.ApparentPower),
			formatField(r.ReactivePower),
			formatField(r.PowerFactor),
			formatField(r.AngleDegrees()),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("failed to write export record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush export file: %w", err)
	}
	return path, nil
}

func formatField(value float64) string {
	return strconv.FormatFloat(value, 'f', ExportValueDecimals, 64)
}
