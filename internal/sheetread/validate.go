package sheetread

import (
	"fmt"
	"strings"

	"tripload/internal/model"
)

// ValidateColumns checks that the export carries the identifying columns
// and every configured date column.
func ValidateColumns(columns []string, dateCols []model.DateColumn) error {
	present := make(map[string]bool)
	for _, c := range columns {
		present[strings.ToLower(c)] = true
	}

	required := []string{"status", "produto"}
	for _, col := range required {
		if !present[col] {
			return fmt.Errorf("missing required column: %s", col)
		}
	}

	var missing []string
	for _, dc := range dateCols {
		if !present[dc.Name] {
			missing = append(missing, dc.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing configured date columns: %s", strings.Join(missing, ", "))
	}

	return nil
}
