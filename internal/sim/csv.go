package sim

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteHistoryCSV writes a run history as CSV, one row per snapshot. The
// column set covers every key seen anywhere in the history; snapshots taken
// before a given extension key existed get an empty cell for it.
func WriteHistoryCSV(path string, history History) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	columns := history.Columns()
	header := append([]string{"period"}, columns...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i, snap := range history {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(i))
		for _, col := range columns {
			v, ok := snap[col]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, fmtFloat(v))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
