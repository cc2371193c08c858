package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// WriteTSV writes the header row and every non-blank data row as tab separated values. Short rows
// are padded to the header width so that every record has the same number of columns.
func WriteTSV(f io.Writer, rows [][]string) error {
	if len(rows) == 0 {
		return fmt.Errorf("empty sheet")
	}

	// ... header
	header := make([]string, len(rows[0]))
	for i, v := range rows[0] {
		header[i] = clean(v)
	}

	if len(header) == 0 {
		return fmt.Errorf("missing/invalid header row")
	}

	// ... records
	records := [][]string{}
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}

		width := len(header)
		if len(row) > width {
			width = len(row)
		}

		record := make([]string, width)
		for i, v := range row {
			record[i] = clean(v)
		}

		records = append(records, record)
	}

	// ... write to file
	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(header); err != nil {
		return err
	}

	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

func blank(row []string) bool {
	for _, v := range row {
		if clean(v) != "" {
			return false
		}
	}

	return true
}

func clean(v string) string {
	return strings.TrimSpace(v)
}
