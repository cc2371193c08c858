package sheet

import (
	"fmt"
)

// Rows converts the Sheets API values into rows of strings. Rows keep their ragged length since
// the API omits trailing empty cells.
func Rows(values [][]any) [][]string {
	rows := make([][]string, 0, len(values))

	for _, row := range values {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = cell(v)
		}

		rows = append(rows, record)
	}

	return rows
}

func cell(v any) string {
	switch s := v.(type) {
	case nil:
		return ""

	case string:
		return s

	default:
		return fmt.Sprintf("%v", s)
	}
}
