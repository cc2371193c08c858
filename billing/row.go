package billing

import (
	"strings"
)

// Billing worksheet columns. Column 0 is not used.
const (
	ColumnItem        = 1
	ColumnEmail       = 2
	ColumnDates       = 3
	ColumnService     = 4
	ColumnPrice       = 5
	ColumnFee         = 6
	ColumnDescription = 7
)

// Row is a single worksheet row. The Sheets API omits trailing empty cells so a row may be shorter
// than the header.
type Row []string

func (r Row) has(column int) bool {
	return column >= 0 && column < len(r)
}

func (r Row) get(column int) string {
	if r.has(column) {
		return strings.TrimSpace(r[column])
	}

	return ""
}

// Label is the invoice line item name: the description column if set, otherwise
// "@<item> <service> am <dates>".
func (r Row) Label() string {
	if description := r.get(ColumnDescription); description != "" {
		return description
	}

	return "@" + r.get(ColumnItem) + " " + r.get(ColumnService) + " am " + r.get(ColumnDates)
}
