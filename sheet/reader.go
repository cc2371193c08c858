// Package sheet reads the billing worksheet from Google Sheets.
package sheet

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Reader fetches the cell values for a single spreadsheet range.
type Reader struct {
	google      *sheets.Service
	spreadsheet string
	area        string
}

// NewReader creates a Sheets v4 client for the spreadsheet range. The client options select the
// authentication e.g. option.WithAPIKey or option.WithHTTPClient for an OAuth2 client.
func NewReader(ctx context.Context, spreadsheet, area string, opts ...option.ClientOption) (*Reader, error) {
	id, err := SpreadsheetID(spreadsheet)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(area) == "" {
		return nil, fmt.Errorf("missing spreadsheet range")
	}

	google, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	return &Reader{
		google:      google,
		spreadsheet: id,
		area:        strings.TrimSpace(area),
	}, nil
}

// Read returns the rows in the range. Errors reported by the Sheets API are logged and returned
// as an empty table.
func (r *Reader) Read(ctx context.Context) [][]string {
	response, err := r.google.Spreadsheets.Values.Get(r.spreadsheet, r.area).Context(ctx).Do()
	if err != nil {
		var apierr *googleapi.Error
		if errors.As(err, &apierr) && apierr.Message != "" {
			log.Printf("%-5s %v", "ERROR", apierr.Message)
		} else {
			log.Printf("%-5s unable to retrieve data from sheet (%v)", "ERROR", err)
		}

		return [][]string{}
	}

	return Rows(response.Values)
}

// SpreadsheetID accepts either a bare spreadsheet ID or a Google Sheets URL.
func SpreadsheetID(spreadsheet string) (string, error) {
	s := strings.TrimSpace(spreadsheet)
	if s == "" {
		return "", fmt.Errorf("missing spreadsheet ID")
	}

	if !strings.HasPrefix(s, "https://") {
		return s, nil
	}

	match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(s)
	if len(match) < 2 || match[1] == "" {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}
