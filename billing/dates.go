package billing

import (
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/lexoffice-tools/sheets-invoices/lexoffice"
)

// ISO8601 is the lexoffice timestamp layout.
const ISO8601 = "2006-01-02T15:04:05.000-07:00"

// CEST is the fixed offset of the shipping date timestamps.
var CEST = time.FixedZone("CEST", 2*60*60)

// Berlin is the local time zone that decides the calendar date of "today" and the offset of the
// voucher date.
var Berlin = berlin()

// ParseDate converts a dd.mm.yyyy date into an ISO 8601 timestamp at midnight. A malformed date
// falls back to the calendar date of today in its own location.
func ParseDate(s string, today time.Time, zone *time.Location) string {
	if date, ok := parseDate(s, zone); ok {
		return date.Format(ISO8601)
	}

	return midnight(today, zone).Format(ISO8601)
}

// Shipping derives the service date (one date) or service period (two or more comma separated
// dates, first to last) from the dates column. An empty column is a service on today's date.
func Shipping(dates string, today time.Time, zone *time.Location) lexoffice.ShippingConditions {
	if strings.TrimSpace(dates) == "" {
		date := midnight(today, zone).Format(ISO8601)

		return lexoffice.ShippingConditions{
			ShippingDate:    date,
			ShippingEndDate: date,
			ShippingType:    lexoffice.ShippingService,
		}
	}

	tokens := strings.Split(dates, ",")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	if len(tokens) > 1 {
		return lexoffice.ShippingConditions{
			ShippingDate:    ParseDate(tokens[0], today, zone),
			ShippingEndDate: ParseDate(tokens[len(tokens)-1], today, zone),
			ShippingType:    lexoffice.ShippingServicePeriod,
		}
	}

	date := ParseDate(tokens[0], today, zone)

	return lexoffice.ShippingConditions{
		ShippingDate:    date,
		ShippingEndDate: date,
		ShippingType:    lexoffice.ShippingService,
	}
}

func parseDate(s string, zone *time.Location) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, false
	}

	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, false
	}

	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil || year < 1 || year > 9999 {
		return time.Time{}, false
	}

	// time.Date normalises out of range values e.g. 31.02 -> 02.03
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, zone)
	if date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return time.Time{}, false
	}

	return date, true
}

// midnight keeps the calendar date of t in t's location and moves it to midnight in zone.
func midnight(t time.Time, zone *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, zone)
}

func berlin() *time.Location {
	if location, err := time.LoadLocation("Europe/Berlin"); err == nil {
		return location
	}

	return CEST
}
