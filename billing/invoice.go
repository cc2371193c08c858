package billing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lexoffice-tools/sheets-invoices/lexoffice"
)

// ErrEmptyPrice is returned for a row whose unit price cell is present but blank.
var ErrEmptyPrice = errors.New("empty unit price")

// Settings are the fixed values applied to every invoice built from the worksheet.
type Settings struct {
	Currency     string
	TaxRate      float64
	UnitName     string
	FeeLabel     string
	Title        string
	Introduction string
	Remark       string
	Location     *time.Location
}

func DefaultSettings() Settings {
	return Settings{
		Currency:     "EUR",
		TaxRate:      19,
		UnitName:     "Stück",
		FeeLabel:     "KSK Gebühr",
		Title:        "Rechnung",
		Introduction: "Ihre bestellten Positionen stellen wir Ihnen hiermit in Rechnung",
		Remark:       "Vielen Dank für Ihren Einkauf",
		Location:     Berlin,
	}
}

// LineItems returns the service line item and, if the fee column is set, the fee line item.
func (s Settings) LineItems(row Row) ([]lexoffice.LineItem, error) {
	if row.get(ColumnPrice) == "" {
		return nil, ErrEmptyPrice
	}

	price, err := ParseAmount(row.get(ColumnPrice))
	if err != nil {
		return nil, fmt.Errorf("invalid unit price '%v' (%w)", row.get(ColumnPrice), err)
	}

	items := []lexoffice.LineItem{s.item(row.Label(), price)}

	if fee := row.get(ColumnFee); fee != "" {
		amount, err := ParseAmount(fee)
		if err != nil {
			return nil, fmt.Errorf("invalid fee '%v' (%w)", fee, err)
		}

		items = append(items, s.item(s.FeeLabel, amount))
	}

	return items, nil
}

// Invoice assembles the draft invoice for the contact. The voucher date is today's midnight in the
// settings location and the shipping dates carry the fixed CEST offset.
func (s Settings) Invoice(contactID string, items []lexoffice.LineItem, row Row, now time.Time) lexoffice.Invoice {
	location := s.location()
	today := now.In(location)

	return lexoffice.Invoice{
		Archived:    false,
		VoucherDate: midnight(today, location).Format(ISO8601),
		Address: lexoffice.Address{
			ContactID: contactID,
		},
		LineItems: items,
		TotalPrice: lexoffice.TotalPrice{
			Currency: s.Currency,
		},
		TaxConditions: lexoffice.TaxConditions{
			TaxType: lexoffice.TaxTypeNet,
		},
		ShippingConditions: Shipping(row.get(ColumnDates), today, CEST),
		Title:              s.Title,
		Introduction:       s.Introduction,
		Remark:             s.Remark,
	}
}

func (s Settings) item(name string, amount decimal.Decimal) lexoffice.LineItem {
	return lexoffice.LineItem{
		Type:     lexoffice.LineItemCustom,
		Name:     name,
		Quantity: 1,
		UnitName: s.UnitName,
		UnitPrice: lexoffice.UnitPrice{
			Currency:          s.Currency,
			NetAmount:         amount.InexactFloat64(),
			TaxRatePercentage: s.TaxRate,
		},
		DiscountPercentage: 0,
	}
}

func (s Settings) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}

	return Berlin
}

// ParseAmount parses a worksheet amount, accepting an optional € sign and a German decimal comma
// e.g. "1.234,50 €".
func ParseAmount(s string) (decimal.Decimal, error) {
	v := strings.ReplaceAll(s, "€", "")
	v = strings.ReplaceAll(v, " ", "")

	if comma := strings.LastIndex(v, ","); comma >= 0 && comma > strings.LastIndex(v, ".") {
		v = strings.ReplaceAll(v[:comma], ".", "") + "." + v[comma+1:]
	} else {
		v = strings.ReplaceAll(v, ",", "")
	}

	return decimal.NewFromString(v)
}
