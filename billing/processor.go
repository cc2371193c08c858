// Package billing turns billing worksheet rows into lexoffice invoices.
package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lexoffice-tools/sheets-invoices/lexoffice"
)

type ContactResolver interface {
	FindContactID(ctx context.Context, email string) (string, error)
}

type InvoiceSubmitter interface {
	CreateInvoice(ctx context.Context, invoice lexoffice.Invoice) (string, error)
}

// Processor creates one invoice per valid worksheet row. Rows are processed strictly in order
// and a failed row never stops the batch.
type Processor struct {
	Settings Settings
	Contacts ContactResolver
	Invoices InvoiceSubmitter

	// DryRun builds and logs the invoices without creating them.
	DryRun bool
	Debug  bool

	// Now defaults to time.Now.
	Now func() time.Time
}

// Summary counts the row outcomes for a run. The header row is not counted.
type Summary struct {
	Rows    int
	Created int
	DryRun  int
	Skipped int
	Failed  int
}

type outcome int

const (
	created outcome = iota
	drafted
	skipped
	failed
)

// Process processes every row after the header row. It stops early only if the context is
// cancelled.
func (p *Processor) Process(ctx context.Context, rows [][]string) Summary {
	summary := Summary{}

	for index := 1; index < len(rows); index++ {
		if err := ctx.Err(); err != nil {
			warnf("processing cancelled at row %v (%v)", index, err)
			break
		}

		infof("Processing row index: %v", index)

		summary.Rows++
		switch p.processRow(ctx, index, Row(rows[index])) {
		case created:
			summary.Created++
		case drafted:
			summary.DryRun++
		case skipped:
			summary.Skipped++
		case failed:
			summary.Failed++
		}

		infof("Completed processing for row %v", index)
	}

	infof("Finished processing all rows")

	return summary
}

func (p *Processor) processRow(ctx context.Context, index int, row Row) outcome {
	if !row.has(ColumnService) || !row.has(ColumnPrice) {
		warnf("Data missing in row %v. Skipping...", index)
		return skipped
	}

	email := row.get(ColumnEmail)
	if email == "" {
		warnf("No email provided for row %v. Skipping...", index)
		return skipped
	}

	items, err := p.Settings.LineItems(row)
	if err != nil {
		warnf("Invalid data in row %v (%v). Skipping...", index, err)
		return skipped
	}

	contactID, err := p.Contacts.FindContactID(ctx, email)
	if err != nil {
		warnf("Contact ID not found for email: %v. Skipping row %v (%v)", email, index, err)
		return skipped
	}

	infof("Successfully retrieved contact ID for row %v: %v", index, contactID)

	invoice := p.Settings.Invoice(contactID, items, row, p.now())

	if p.DryRun || p.Debug {
		if b, err := json.MarshalIndent(invoice, "", "  "); err == nil {
			debugf("row %v invoice:\n%s", index, b)
		}
	}

	if p.DryRun {
		infof("Dry run - invoice for row %v not created", index)
		return drafted
	}

	id, err := p.Invoices.CreateInvoice(ctx, invoice)
	if err != nil {
		var status *lexoffice.StatusError

		switch {
		case errors.As(err, &status):
			errorf("Failed to create invoice for row %v. HTTP Code: %v. Response: %v", index, status.Status, status.Body)
		case errors.Is(err, lexoffice.ErrRateLimited):
			errorf("Failed to create invoice for row %v. Rate limit exceeded", index)
		default:
			errorf("Failed to create invoice for row %v (%v)", index, err)
		}

		return failed
	}

	infof("Invoice created successfully for row %v! Invoice ID: %v", index, id)

	return created
}

func (p *Processor) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}

	return time.Now()
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %v", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %v", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %v", "WARN", fmt.Sprintf(format, args...))
}

func errorf(format string, args ...any) {
	log.Printf("%-5s %v", "ERROR", fmt.Sprintf(format, args...))
}
