package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/google/uuid"

	"github.com/lexoffice-tools/sheets-invoices/billing"
	"github.com/lexoffice-tools/sheets-invoices/sheet"
)

var ErrNoData = errors.New("no data found in Google Sheets")

var CreateInvoicesCmd = CreateInvoices{
	command: command{
		config:      DEFAULT_CONFIG,
		spreadsheet: "",
		area:        "",
		debug:       false,
	},

	dryrun: false,
}

type CreateInvoices struct {
	command
	dryrun bool
}

func (cmd *CreateInvoices) Name() string {
	return "create-invoices"
}

func (cmd *CreateInvoices) Description() string {
	return "Creates a draft lexoffice invoice for each row of a Google Sheets worksheet"
}

func (cmd *CreateInvoices) Usage() string {
	return "[--config <file>] [--spreadsheet <ID|URL>] [--range <range>] [--dry-run]"
}

func (cmd *CreateInvoices) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] create-invoices [options]\n", APP)
	fmt.Println()
	fmt.Println("  Reads the billing rows from a Google Sheets worksheet, looks up the lexoffice contact for each")
	fmt.Println("  row by email and creates a draft invoice for the row. The first row is a header and is skipped.")
	fmt.Println()
	fmt.Println("  Re-running the command over the same worksheet creates the invoices again.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-invoices create-invoices --config "sheets-invoices.yaml"`)
	fmt.Println(`    sheets-invoices --debug create-invoices --range "Billing!A1:H" --dry-run`)
	fmt.Println()
}

func (cmd *CreateInvoices) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("create-invoices")

	flagset.BoolVar(&cmd.dryrun, "dry-run", cmd.dryrun, "Builds and logs the invoices without creating them in lexoffice")

	return flagset
}

func (cmd *CreateInvoices) Execute(ctx context.Context, options *Options) error {
	cmd.debug = options.Debug

	conf, err := cmd.load()
	if err != nil {
		return err
	}

	if err := conf.Validate(); err != nil {
		return err
	}

	reader, err := cmd.reader(ctx, conf)
	if err != nil {
		return err
	}

	run := uuid.New()
	infof("%v  create-invoices  spreadsheet:%v  range:%v  dry-run:%v", run, conf.Spreadsheet, conf.Range, cmd.dryrun)

	client := lexofficeClient(ctx, conf)
	processor := billing.Processor{
		Settings: billing.Settings{
			Currency:     conf.Invoice.Currency,
			TaxRate:      conf.Invoice.TaxRate,
			UnitName:     conf.Invoice.UnitName,
			FeeLabel:     conf.Invoice.FeeLabel,
			Title:        conf.Invoice.Title,
			Introduction: conf.Invoice.Introduction,
			Remark:       conf.Invoice.Remark,
			Location:     billing.Berlin,
		},
		Contacts: client,
		Invoices: client,
		DryRun:   cmd.dryrun,
		Debug:    cmd.debug,
	}

	summary, err := createInvoices(ctx, run, reader, &processor)
	if err != nil {
		return err
	}

	infof("%v  rows:%v  created:%v  dry-run:%v  skipped:%v  failed:%v",
		run, summary.Rows, summary.Created, summary.DryRun, summary.Skipped, summary.Failed)

	return ctx.Err()
}

// createInvoices reads the worksheet and processes its rows. An empty (or unreadable) worksheet
// aborts the run before any row is processed.
func createInvoices(ctx context.Context, run uuid.UUID, reader *sheet.Reader, processor *billing.Processor) (billing.Summary, error) {
	rows := reader.Read(ctx)
	if len(rows) == 0 {
		return billing.Summary{}, ErrNoData
	}

	infof("%v  retrieved %v rows", run, len(rows))

	return processor.Process(ctx, rows), nil
}
