package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lexoffice-tools/sheets-invoices/sheet"
)

var AuthoriseCmd = Authorise{
	credentials: DEFAULT_CREDENTIALS,
	tokens:      "",
}

// Authorise caches an OAuth2 token for read-only access to Google Sheets. It is only needed when
// the worksheet is not readable with an API key.
type Authorise struct {
	credentials string
	tokens      string
	debug       bool
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises sheets-invoices to read a private Google Sheets worksheet"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file> [--tokens <file>]"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options]\n", APP)
	fmt.Println()
	fmt.Println("  Authorises sheets-invoices to read a Google Sheets worksheet using OAuth2 client credentials")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-invoices authorise --credentials "credentials.json"`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("authorise", flag.ExitOnError)

	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&cmd.tokens, "tokens", cmd.tokens, "Path for the cached OAuth2 token. Defaults to <credentials>.sheets")

	return flagset
}

func (cmd *Authorise) Execute(ctx context.Context, options *Options) error {
	cmd.debug = options.Debug

	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	file, err := sheet.Authorise(ctx, cmd.credentials, cmd.tokens, os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("authorisation error (%v)", err)
	}

	infof("Saved OAuth2 token to %v", file)

	return nil
}
