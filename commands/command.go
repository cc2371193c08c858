package commands

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"google.golang.org/api/option"

	"github.com/lexoffice-tools/sheets-invoices/config"
	"github.com/lexoffice-tools/sheets-invoices/lexoffice"
	"github.com/lexoffice-tools/sheets-invoices/sheet"
)

const APP = "sheets-invoices"

type Options struct {
	Debug bool
}

// Command is the interface implemented by every sheets-invoices sub-command.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(ctx context.Context, options *Options) error
}

type command struct {
	config      string
	spreadsheet string
	area        string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.config, "config", c.config, "Configuration file path")
	flagset.StringVar(&c.spreadsheet, "spreadsheet", c.spreadsheet, "Spreadsheet ID or URL. Overrides the configuration file")
	flagset.StringVar(&c.area, "range", c.area, "Spreadsheet range e.g. 'Billing!A1:H'. Overrides the configuration file")

	return flagset
}

// load returns the configuration file settings, overridden by the environment and then by the
// command line.
func (c *command) load() (*config.Config, error) {
	conf := config.NewConfig()
	if err := conf.Load(c.config); err != nil {
		return nil, fmt.Errorf("could not load configuration (%v)", err)
	}

	if s := strings.TrimSpace(c.spreadsheet); s != "" {
		conf.Spreadsheet = s
	}

	if s := strings.TrimSpace(c.area); s != "" {
		conf.Range = s
	}

	return conf, nil
}

func (c *command) reader(ctx context.Context, conf *config.Config) (*sheet.Reader, error) {
	if c.debug {
		debugf("Spreadsheet - ID:%s  range:%s", conf.Spreadsheet, conf.Range)
	}

	if strings.TrimSpace(conf.APIKey) != "" {
		return sheet.NewReader(ctx, conf.Spreadsheet, conf.Range, option.WithAPIKey(conf.APIKey))
	}

	client, err := sheet.Authorize(ctx, conf.Credentials, conf.Tokens)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%v)", err)
	}

	return sheet.NewReader(ctx, conf.Spreadsheet, conf.Range, option.WithHTTPClient(client))
}

func lexofficeClient(ctx context.Context, conf *config.Config) *lexoffice.Client {
	client := lexoffice.NewClient(ctx, conf.LexofficeURL, conf.AccessToken, conf.HTTPTimeout, conf.RateLimit)

	client.Contacts = lexoffice.Policy{Attempts: conf.ContactRetries, Delay: conf.ContactDelay}
	client.Invoices = lexoffice.Policy{Attempts: conf.InvoiceRetries, Delay: conf.RateLimitDelay}

	return client
}

func helpOptions(flagset *flag.FlagSet) {
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("  Options:")
	fmt.Println()
	fmt.Println("    --debug Displays internal information for diagnosing errors")
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
