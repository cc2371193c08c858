package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lexoffice-tools/sheets-invoices/lexoffice"
)

var GetContactCmd = GetContact{
	command: command{
		config: DEFAULT_CONFIG,
	},

	email: "",
}

type GetContact struct {
	command
	email string
}

func (cmd *GetContact) Name() string {
	return "get-contact"
}

func (cmd *GetContact) Description() string {
	return "Lists the lexoffice contacts with an email address"
}

func (cmd *GetContact) Usage() string {
	return "[--config <file>] --email <email>"
}

func (cmd *GetContact) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get-contact [options] --email <email>\n", APP)
	fmt.Println()
	fmt.Println("  Looks up the lexoffice contacts for an email address, e.g. to check a worksheet row before")
	fmt.Println("  creating invoices")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-invoices get-contact --email "band@example.com"`)
	fmt.Println()
}

func (cmd *GetContact) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("get-contact", flag.ExitOnError)

	flagset.StringVar(&cmd.config, "config", cmd.config, "Configuration file path")
	flagset.StringVar(&cmd.email, "email", cmd.email, "Contact email address")

	return flagset
}

func (cmd *GetContact) Execute(ctx context.Context, options *Options) error {
	cmd.debug = options.Debug

	if strings.TrimSpace(cmd.email) == "" {
		return fmt.Errorf("--email is a required option")
	}

	conf, err := cmd.load()
	if err != nil {
		return err
	}

	if err := conf.ValidateLexoffice(); err != nil {
		return err
	}

	contacts, err := lexofficeClient(ctx, conf).FindContacts(ctx, strings.TrimSpace(cmd.email))
	if err != nil {
		return fmt.Errorf("contact lookup failed (%v)", err)
	}

	if len(contacts) == 0 {
		return fmt.Errorf("no contact found for %v", cmd.email)
	}

	printContacts(os.Stdout, contacts)

	return nil
}

func printContacts(w io.Writer, contacts []lexoffice.Contact) {
	for _, contact := range contacts {
		customer := "N/A"
		if contact.Roles.Customer != nil {
			customer = fmt.Sprintf("%v", contact.Roles.Customer.Number)
		}

		salutation := ""
		name := ""
		if contact.Person != nil {
			salutation = contact.Person.Salutation
			name = strings.TrimSpace(contact.Person.FirstName + " " + contact.Person.LastName)
		} else if contact.Company != nil {
			name = contact.Company.Name
		}

		archived := "No"
		if contact.Archived {
			archived = "Yes"
		}

		fmt.Fprintf(w, "Contact ID:      %v\n", contact.ID)
		fmt.Fprintf(w, "Customer Number: %v\n", customer)
		fmt.Fprintf(w, "Salutation:      %v\n", salutation)
		fmt.Fprintf(w, "Name:            %v\n", name)
		fmt.Fprintf(w, "Archived:        %v\n", archived)
		fmt.Fprintln(w)
	}
}
