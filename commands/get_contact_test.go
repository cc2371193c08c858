package commands

import (
	"strings"
	"testing"

	"github.com/lexoffice-tools/sheets-invoices/lexoffice"
)

func TestPrintContacts(t *testing.T) {
	expected := `Contact ID:      c1
Customer Number: 10308
Salutation:      Frau
Name:            Inge Musterfrau
Archived:        No

Contact ID:      c2
Customer Number: N/A
Salutation:      
Name:            Musterfirma GmbH
Archived:        Yes

`

	contacts := []lexoffice.Contact{
		{
			ID:     "c1",
			Roles:  lexoffice.Roles{Customer: &lexoffice.Role{Number: 10308}},
			Person: &lexoffice.Person{Salutation: "Frau", FirstName: "Inge", LastName: "Musterfrau"},
		},
		{
			ID:       "c2",
			Company:  &lexoffice.Company{Name: "Musterfirma GmbH"},
			Archived: true,
		},
	}

	var b strings.Builder

	printContacts(&b, contacts)

	if b.String() != expected {
		t.Errorf("Incorrect contact details\n   expected: %s\n   got:      %s\n", expected, b.String())
	}
}
