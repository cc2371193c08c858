package lexoffice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/lexoffice-tools/sheets-invoices/retry"
)

// FindContacts returns the contacts with the email address. It makes a single request.
func (c *Client) FindContacts(ctx context.Context, email string) ([]Contact, error) {
	query := url.Values{}
	query.Set("email", email)

	status, body, err := c.get(ctx, "/v1/contacts", query)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, &StatusError{Status: status, Body: string(body)}
	}

	page := contactsPage{}
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("invalid contacts response (%w)", err)
	}

	return page.Content, nil
}

// FindContactID returns the ID of the first contact with the email address. Every failure is
// retried up to Contacts.Attempts times. The returned error wraps ErrContactNotFound once the
// attempts are exhausted.
func (c *Client) FindContactID(ctx context.Context, email string) (string, error) {
	attempt := 0

	lookup := func() (string, error) {
		attempt++

		contacts, err := c.FindContacts(ctx, email)
		if err != nil {
			warnf("contact lookup for %v failed (attempt %v of %v) (%v)", email, attempt, c.Contacts.Attempts, err)
			return "", err
		}

		if len(contacts) == 0 || contacts[0].ID == "" {
			return "", ErrContactNotFound
		}

		return contacts[0].ID, nil
	}

	id, err := retry.Do(ctx, c.Contacts.Attempts, c.Contacts.Delay, lookup, retry.Always)
	if err != nil {
		if errors.Is(err, ErrContactNotFound) {
			return "", fmt.Errorf("%w: %v after %v attempts", ErrContactNotFound, email, attempt)
		}

		return "", fmt.Errorf("%w: %v after %v attempts (%v)", ErrContactNotFound, email, attempt, err)
	}

	return id, nil
}
