package lexoffice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lexoffice-tools/sheets-invoices/retry"
)

// CreateInvoice creates a draft invoice and returns the new invoice ID. Only HTTP 429 is retried,
// after Invoices.Delay and up to Invoices.Attempts attempts in total. Any other response apart
// from 201 with an invoice ID is returned as a *StatusError.
func (c *Client) CreateInvoice(ctx context.Context, invoice Invoice) (string, error) {
	body, err := json.Marshal(invoice)
	if err != nil {
		return "", err
	}

	create := func() (string, error) {
		status, reply, err := c.post(ctx, "/v1/invoices", body)
		if err != nil {
			return "", err
		}

		switch status {
		case http.StatusCreated:
			response := created{}
			if err := json.Unmarshal(reply, &response); err == nil && response.ID != "" {
				return response.ID, nil
			}

		case http.StatusTooManyRequests:
			warnf("rate limit exceeded, retrying in %v", c.Invoices.Delay)
			return "", ErrRateLimited
		}

		return "", &StatusError{Status: status, Body: string(reply)}
	}

	return retry.Do(ctx, c.Invoices.Attempts, c.Invoices.Delay, create, rateLimited)
}

func rateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
