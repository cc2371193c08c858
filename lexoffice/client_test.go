package lexoffice

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(context.Background(), srv.URL, "secret-token", 5*time.Second, 0)
	c.Contacts.Delay = 0
	c.Invoices.Delay = 0

	return c
}

func TestFindContactID(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, rq *http.Request) {
		calls++

		assert.Equal(t, http.MethodGet, rq.Method)
		assert.Equal(t, "/v1/contacts", rq.URL.Path)
		assert.Equal(t, "band+1@example.com", rq.URL.Query().Get("email"))
		assert.Equal(t, "Bearer secret-token", rq.Header.Get("Authorization"))
		assert.Equal(t, "application/json", rq.Header.Get("Accept"))

		w.Write([]byte(`{"content": [{"id": "be9475f4-ef80-442b-8ab9-3ab8b1a2aeb9", "version": 1, "roles": {"customer": {"number": 10308}}}]}`))
	})

	id, err := c.FindContactID(context.Background(), "band+1@example.com")

	require.NoError(t, err)
	assert.Equal(t, "be9475f4-ef80-442b-8ab9-3ab8b1a2aeb9", id)
	assert.Equal(t, 1, calls)
}

func TestFindContactIDRetriesMalformedResponse(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, rq *http.Request) {
		calls++
		switch calls {
		case 1:
			w.Write([]byte(`{"content": [`))
		case 2:
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.Write([]byte(`{"content": [{"id": "c1"}]}`))
		}
	})

	id, err := c.FindContactID(context.Background(), "band@example.com")

	require.NoError(t, err)
	assert.Equal(t, "c1", id)
	assert.Equal(t, 3, calls)
}

func TestFindContactIDNotFound(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, rq *http.Request) {
		calls++
		w.Write([]byte(`{"content": [], "totalElements": 0}`))
	})

	_, err := c.FindContactID(context.Background(), "nobody@example.com")

	require.ErrorIs(t, err, ErrContactNotFound)
	assert.Equal(t, 3, calls)
}

func TestFindContacts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, rq *http.Request) {
		w.Write([]byte(`{
		  "content": [{
		    "id": "c1",
		    "version": 3,
		    "roles": {"customer": {"number": 10308}},
		    "person": {"salutation": "Frau", "firstName": "Inge", "lastName": "Musterfrau"},
		    "archived": false
		  }],
		  "totalElements": 1
		}`))
	})

	contacts, err := c.FindContacts(context.Background(), "inge@example.com")

	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "c1", contacts[0].ID)
	require.NotNil(t, contacts[0].Roles.Customer)
	assert.Equal(t, 10308, contacts[0].Roles.Customer.Number)
	require.NotNil(t, contacts[0].Person)
	assert.Equal(t, "Musterfrau", contacts[0].Person.LastName)
}

func TestCreateInvoice(t *testing.T) {
	invoice := Invoice{
		VoucherDate: "2024-01-31T00:00:00.000+02:00",
		Address:     Address{ContactID: "c1"},
		LineItems: []LineItem{
			{Type: LineItemCustom, Name: "Probe", Quantity: 1, UnitName: "Stück", UnitPrice: UnitPrice{Currency: "EUR", NetAmount: 120, TaxRatePercentage: 19}},
		},
		TotalPrice:         TotalPrice{Currency: "EUR"},
		TaxConditions:      TaxConditions{TaxType: TaxTypeNet},
		ShippingConditions: ShippingConditions{ShippingDate: "2024-01-01T00:00:00.000+02:00", ShippingEndDate: "2024-01-01T00:00:00.000+02:00", ShippingType: ShippingService},
	}

	c := newTestClient(t, func(w http.ResponseWriter, rq *http.Request) {
		assert.Equal(t, http.MethodPost, rq.Method)
		assert.Equal(t, "/v1/invoices", rq.URL.Path)
		assert.Equal(t, "Bearer secret-token", rq.Header.Get("Authorization"))
		assert.Equal(t, "application/json", rq.Header.Get("Content-Type"))

		body, err := io.ReadAll(rq.Body)
		assert.NoError(t, err)

		var received map[string]any
		assert.NoError(t, json.Unmarshal(body, &received))
		assert.Equal(t, false, received["archived"])
		assert.Equal(t, map[string]any{"contactId": "c1"}, received["address"])
		assert.Equal(t, map[string]any{"taxType": "net"}, received["taxConditions"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "66196c43-baf3-4335-bfee-d610367059db", "resourceUri": "https://api.lexoffice.io/v1/invoices/66196c43-baf3-4335-bfee-d610367059db", "version": 1}`))
	})

	id, err := c.CreateInvoice(context.Background(), invoice)

	require.NoError(t, err)
	assert.Equal(t, "66196c43-baf3-4335-bfee-d610367059db", id)
}

func TestCreateInvoiceRetriesWhenRateLimited(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, rq *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "i3"}`))
	})

	id, err := c.CreateInvoice(context.Background(), Invoice{})

	require.NoError(t, err)
	assert.Equal(t, "i3", id)
	assert.Equal(t, 3, calls)
}

func TestCreateInvoiceGivesUpWhenRateLimited(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, rq *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.CreateInvoice(context.Background(), Invoice{})

	require.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, 3, calls)
}

func TestCreateInvoiceDoesNotRetryServerError(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, rq *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "internal error"}`))
	})

	_, err := c.CreateInvoice(context.Background(), Invoice{})

	var status *StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, http.StatusInternalServerError, status.Status)
	assert.Contains(t, status.Body, "internal error")
	assert.Equal(t, 1, calls)
}

func TestCreateInvoiceWithoutID(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, rq *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	})

	_, err := c.CreateInvoice(context.Background(), Invoice{})

	var status *StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, http.StatusCreated, status.Status)
	assert.Equal(t, 1, calls)
}

func TestClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		select {
		case <-rq.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c := NewClient(context.Background(), srv.URL, "secret-token", 50*time.Millisecond, 0)

	start := time.Now()
	_, err := c.FindContacts(context.Background(), "band@example.com")

	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}
