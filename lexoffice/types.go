package lexoffice

const (
	ShippingService       = "service"
	ShippingServicePeriod = "serviceperiod"

	TaxTypeNet     = "net"
	LineItemCustom = "custom"
)

// Invoice is the request body for POST /v1/invoices.
type Invoice struct {
	Archived           bool               `json:"archived"`
	VoucherDate        string             `json:"voucherDate"`
	Address            Address            `json:"address"`
	LineItems          []LineItem         `json:"lineItems"`
	TotalPrice         TotalPrice         `json:"totalPrice"`
	TaxConditions      TaxConditions      `json:"taxConditions"`
	ShippingConditions ShippingConditions `json:"shippingConditions"`
	Title              string             `json:"title,omitempty"`
	Introduction       string             `json:"introduction,omitempty"`
	Remark             string             `json:"remark,omitempty"`
}

type Address struct {
	ContactID string `json:"contactId"`
}

type LineItem struct {
	Type               string    `json:"type"`
	Name               string    `json:"name"`
	Quantity           int       `json:"quantity"`
	UnitName           string    `json:"unitName"`
	UnitPrice          UnitPrice `json:"unitPrice"`
	DiscountPercentage float64   `json:"discountPercentage"`
}

type UnitPrice struct {
	Currency          string  `json:"currency"`
	NetAmount         float64 `json:"netAmount"`
	TaxRatePercentage float64 `json:"taxRatePercentage"`
}

type TotalPrice struct {
	Currency string `json:"currency"`
}

type TaxConditions struct {
	TaxType string `json:"taxType"`
}

type ShippingConditions struct {
	ShippingDate    string `json:"shippingDate"`
	ShippingEndDate string `json:"shippingEndDate,omitempty"`
	ShippingType    string `json:"shippingType"`
}

// Contact is the subset of a lexoffice contact used to identify the invoice recipient.
type Contact struct {
	ID       string   `json:"id"`
	Version  int      `json:"version"`
	Roles    Roles    `json:"roles"`
	Person   *Person  `json:"person,omitempty"`
	Company  *Company `json:"company,omitempty"`
	Archived bool     `json:"archived"`
}

type Roles struct {
	Customer *Role `json:"customer,omitempty"`
	Vendor   *Role `json:"vendor,omitempty"`
}

type Role struct {
	Number int `json:"number"`
}

type Person struct {
	Salutation string `json:"salutation"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
}

type Company struct {
	Name string `json:"name"`
}

type contactsPage struct {
	Content       []Contact `json:"content"`
	TotalElements int       `json:"totalElements"`
}

type created struct {
	ID string `json:"id"`
}
