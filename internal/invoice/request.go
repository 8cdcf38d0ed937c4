// Package invoice holds the tax-invoice request model, its validation
// rules and the GST computation that derives every monetary field the
// rendered document shows.
package invoice

// Seller describes the party issuing the invoice. Logo and signature
// arrive as base64 data URIs straight from the submission form.
type Seller struct {
	CompanyName    string `json:"companyName"`
	AddressLine1   string `json:"addressLine1"`
	AddressLine2   string `json:"addressLine2,omitempty"`
	City           string `json:"city"`
	State          string `json:"state"`
	Pincode        string `json:"pincode"`
	PanNumber      string `json:"panNumber"`
	GstNumber      string `json:"gstNumber"`
	SupplyPlace    string `json:"supplyPlace"`
	LogoImage      string `json:"logoImage"`
	SignatureImage string `json:"signatureImage"`
}

// BillingAddress is the invoice recipient.
type BillingAddress struct {
	FirstName    string `json:"firstName"`
	MiddleName   string `json:"middleName,omitempty"`
	LastName     string `json:"lastName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	StateUtCode  string `json:"stateUtCode"`
}

// ShippingAddress is the delivery destination. DeliveryPlace is the
// jurisdiction compared against the seller's SupplyPlace to pick the
// GST split.
type ShippingAddress struct {
	FirstName     string `json:"firstName"`
	MiddleName    string `json:"middleName,omitempty"`
	LastName      string `json:"lastName"`
	AddressLine1  string `json:"addressLine1"`
	AddressLine2  string `json:"addressLine2,omitempty"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	StateUtCode   string `json:"stateUtCode"`
	DeliveryPlace string `json:"deliveryPlace"`
}

// OrderInfo identifies the order the invoice bills.
type OrderInfo struct {
	Number string `json:"number"`
	Date   string `json:"date"`
}

// InvoiceInfo carries the invoice metadata. ReverseCharge is a pointer
// so an absent flag is distinguishable from an explicit false.
type InvoiceInfo struct {
	Number        string `json:"number"`
	Details       string `json:"details"`
	Date          string `json:"date"`
	ReverseCharge *bool  `json:"reverseCharge"`
}

// LineItem is one billed line as submitted. The numeric fields are
// pointers for the same absent-vs-zero reason as ReverseCharge.
type LineItem struct {
	Description     string   `json:"description"`
	UnitPrice       *float64 `json:"unitPrice"`
	Quantity        *int     `json:"quantity"`
	DiscountPercent *float64 `json:"discountPercent"`
	TaxPercent      *float64 `json:"taxPercent"`
}

// InvoiceRequest is the top-level submission payload. It is never
// mutated after decoding.
type InvoiceRequest struct {
	Seller   Seller          `json:"seller"`
	Billing  BillingAddress  `json:"billing"`
	Shipping ShippingAddress `json:"shipping"`
	Order    OrderInfo       `json:"order"`
	Invoice  InvoiceInfo     `json:"invoice"`
	Items    []LineItem      `json:"items"`
}

// Item is a line item after validation, with all numerics concrete.
type Item struct {
	Description     string
	UnitPrice       float64
	Quantity        int
	DiscountPercent float64
	TaxPercent      float64
}

// DecodedImage is an embedded image after base64 decoding. Format is
// the declared type from the data URI (png, jpeg, jpg or gif).
type DecodedImage struct {
	Format string
	Data   []byte
}

// ValidatedRequest is the validator's output: the original request
// plus decoded images and concrete item values. Downstream stages
// assume it is complete and perform no re-validation.
type ValidatedRequest struct {
	Seller        Seller
	Billing       BillingAddress
	Shipping      ShippingAddress
	Order         OrderInfo
	Invoice       InvoiceInfo
	ReverseCharge bool
	Logo          DecodedImage
	Signature     DecodedImage
	Items         []Item
}

// Intrastate reports whether the supply and delivery jurisdictions
// match. The comparison is exact and case-sensitive, decided once per
// invoice and applied to every line.
func (r *ValidatedRequest) Intrastate() bool {
	return r.Seller.SupplyPlace == r.Shipping.DeliveryPlace
}
