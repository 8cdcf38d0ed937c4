package invoice

import (
	"encoding/base64"
	"fmt"
	"regexp"
)

// dataURIPattern matches the accepted image data-URI prefix. The
// declared type is captured so the renderer can register the image
// without sniffing bytes.
var dataURIPattern = regexp.MustCompile(`^data:image/(png|jpeg|jpg|gif);base64,`)

const DefaultMaxImageMB = 5

// Validator checks that a submitted request is structurally and
// semantically complete. It is a pure component: no side effects, one
// error per call, checks applied in a fixed order with the first
// failure short-circuiting the rest.
type Validator struct {
	maxImageBytes int
}

// NewValidator creates a Validator enforcing the given decoded image
// size limit in megabytes. Values <= 0 fall back to the default.
func NewValidator(maxImageMB int) *Validator {
	if maxImageMB <= 0 {
		maxImageMB = DefaultMaxImageMB
	}
	return &Validator{maxImageBytes: maxImageMB * 1024 * 1024}
}

// Validate runs all checks and, on success, returns the request with
// decoded images and concrete item values. Check order: embedded
// images, seller, billing, shipping, order/invoice, items.
func (v *Validator) Validate(req *InvoiceRequest) (*ValidatedRequest, error) {
	logo, err := v.decodeImage("seller.logoImage", req.Seller.LogoImage)
	if err != nil {
		return nil, err
	}
	signature, err := v.decodeImage("seller.signatureImage", req.Seller.SignatureImage)
	if err != nil {
		return nil, err
	}

	if anyEmpty(
		req.Seller.CompanyName,
		req.Seller.AddressLine1,
		req.Seller.City,
		req.Seller.State,
		req.Seller.Pincode,
		req.Seller.PanNumber,
		req.Seller.GstNumber,
		req.Seller.SupplyPlace,
		req.Seller.LogoImage,
		req.Seller.SignatureImage,
	) {
		return nil, &IncompleteSectionError{Section: "seller"}
	}

	if anyEmpty(
		req.Billing.FirstName,
		req.Billing.LastName,
		req.Billing.AddressLine1,
		req.Billing.City,
		req.Billing.State,
		req.Billing.Pincode,
		req.Billing.StateUtCode,
	) {
		return nil, &IncompleteSectionError{Section: "billing"}
	}

	if anyEmpty(
		req.Shipping.FirstName,
		req.Shipping.LastName,
		req.Shipping.AddressLine1,
		req.Shipping.City,
		req.Shipping.State,
		req.Shipping.Pincode,
		req.Shipping.StateUtCode,
		req.Shipping.DeliveryPlace,
	) {
		return nil, &IncompleteSectionError{Section: "shipping"}
	}

	if anyEmpty(
		req.Order.Number,
		req.Order.Date,
		req.Invoice.Number,
		req.Invoice.Details,
		req.Invoice.Date,
	) || req.Invoice.ReverseCharge == nil {
		return nil, &IncompleteSectionError{Section: "order_invoice"}
	}

	if len(req.Items) == 0 {
		return nil, &InvalidItemError{Index: 0, Reason: "at least one item is required"}
	}

	items := make([]Item, 0, len(req.Items))
	for i, li := range req.Items {
		item, err := validateItem(i, li)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return &ValidatedRequest{
		Seller:        req.Seller,
		Billing:       req.Billing,
		Shipping:      req.Shipping,
		Order:         req.Order,
		Invoice:       req.Invoice,
		ReverseCharge: *req.Invoice.ReverseCharge,
		Logo:          logo,
		Signature:     signature,
		Items:         items,
	}, nil
}

// decodeImage checks the data-URI prefix and size limit, returning the
// decoded bytes so the renderer never re-parses the payload.
func (v *Validator) decodeImage(field, dataURI string) (DecodedImage, error) {
	m := dataURIPattern.FindStringSubmatch(dataURI)
	if m == nil {
		return DecodedImage{}, &ImageValidationError{Field: field, Reason: "invalid image format"}
	}

	raw, err := base64.StdEncoding.DecodeString(dataURI[len(m[0]):])
	if err != nil {
		return DecodedImage{}, &ImageValidationError{Field: field, Reason: "invalid base64 payload"}
	}

	if len(raw) > v.maxImageBytes {
		return DecodedImage{}, &ImageValidationError{
			Field:  field,
			Reason: fmt.Sprintf("image must be less than %d MB", v.maxImageBytes/(1024*1024)),
		}
	}

	return DecodedImage{Format: m[1], Data: raw}, nil
}

func validateItem(index int, li LineItem) (Item, error) {
	if li.Description == "" || li.UnitPrice == nil || li.Quantity == nil ||
		li.DiscountPercent == nil || li.TaxPercent == nil {
		return Item{}, &InvalidItemError{Index: index, Reason: "item information is incomplete"}
	}

	switch {
	case *li.UnitPrice <= 0:
		return Item{}, &InvalidItemError{Index: index, Reason: "unit price must be greater than zero"}
	case *li.Quantity <= 0:
		return Item{}, &InvalidItemError{Index: index, Reason: "quantity must be greater than zero"}
	case *li.DiscountPercent < 0 || *li.DiscountPercent > 100:
		return Item{}, &InvalidItemError{Index: index, Reason: "discount percent must be between 0 and 100"}
	case *li.TaxPercent < 0:
		return Item{}, &InvalidItemError{Index: index, Reason: "tax percent must not be negative"}
	}

	return Item{
		Description:     li.Description,
		UnitPrice:       *li.UnitPrice,
		Quantity:        *li.Quantity,
		DiscountPercent: *li.DiscountPercent,
		TaxPercent:      *li.TaxPercent,
	}, nil
}

func anyEmpty(fields ...string) bool {
	for _, f := range fields {
		if f == "" {
			return true
		}
	}
	return false
}
