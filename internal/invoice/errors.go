package invoice

import "fmt"

// Error taxonomy for invoice generation. Validation errors are
// returned before any computation starts; RenderingError wraps
// failures while producing the document itself.

// ImageValidationError reports a rejected embedded image.
type ImageValidationError struct {
	Field  string // which image failed, e.g. "seller.logoImage"
	Reason string
}

func (e *ImageValidationError) Error() string {
	return fmt.Sprintf("invalid image %s: %s", e.Field, e.Reason)
}

// IncompleteSectionError reports a required field missing from one of
// the request groups (seller, billing, shipping, order_invoice).
type IncompleteSectionError struct {
	Section string
}

func (e *IncompleteSectionError) Error() string {
	return fmt.Sprintf("%s information is incomplete", e.Section)
}

// InvalidItemError reports a missing or out-of-range line-item field.
// Index is zero-based into the submitted items array.
type InvalidItemError struct {
	Index  int
	Reason string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("item %d: %s", e.Index, e.Reason)
}

// RenderingError wraps an unexpected failure while producing the
// document, e.g. corrupt image bytes rejected by the PDF backend.
type RenderingError struct {
	Err error
}

func (e *RenderingError) Error() string {
	return fmt.Sprintf("rendering failed: %v", e.Err)
}

func (e *RenderingError) Unwrap() error {
	return e.Err
}
