package order

import "fmt"

// StatusChangeRequest asks for a lifecycle transition on an order row.
// Force is honored for admins only and bypasses the transition table.
type StatusChangeRequest struct {
	Status string `json:"status"`
	Force  bool   `json:"force"`
	Reason string `json:"reason"`
}

func (r StatusChangeRequest) Validate() error {
	if r.Status == "" {
		return fmt.Errorf("status is required")
	}
	return nil
}

// PaymentStatusRequest sets the billing axis independently of the workflow axis
type PaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status"`
}

func (r PaymentStatusRequest) Validate() error {
	if r.PaymentStatus == "" {
		return fmt.Errorf("paymentStatus is required")
	}
	return nil
}
