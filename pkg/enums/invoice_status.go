package enums

import "fmt"

// InvoiceStatus tracks the fulfillment state of an invoice. The set is flat:
// any status may be set from any other by explicit admin action.
type InvoiceStatus string

const (
	InvoiceStatusCancelled  InvoiceStatus = "cancelled"
	InvoiceStatusCompleted  InvoiceStatus = "completed"
	InvoiceStatusInProgress InvoiceStatus = "in_progress"
)

var validInvoiceStatuses = []InvoiceStatus{
	InvoiceStatusCancelled,
	InvoiceStatusCompleted,
	InvoiceStatusInProgress,
}

// invoiceStatusOrdinals preserves the integer codes the legacy schema stored:
// cancelled=0, completed=1, in_progress=2.
var invoiceStatusOrdinals = map[InvoiceStatus]int{
	InvoiceStatusCancelled:  0,
	InvoiceStatusCompleted:  1,
	InvoiceStatusInProgress: 2,
}

// String implements fmt.Stringer.
func (s InvoiceStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known InvoiceStatus.
func (s InvoiceStatus) IsValid() bool {
	for _, candidate := range validInvoiceStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// Ordinal returns the legacy integer code for the status.
func (s InvoiceStatus) Ordinal() int {
	return invoiceStatusOrdinals[s]
}

// ParseInvoiceStatus converts raw input into an InvoiceStatus.
func ParseInvoiceStatus(value string) (InvoiceStatus, error) {
	for _, candidate := range validInvoiceStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid invoice status %q", value)
}
