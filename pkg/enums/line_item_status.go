package enums

import "fmt"

// LineItemStatus tracks the packaging state of an invoice line item.
// Transitions are freely settable by merchant action; a forward-only
// sequence is not enforced.
type LineItemStatus string

const (
	LineItemStatusPackaged LineItemStatus = "packaged"
	LineItemStatusPending  LineItemStatus = "pending"
	LineItemStatusShipped  LineItemStatus = "shipped"
)

var validLineItemStatuses = []LineItemStatus{
	LineItemStatusPackaged,
	LineItemStatusPending,
	LineItemStatusShipped,
}

// lineItemStatusOrdinals preserves the integer codes the legacy schema
// stored: packaged=0, pending=1, shipped=2.
var lineItemStatusOrdinals = map[LineItemStatus]int{
	LineItemStatusPackaged: 0,
	LineItemStatusPending:  1,
	LineItemStatusShipped:  2,
}

// String implements fmt.Stringer.
func (l LineItemStatus) String() string {
	return string(l)
}

// IsValid reports whether the value is a known LineItemStatus.
func (l LineItemStatus) IsValid() bool {
	for _, candidate := range validLineItemStatuses {
		if candidate == l {
			return true
		}
	}
	return false
}

// Ordinal returns the legacy integer code for the status.
func (l LineItemStatus) Ordinal() int {
	return lineItemStatusOrdinals[l]
}

// ParseLineItemStatus converts raw input into a LineItemStatus.
func ParseLineItemStatus(value string) (LineItemStatus, error) {
	for _, candidate := range validLineItemStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid line item status %q", value)
}
