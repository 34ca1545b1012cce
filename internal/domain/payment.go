package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusNew PaymentStatus = "New"
)

// LineItem is immutable once attached to a Payment.
type LineItem struct {
	ProductID string
	Quantity  int
	Price     decimal.Decimal
}

// Payment tracks one checkout attempt. The Processor* fields stay empty until
// a successful gateway call fills them in; nothing in this service persists
// the Payment itself.
type Payment struct {
	ID                          string
	LineItems                   []LineItem
	Status                      string
	Processor                   string
	ProcessorCheckoutSessionID  string
	ProcessorCheckoutSessionURL string
	ProcessorID                 string
	ProcessorStatus             string
}

// NewPayment creates a Payment in status New with a freshly generated id and
// no processor linkage.
func NewPayment(items []LineItem) Payment {
	return Payment{
		ID:        uuid.NewString(),
		LineItems: items,
		Status:    string(PaymentStatusNew),
	}
}
