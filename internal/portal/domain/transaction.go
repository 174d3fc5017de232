package domain

import "time"

// Transaction is one billing event: a credit purchase, message-send usage or
// a refund. Amount is in the tenant's currency minor units, Credits is the
// signed credit delta.
type Transaction struct {
	ID          string
	TenantID    string
	Type        string // purchase, usage, refund
	Amount      int64
	Credits     int64
	Description string
	Status      string // completed, pending, failed
	Reference   string // payment-gateway order id for purchases
	Date        time.Time
}

const (
	TransactionTypePurchase = "purchase"
	TransactionTypeUsage    = "usage"
	TransactionTypeRefund   = "refund"
)

const (
	TransactionStatusCompleted = "completed"
	TransactionStatusPending   = "pending"
	TransactionStatusFailed    = "failed"
)
