package domain

import "github.com/shopspring/decimal"

type TransactionKind string

const (
	KindPayment TransactionKind = "payment"
	KindRefund  TransactionKind = "refund"
)

type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction is an immutable ledger record. Date is a calendar date in
// YYYY-MM-DD form. StatusPending and StatusFailed are admitted by the data
// model but the settlement flow only ever records completed transactions;
// settlement failures leave no record at all.
type Transaction struct {
	ID       string            `json:"id"`
	Amount   decimal.Decimal   `json:"amount"`
	Merchant string            `json:"merchant"`
	Date     string            `json:"date"`
	Kind     TransactionKind   `json:"type"`
	Status   TransactionStatus `json:"status"`
}
