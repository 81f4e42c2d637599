package wallet

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type SettlementRequest struct {
	CardID   string
	Amount   decimal.Decimal
	Merchant string
}

// Settler finalizes a submitted payment. A nil return means the payment
// settled; any error means nothing was charged.
type Settler interface {
	Settle(ctx context.Context, req SettlementRequest) error
}

// SimulatedSettler models settlement latency with a fixed delay. There is
// no real acquiring backend; Fail, when set, decides per-request whether
// the settlement is rejected.
type SimulatedSettler struct {
	Delay time.Duration
	Fail  func(req SettlementRequest) error
}

func (s *SimulatedSettler) Settle(ctx context.Context, req SettlementRequest) error {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	if s.Fail != nil {
		return s.Fail(req)
	}
	return nil
}
