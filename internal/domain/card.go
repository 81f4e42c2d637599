package domain

import "github.com/shopspring/decimal"

type CardNetwork string

const (
	NetworkVisa       CardNetwork = "visa"
	NetworkMastercard CardNetwork = "mastercard"
	NetworkAmex       CardNetwork = "amex"
)

func (n CardNetwork) IsValid() bool {
	switch n {
	case NetworkVisa, NetworkMastercard, NetworkAmex:
		return true
	}
	return false
}

// Networks lists the closed set of card networks a new card may draw from.
var Networks = []CardNetwork{NetworkVisa, NetworkMastercard, NetworkAmex}

// CardPalette is the fixed set of display colors assigned to new cards.
var CardPalette = []string{"#1e3a8a", "#dc2626", "#059669", "#7c3aed"}

// Card is a wallet card. Number is a masked display string, never a real
// PAN. Balance may go negative; no floor is enforced.
type Card struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Number  string          `json:"number"`
	Network CardNetwork     `json:"type"`
	Balance decimal.Decimal `json:"balance"`
	Color   string          `json:"color"`
}
