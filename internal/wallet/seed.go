package wallet

import (
	"github.com/shopspring/decimal"

	"github.com/tapwallet/walletd/internal/domain"
)

// Seed data installed on first run, when the store has never been written.

func seedCards() []domain.Card {
	return []domain.Card{
		{
			ID:      "1",
			Name:    "Gold Sapphire",
			Number:  "**** **** **** 1234",
			Network: domain.NetworkVisa,
			Balance: decimal.RequireFromString("2547.89"),
			Color:   "#1e3a8a",
		},
		{
			ID:      "2",
			Name:    "Amex Gold",
			Number:  "**** **** **** 5678",
			Network: domain.NetworkAmex,
			Balance: decimal.RequireFromString("1892.45"),
			Color:   "#f59e0b",
		},
	}
}

func seedTransactions() []domain.Transaction {
	return []domain.Transaction{
		{
			ID:       "1",
			Amount:   decimal.RequireFromString("45.67"),
			Merchant: "Starbucks",
			Date:     "2024-01-15",
			Kind:     domain.KindPayment,
			Status:   domain.StatusCompleted,
		},
		{
			ID:       "2",
			Amount:   decimal.RequireFromString("129.99"),
			Merchant: "Amazon",
			Date:     "2024-01-14",
			Kind:     domain.KindPayment,
			Status:   domain.StatusCompleted,
		},
	}
}
