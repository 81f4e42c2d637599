// Package wallet implements the ledger state manager: the authoritative
// in-memory view of cards and transactions, kept in sync with a persistent
// key-value store. The manager is the sole entry point for mutation; the
// store is a passive mirror written through after every commit.
package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tapwallet/walletd/internal/domain"
	"github.com/tapwallet/walletd/internal/store"
)

type Clock interface {
	Now() time.Time
}

type IDSource interface {
	NewID() string
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type uuidSource struct{}

func (uuidSource) NewID() string { return uuid.NewString() }

// Manager owns the card list, the transaction list, the selected-card
// reference and the processing flag. All mutating operations hold mu;
// ProcessPayment additionally holds the submitting slot for the duration
// of settlement, so a second submission is rejected rather than racing
// the first for the same balance.
type Manager struct {
	store   store.Store
	settler Settler
	clock   Clock
	ids     IDSource
	intn    func(n int) int
	logger  *slog.Logger
	limit   decimal.Decimal

	mu           sync.Mutex
	cards        []domain.Card
	transactions []domain.Transaction
	selectedID   string
	processing   bool
	subs         []chan Event
}

type Option func(*Manager)

func WithClock(c Clock) Option { return func(m *Manager) { m.clock = c } }

func WithIDSource(s IDSource) Option { return func(m *Manager) { m.ids = s } }

func WithRand(intn func(int) int) Option { return func(m *Manager) { m.intn = intn } }

func WithLogger(l *slog.Logger) Option { return func(m *Manager) { m.logger = l } }

// WithLimit caps single-payment amounts. Zero means no cap.
func WithLimit(l decimal.Decimal) Option { return func(m *Manager) { m.limit = l } }

func NewManager(st store.Store, settler Settler, opts ...Option) *Manager {
	m := &Manager{
		store:   st,
		settler: settler,
		clock:   systemClock{},
		ids:     uuidSource{},
		intn:    rand.IntN,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load populates the in-memory lists from the store. An absent key means
// first run: the documented seed is installed and persisted. A read or
// parse failure is logged and swallowed; a corrupt store must never take
// the wallet down, so the manager continues with whatever it has.
func (m *Manager) Load(ctx context.Context) {
	m.mu.Lock()
	loadInto(m, ctx, store.KeyCards, &m.cards, seedCards)
	loadInto(m, ctx, store.KeyTransactions, &m.transactions, seedTransactions)
	m.mu.Unlock()

	m.notify(Event{Kind: EventLoaded})
}

func loadInto[T any](m *Manager, ctx context.Context, key string, dst *[]T, seed func() []T) {
	raw, ok, err := m.store.Get(ctx, key)
	if err != nil {
		m.logger.Error("store read failed, keeping in-memory state", "key", key, "error", err)
		return
	}
	if !ok {
		*dst = seed()
		m.persistLocked(ctx, key, *dst)
		return
	}
	var loaded []T
	if err := json.Unmarshal(raw, &loaded); err != nil {
		m.logger.Error("store value corrupt, keeping in-memory state", "key", key, "error", err)
		return
	}
	*dst = loaded
}

// persistLocked writes one list through to the store. Write failures are
// logged, not retried, and never roll back the in-memory mutation; a
// stale mirror is the accepted cost of keeping the wallet responsive.
func (m *Manager) persistLocked(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		m.logger.Error("persist marshal failed", "key", key, "error", err)
		return
	}
	if err := m.store.Set(ctx, key, raw); err != nil {
		m.logger.Error("persist write failed", "key", key, "error", err)
	}
}

// Cards returns the card list in insertion order.
func (m *Manager) Cards() []domain.Card {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Card, len(m.cards))
	copy(out, m.cards)
	return out
}

// Transactions returns the transaction list, most recent first.
func (m *Manager) Transactions() []domain.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out
}

// SelectedCard returns the currently selected card, or nil.
func (m *Manager) SelectedCard() *domain.Card {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.selectedID == "" {
		return nil
	}
	if c := m.findCardLocked(m.selectedID); c != nil {
		card := *c
		return &card
	}
	return nil
}

// Processing reports whether a payment submission is in flight.
func (m *Manager) Processing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.processing
}

func (m *Manager) findCardLocked(id string) *domain.Card {
	for i := range m.cards {
		if m.cards[i].ID == id {
			return &m.cards[i]
		}
	}
	return nil
}

// SelectCard points subsequent payments at the given card. The id must
// reference a card currently in the list.
func (m *Manager) SelectCard(id string) error {
	m.mu.Lock()
	if m.findCardLocked(id) == nil {
		m.mu.Unlock()
		return fmt.Errorf("SelectCard: %q: %w", id, domain.ErrCardNotFound)
	}
	m.selectedID = id
	m.mu.Unlock()

	m.notify(Event{Kind: EventCardSelected, CardID: id})
	return nil
}

// AddCard creates a card with a fresh id and randomized display fields and
// appends it to the list. An empty name means the user declined the prompt.
func (m *Manager) AddCard(ctx context.Context, name string) (*domain.Card, error) {
	if name == "" {
		return nil, fmt.Errorf("AddCard: %w", domain.ErrInvalidCardName)
	}

	card := domain.Card{
		ID:      m.ids.NewID(),
		Name:    name,
		Number:  fmt.Sprintf("**** **** **** %d", 1000+m.intn(9000)),
		Network: domain.Networks[m.intn(len(domain.Networks))],
		Balance: decimal.NewFromInt(int64(1000 + m.intn(5000))),
		Color:   domain.CardPalette[m.intn(len(domain.CardPalette))],
	}

	m.mu.Lock()
	m.cards = append(m.cards, card)
	m.persistLocked(ctx, store.KeyCards, m.cards)
	m.mu.Unlock()

	m.logger.Info("card added", "card_id", card.ID, "network", card.Network)
	m.notify(Event{Kind: EventCardAdded, CardID: card.ID})
	return &card, nil
}

// ProcessPayment runs the submission state machine:
//
//	Idle -> Submitting -> {Settled, Failed} -> Idle
//
// The Idle->Submitting transition is guarded: it only happens when the
// inputs validate, a card is selected, and no other submission is in
// flight. On Settled the transaction record and the balance debit are
// committed together; on Failed neither happens.
func (m *Manager) ProcessPayment(ctx context.Context, amount decimal.Decimal, merchant string) (*domain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("ProcessPayment: %w", domain.ErrInvalidAmount)
	}
	if merchant == "" {
		return nil, fmt.Errorf("ProcessPayment: %w", domain.ErrInvalidMerchant)
	}
	if m.limit.IsPositive() && amount.GreaterThan(m.limit) {
		return nil, fmt.Errorf("ProcessPayment: %w", domain.ErrLimitExceeded)
	}

	m.mu.Lock()
	if m.processing {
		m.mu.Unlock()
		return nil, fmt.Errorf("ProcessPayment: %w", domain.ErrPaymentInFlight)
	}
	if m.selectedID == "" {
		m.mu.Unlock()
		return nil, fmt.Errorf("ProcessPayment: %w", domain.ErrNoCardSelected)
	}
	cardID := m.selectedID
	m.processing = true
	m.mu.Unlock()

	err := m.settler.Settle(ctx, SettlementRequest{CardID: cardID, Amount: amount, Merchant: merchant})
	if err != nil {
		m.mu.Lock()
		m.processing = false
		m.mu.Unlock()
		m.logger.Warn("settlement failed", "card_id", cardID, "merchant", merchant, "error", err)
		return nil, fmt.Errorf("ProcessPayment: %w", domain.ErrSettlementFailed)
	}

	tx := domain.Transaction{
		ID:       m.ids.NewID(),
		Amount:   amount,
		Merchant: merchant,
		Date:     m.clock.Now().UTC().Format("2006-01-02"),
		Kind:     domain.KindPayment,
		Status:   domain.StatusCompleted,
	}

	m.mu.Lock()
	m.transactions = append([]domain.Transaction{tx}, m.transactions...)
	m.persistLocked(ctx, store.KeyTransactions, m.transactions)

	if c := m.findCardLocked(cardID); c != nil {
		c.Balance = c.Balance.Sub(amount)
	}
	m.persistLocked(ctx, store.KeyCards, m.cards)

	m.processing = false
	m.mu.Unlock()

	m.logger.Info("payment settled",
		"transaction_id", tx.ID,
		"card_id", cardID,
		"merchant", merchant,
		"amount", amount.String(),
	)
	m.notify(Event{Kind: EventPaymentSettled, CardID: cardID, TransactionID: tx.ID})
	return &tx, nil
}
