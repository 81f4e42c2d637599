package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/tapwallet/walletd/internal/domain"
)

type walletService interface {
	Cards() []domain.Card
	Transactions() []domain.Transaction
	SelectedCard() *domain.Card
	SelectCard(id string) error
	AddCard(ctx context.Context, name string) (*domain.Card, error)
	ProcessPayment(ctx context.Context, amount decimal.Decimal, merchant string) (*domain.Transaction, error)
}

type WalletHandler struct {
	wallet walletService
}

func NewWalletHandler(wallet walletService) *WalletHandler {
	return &WalletHandler{wallet: wallet}
}

type cardDTO struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Number   string          `json:"number"`
	Network  string          `json:"network"`
	Balance  decimal.Decimal `json:"balance"`
	Color    string          `json:"color"`
	Selected bool            `json:"selected"`
}

func toCardDTO(c domain.Card, selectedID string) cardDTO {
	return cardDTO{
		ID:       c.ID,
		Name:     c.Name,
		Number:   c.Number,
		Network:  string(c.Network),
		Balance:  c.Balance,
		Color:    c.Color,
		Selected: c.ID == selectedID,
	}
}

type transactionDTO struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Merchant string          `json:"merchant"`
	Date     string          `json:"date"`
	Kind     string          `json:"kind"`
	Status   string          `json:"status"`
}

func toTransactionDTO(t domain.Transaction) transactionDTO {
	return transactionDTO{
		ID:       t.ID,
		Amount:   t.Amount,
		Merchant: t.Merchant,
		Date:     t.Date,
		Kind:     string(t.Kind),
		Status:   string(t.Status),
	}
}

// GET /api/v1/cards
func (h *WalletHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	var selectedID string
	if c := h.wallet.SelectedCard(); c != nil {
		selectedID = c.ID
	}

	cards := h.wallet.Cards()
	dtos := make([]cardDTO, 0, len(cards))
	for _, c := range cards {
		dtos = append(dtos, toCardDTO(c, selectedID))
	}
	RespondSuccess(w, http.StatusOK, dtos)
}

type addCardRequest struct {
	Name string `json:"name"`
}

func (r addCardRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	return errs
}

// POST /api/v1/cards
func (h *WalletHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	var req addCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		RespondValidationError(w, errs)
		return
	}

	card, err := h.wallet.AddCard(r.Context(), req.Name)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusCreated, toCardDTO(*card, ""))
}

// POST /api/v1/cards/{id}/select
func (h *WalletHandler) SelectCard(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}
	if err := h.wallet.SelectCard(id); err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, map[string]string{"selected_card_id": id})
}

// GET /api/v1/transactions
func (h *WalletHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs := h.wallet.Transactions()
	dtos := make([]transactionDTO, 0, len(txs))
	for _, t := range txs {
		dtos = append(dtos, toTransactionDTO(t))
	}
	RespondSuccess(w, http.StatusOK, dtos)
}

type createPaymentRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Merchant string          `json:"merchant"`
}

func (r createPaymentRequest) Validate() []FieldError {
	var errs []FieldError
	if !r.Amount.IsPositive() {
		errs = append(errs, FieldError{Field: "amount", Message: "must be greater than 0"})
	}
	if r.Merchant == "" {
		errs = append(errs, FieldError{Field: "merchant", Message: "required"})
	}
	return errs
}

// POST /api/v1/payments
func (h *WalletHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		RespondValidationError(w, errs)
		return
	}

	tx, err := h.wallet.ProcessPayment(r.Context(), req.Amount, req.Merchant)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusCreated, toTransactionDTO(*tx))
}
