package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tapwallet/walletd/internal/domain"
)

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data"`
	Error   *APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func RespondSuccess(w http.ResponseWriter, status int, data any) {
	RespondJSON(w, status, APIResponse{Success: true, Data: data})
}

func RespondAppError(w http.ResponseWriter, appErr *AppError, details any) {
	RespondJSON(w, appErr.Status, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: details,
		},
	})
}

func RespondValidationError(w http.ResponseWriter, fields []FieldError) {
	RespondAppError(w, ErrValidationFailed, fields)
}

func RespondDomainError(w http.ResponseWriter, err error) {
	var appErr *AppError

	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrCardNotFound):
		appErr = ErrCardNotFound
	case errors.Is(err, domain.ErrNoCardSelected):
		appErr = ErrNoCardSelected
	case errors.Is(err, domain.ErrPaymentInFlight):
		appErr = ErrPaymentInFlight
	case errors.Is(err, domain.ErrSettlementFailed):
		appErr = ErrPaymentFailed
	case errors.Is(err, domain.ErrLimitExceeded):
		appErr = ErrLimitExceeded
	case errors.Is(err, domain.ErrInvalidAmount):
		appErr = ErrInvalidAmount
	case errors.Is(err, domain.ErrInvalidMerchant), errors.Is(err, domain.ErrInvalidCardName):
		appErr = ErrInvalidRequest
	case errors.Is(err, domain.ErrFaceNameRequired), errors.Is(err, domain.ErrFaceImageEmpty):
		appErr = ErrInvalidRequest
	case errors.Is(err, domain.ErrFaceInFlight):
		appErr = ErrFaceInFlight
	case errors.Is(err, domain.ErrFaceUnavailable):
		appErr = ErrFaceUnavailable
	default:
		slog.Error("unhandled domain error", "error", err)
		appErr = ErrInternalError
	}

	RespondAppError(w, appErr, nil)
}
