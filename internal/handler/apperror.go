package handler

import "net/http"

type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string { return e.Message }

var (
	ErrInvalidRequest   = &AppError{http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body"}
	ErrValidationFailed = &AppError{http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed"}
	ErrResourceNotFound = &AppError{http.StatusNotFound, "RESOURCE_NOT_FOUND", "Resource not found"}
	ErrInternalError    = &AppError{http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred"}

	ErrCardNotFound    = &AppError{http.StatusNotFound, "CARD_NOT_FOUND", "Card not found"}
	ErrNoCardSelected  = &AppError{http.StatusUnprocessableEntity, "NO_CARD_SELECTED", "Please select a card first"}
	ErrPaymentInFlight = &AppError{http.StatusConflict, "PAYMENT_IN_FLIGHT", "A payment is already being processed"}
	ErrPaymentFailed   = &AppError{http.StatusUnprocessableEntity, "PAYMENT_FAILED", "Payment failed. Please try again"}
	ErrLimitExceeded   = &AppError{http.StatusUnprocessableEntity, "PAYMENT_LIMIT_EXCEEDED", "Payment limit exceeded"}
	ErrInvalidAmount   = &AppError{http.StatusBadRequest, "INVALID_AMOUNT", "Amount must be greater than zero"}

	ErrFaceInFlight    = &AppError{http.StatusConflict, "FACE_REQUEST_IN_FLIGHT", "A face request is already in progress"}
	ErrFaceUnavailable = &AppError{http.StatusBadGateway, "FACE_SERVICE_UNAVAILABLE", "Face recognition service unavailable"}

	ErrMissingIdempotencyKey = &AppError{http.StatusBadRequest, "MISSING_IDEMPOTENCY_KEY", "Idempotency-Key header is required"}
	ErrIdempotencyConflict   = &AppError{http.StatusConflict, "IDEMPOTENCY_CONFLICT", "Idempotency key already used with a different request"}
)
