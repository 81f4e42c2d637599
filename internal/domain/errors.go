package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrCardNotFound     = errors.New("card not found")
	ErrNoCardSelected   = errors.New("no card selected")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrInvalidMerchant  = errors.New("merchant is required")
	ErrInvalidCardName  = errors.New("card name is required")
	ErrLimitExceeded    = errors.New("payment limit exceeded")
	ErrPaymentInFlight  = errors.New("a payment is already being processed")
	ErrSettlementFailed = errors.New("settlement failed")
	ErrFaceNameRequired = errors.New("person name is required")
	ErrFaceImageEmpty   = errors.New("face image is empty")
	ErrFaceInFlight     = errors.New("a face request is already in progress")
	ErrFaceUnavailable  = errors.New("face service unavailable")
)
