package domain

import "errors"

// Business-rule rejections surfaced to the caller as-is. None of these are
// retried; the only compensating action anywhere is the withdrawal-reject
// refund.
var (
	ErrNotFound = errors.New("record not found")

	ErrInsufficientBalance    = errors.New("insufficient balance")
	ErrBelowMinimumWithdrawal = errors.New("amount below minimum withdrawal")
	ErrBankDetailsMissing     = errors.New("bank details not set")
	ErrInsufficientReferrals  = errors.New("not enough referrals")

	// ErrAlreadyProcessed guards every transition out of a terminal state.
	// A second approve or reject must not re-run its side effects.
	ErrAlreadyProcessed = errors.New("request already processed")

	ErrBonusAlreadyClaimed = errors.New("daily bonus already claimed today")

	ErrContactGainActive       = errors.New("contact gain already active")
	ErrAdvertisementEnabled    = errors.New("advertisement already enabled")
	ErrAdvertisementNotEnabled = errors.New("advertisement feature not enabled")
	ErrInvalidPaymentType      = errors.New("invalid payment type")
	ErrInvalidPaymentAmount    = errors.New("incorrect payment amount")

	ErrOutOfStock    = errors.New("product is out of stock")
	ErrEmptyOrder    = errors.New("no items in order")
	ErrInvalidStatus = errors.New("invalid status")
)
