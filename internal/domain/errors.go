package domain

import (
	"errors"

	types "cashbox/internal/domain/types"
)

var (
	// ErrInvalidAmount is returned when a deposit or withdrawal amount is not positive.
	ErrInvalidAmount = errors.New("amount must be > 0")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotFound is returned when the account does not exist or belongs
	// to someone else.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountExists is returned when an account id is already taken.
	ErrAccountExists = errors.New("account already exists")

	// ErrMalformedRecord is returned when a stored line cannot be decoded.
	ErrMalformedRecord = types.ErrMalformedRecord
)
