// Package banking opens accounts and moves money for an authenticated owner.
//
// Validation failures come back as domain sentinel errors (ErrInvalidAmount,
// ErrInsufficientFunds, ErrAccountNotFound); any other error is a storage
// fault.
package banking
