package types

import (
	"sync"

	"cashbox/internal/money"
)

// Account is a monetary account owned by one user.
//
// The balance is never negative and only changes through Deposit and Withdraw.
// The account's own lock serializes those calls on one instance; it does not
// make the change durable. Accounts are shared by pointer and must not be
// copied.
type Account struct {
	ID    AccountID
	Owner Username

	mu      sync.Mutex
	balance money.Money
}

// NewAccount returns an account holding balance.
func NewAccount(id AccountID, owner Username, balance money.Money) *Account {
	return &Account{ID: id, Owner: owner, balance: balance}
}

// Balance returns the current balance.
func (a *Account) Balance() money.Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit adds amount to the balance. Callers validate that amount is positive.
func (a *Account) Deposit(amount money.Money) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
}

// Withdraw subtracts amount if the balance covers it. It reports false and
// leaves the balance untouched otherwise.
func (a *Account) Withdraw(amount money.Money) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.balance.Cmp(amount) < 0 {
		return false
	}
	a.balance = a.balance.Sub(amount)
	return true
}
