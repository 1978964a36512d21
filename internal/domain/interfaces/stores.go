package interfaces

import domaintypes "cashbox/internal/domain/types"

// UserStore persists registered users.
type UserStore interface {
	UsernameExists(username domaintypes.Username) bool
	GetUser(username domaintypes.Username) (domaintypes.User, bool)
	// AddUser appends without checking for duplicates; callers check first.
	AddUser(user domaintypes.User) error
}

// AccountStore persists accounts and their balances.
type AccountStore interface {
	// AddAccount fails with ErrAccountExists when the id is taken.
	AddAccount(account *domaintypes.Account) error
	GetAccount(id domaintypes.AccountID) (*domaintypes.Account, bool)
	AccountsForUser(owner domaintypes.Username) []*domaintypes.Account
	// PersistAccounts rewrites the accounts file from memory.
	PersistAccounts() error
}

// TransactionStore is the append-only transaction log.
type TransactionStore interface {
	AddTransaction(record domaintypes.TransactionRecord) error
	TransactionsForAccount(id domaintypes.AccountID) []domaintypes.TransactionRecord
}

// LedgerStore combines accounts and transactions with an atomic
// mutate-persist-record step.
type LedgerStore interface {
	AccountStore
	TransactionStore
	// ApplyTransaction runs mutate on record.AccountID, persists the accounts
	// and appends record, all under one lock. A mutate error aborts before any
	// write.
	ApplyTransaction(
		record domaintypes.TransactionRecord,
		mutate func(*domaintypes.Account) error,
	) error
}
