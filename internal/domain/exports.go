package domain

import (
	interfaces "cashbox/internal/domain/interfaces"
	types "cashbox/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Username          = types.Username
	AccountID         = types.AccountID
	TxID              = types.TxID
	TxType            = types.TxType
	User              = types.User
	Account           = types.Account
	TransactionRecord = types.TransactionRecord
)

const (
	Deposit  = types.Deposit
	Withdraw = types.Withdraw
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	UserStore        = interfaces.UserStore
	AccountStore     = interfaces.AccountStore
	TransactionStore = interfaces.TransactionStore
	LedgerStore      = interfaces.LedgerStore
	PasswordHasher   = interfaces.PasswordHasher
	AuthService      = interfaces.AuthService
	BankingService   = interfaces.BankingService
)
