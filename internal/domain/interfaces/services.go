package interfaces

import (
	domaintypes "cashbox/internal/domain/types"
	"cashbox/internal/money"
)

// PasswordHasher derives and checks salted password hashes.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(password []byte, salt string) (string, error)
	Verify(storedHash string, password []byte, salt string) bool
}

// AuthService registers users and checks their credentials.
//
// Validation failures are reported as false; only lower-level faults are
// returned as errors.
type AuthService interface {
	Register(username string, password []byte) (bool, error)
	Login(username string, password []byte) (bool, error)
}

// BankingService opens accounts and moves money for an authenticated owner.
type BankingService interface {
	OpenAccount(owner domaintypes.Username) (*domaintypes.Account, error)
	Accounts(owner domaintypes.Username) []*domaintypes.Account
	Deposit(
		owner domaintypes.Username,
		id domaintypes.AccountID,
		amount money.Money,
	) (money.Money, error)
	Withdraw(
		owner domaintypes.Username,
		id domaintypes.AccountID,
		amount money.Money,
	) (money.Money, error)
	History(
		owner domaintypes.Username,
		id domaintypes.AccountID,
	) ([]domaintypes.TransactionRecord, error)
}
