package types

// Username identifies a registered user. Comparison is exact and case-sensitive.
type Username string

// String returns the string form of the username.
func (u Username) String() string { return string(u) }

// AccountID uniquely identifies an account across all users.
type AccountID string

// String returns the string form of the identifier.
func (id AccountID) String() string { return string(id) }

// TxID uniquely identifies a transaction record.
type TxID string

// String returns the string form of the identifier.
func (id TxID) String() string { return string(id) }

// TxType is the kind of balance movement a transaction records.
type TxType string

const (
	Deposit  TxType = "DEPOSIT"
	Withdraw TxType = "WITHDRAW"
)

// Valid reports whether t is a known transaction type.
func (t TxType) Valid() bool { return t == Deposit || t == Withdraw }

// String returns the string form of the type.
func (t TxType) String() string { return string(t) }
