package types

import (
	"fmt"
	"time"

	"cashbox/internal/money"
)

// TransactionRecord is one immutable entry in the transaction log.
type TransactionRecord struct {
	ID        TxID
	AccountID AccountID
	Type      TxType
	Amount    money.Money // always > 0
	Timestamp time.Time   // UTC
}

// NewTransaction stamps a record with at, truncated to UTC.
func NewTransaction(id TxID, account AccountID, typ TxType, amount money.Money, at time.Time) TransactionRecord {
	return TransactionRecord{
		ID:        id,
		AccountID: account,
		Type:      typ,
		Amount:    amount,
		Timestamp: at.UTC(),
	}
}

// String renders the record for history listings.
func (t TransactionRecord) String() string {
	return fmt.Sprintf("%s | %s | %s | %s",
		t.Timestamp.Format(TimestampLayout), t.Type, t.Amount, t.AccountID)
}
