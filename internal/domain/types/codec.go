package types

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cashbox/internal/money"
)

const (
	fieldSep      = "|"
	escapedSep    = "%7C"
	userFields    = 3
	accountFields = 3
	txFields      = 5
)

// TimestampLayout is the on-disk form of transaction timestamps.
const TimestampLayout = time.RFC3339Nano

// ErrMalformedRecord is returned by the Decode* functions for any line that
// cannot be turned into a valid record.
var ErrMalformedRecord = errors.New("malformed record")

func escape(s string) string   { return strings.ReplaceAll(s, fieldSep, escapedSep) }
func unescape(s string) string { return strings.ReplaceAll(s, escapedSep, fieldSep) }

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedRecord, fmt.Sprintf(format, args...))
}

func split(line string, want int) ([]string, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) != want {
		return nil, malformed("want %d fields, got %d", want, len(parts))
	}
	return parts, nil
}

// EncodeUser renders u as username|passwordHash|salt.
func EncodeUser(u User) string {
	return strings.Join([]string{escape(u.Username.String()), u.PasswordHash, u.Salt}, fieldSep)
}

// DecodeUser parses a users.txt line.
func DecodeUser(line string) (User, error) {
	p, err := split(line, userFields)
	if err != nil {
		return User{}, err
	}
	if p[0] == "" {
		return User{}, malformed("empty username")
	}
	return User{Username: Username(unescape(p[0])), PasswordHash: p[1], Salt: p[2]}, nil
}

// EncodeAccount renders a as accountId|ownerUsername|balance.
func EncodeAccount(a *Account) string {
	return strings.Join([]string{
		escape(a.ID.String()),
		escape(a.Owner.String()),
		a.Balance().String(),
	}, fieldSep)
}

// DecodeAccount parses an accounts.txt line.
func DecodeAccount(line string) (*Account, error) {
	p, err := split(line, accountFields)
	if err != nil {
		return nil, err
	}
	if p[0] == "" {
		return nil, malformed("empty account id")
	}
	bal, err := money.Parse(p[2])
	if err != nil {
		return nil, malformed("balance: %v", err)
	}
	if bal.IsNegative() {
		return nil, malformed("negative balance %s", bal)
	}
	return NewAccount(AccountID(unescape(p[0])), Username(unescape(p[1])), bal), nil
}

// EncodeTransaction renders t as txId|accountId|TYPE|amount|timestamp.
func EncodeTransaction(t TransactionRecord) string {
	return strings.Join([]string{
		escape(t.ID.String()),
		escape(t.AccountID.String()),
		t.Type.String(),
		t.Amount.String(),
		t.Timestamp.UTC().Format(TimestampLayout),
	}, fieldSep)
}

// DecodeTransaction parses a transactions.txt line.
func DecodeTransaction(line string) (TransactionRecord, error) {
	p, err := split(line, txFields)
	if err != nil {
		return TransactionRecord{}, err
	}
	if p[0] == "" || p[1] == "" {
		return TransactionRecord{}, malformed("empty identifier")
	}
	typ := TxType(p[2])
	if !typ.Valid() {
		return TransactionRecord{}, malformed("unknown type %q", p[2])
	}
	amount, err := money.Parse(p[3])
	if err != nil {
		return TransactionRecord{}, malformed("amount: %v", err)
	}
	if !amount.IsPositive() {
		return TransactionRecord{}, malformed("non-positive amount %s", amount)
	}
	at, err := time.Parse(TimestampLayout, p[4])
	if err != nil {
		return TransactionRecord{}, malformed("timestamp: %v", err)
	}
	return NewTransaction(TxID(unescape(p[0])), AccountID(unescape(p[1])), typ, amount, at), nil
}
