package banking_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cashbox/internal/crypto"
	"cashbox/internal/domain"
	"cashbox/internal/money"
	"cashbox/internal/services/auth"
	"cashbox/internal/services/banking"
	"cashbox/internal/store"
)

var clock = time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%08x", n)
	}
}

func newService(t *testing.T, dir string) (*banking.Service, *store.FileStore) {
	t.Helper()
	fs, err := store.Open(dir)
	require.NoError(t, err)
	svc := banking.New(fs,
		banking.WithClock(func() time.Time { return clock }),
		banking.WithIDSource(sequentialIDs()),
	)
	return svc, fs
}

func TestEndToEnd_Scenario(t *testing.T) {
	dir := t.TempDir()
	fs, err := store.Open(dir)
	require.NoError(t, err)
	users := auth.New(fs, crypto.NewHasher(crypto.WithIterations(1000)), nil)
	bank := banking.New(fs)

	ok, err := users.Register("alice", []byte("secret1"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = users.Register("alice", []byte("secret2"))
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = users.Login("alice", []byte("wrongpw"))
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = users.Login("alice", []byte("secret1"))
	require.NoError(t, err)
	require.True(t, ok)

	acc, err := bank.OpenAccount("alice")
	require.NoError(t, err)
	assert.Equal(t, "0.00", acc.Balance().String())
	assert.Regexp(t, `^alice-[0-9a-f]{8}$`, string(acc.ID))

	bal, err := bank.Deposit("alice", acc.ID, money.MustParse("50.00"))
	require.NoError(t, err)
	assert.Equal(t, "50.00", bal.String())

	history, err := bank.History("alice", acc.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.Deposit, history[0].Type)
	assert.Regexp(t, `^TX-[0-9a-f]{8}$`, string(history[0].ID))

	_, err = bank.Withdraw("alice", acc.ID, money.MustParse("75.00"))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, "50.00", acc.Balance().String())

	bal, err = bank.Withdraw("alice", acc.ID, money.MustParse("20.00"))
	require.NoError(t, err)
	assert.Equal(t, "30.00", bal.String())

	history, err = bank.History("alice", acc.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.Withdraw, history[1].Type)
	assert.Equal(t, "20.00", history[1].Amount.String())

	// Everything above survives a restart.
	reloaded, err := store.Open(dir)
	require.NoError(t, err)
	got, ok := reloaded.GetAccount(acc.ID)
	require.True(t, ok)
	assert.Equal(t, "30.00", got.Balance().String())
	assert.Len(t, reloaded.TransactionsForAccount(acc.ID), 2)
	assert.True(t, reloaded.UsernameExists("alice"))
}

func TestMove_RejectsNonPositiveAmounts(t *testing.T) {
	svc, fs := newService(t, t.TempDir())
	acc, err := svc.OpenAccount("alice")
	require.NoError(t, err)

	for _, amt := range []string{"0", "-5", "0.004"} {
		_, err := svc.Deposit("alice", acc.ID, money.MustParse(amt))
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, amt)
		_, err = svc.Withdraw("alice", acc.ID, money.MustParse(amt))
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, amt)
	}
	assert.Empty(t, fs.TransactionsForAccount(acc.ID))
}

func TestMove_OtherOwnersAccountIsNotFound(t *testing.T) {
	svc, _ := newService(t, t.TempDir())
	acc, err := svc.OpenAccount("alice")
	require.NoError(t, err)

	_, err = svc.Deposit("mallory", acc.ID, money.MustParse("1"))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	_, err = svc.Withdraw("alice", "alice-missing", money.MustParse("1"))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	_, err = svc.History("mallory", acc.ID)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	assert.Equal(t, "0.00", acc.Balance().String())
}

func TestOpenAccount_IDsAndListing(t *testing.T) {
	svc, _ := newService(t, t.TempDir())

	a1, err := svc.OpenAccount("alice")
	require.NoError(t, err)
	_, err = svc.OpenAccount("bob")
	require.NoError(t, err)
	a2, err := svc.OpenAccount("alice")
	require.NoError(t, err)

	assert.Equal(t, domain.AccountID("alice-00000001"), a1.ID)
	assert.Equal(t, domain.AccountID("alice-00000003"), a2.ID)

	list := svc.Accounts("alice")
	require.Len(t, list, 2)
	assert.Equal(t, a1.ID, list[0].ID)
	assert.Equal(t, a2.ID, list[1].ID)
}

func TestOpenAccount_IDCollisionKeepsExistingAccount(t *testing.T) {
	dir := t.TempDir()
	fs, err := store.Open(dir)
	require.NoError(t, err)

	ids := []string{"deadbeef", "deadbeef", "cafef00d"}
	svc := banking.New(fs, banking.WithIDSource(func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}))

	first, err := svc.OpenAccount("alice")
	require.NoError(t, err)
	_, err = svc.Deposit("alice", first.ID, money.MustParse("50.00"))
	require.NoError(t, err)

	second, err := svc.OpenAccount("alice")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountID("alice-cafef00d"), second.ID)

	list := svc.Accounts("alice")
	require.Len(t, list, 2)
	assert.Equal(t, "50.00", list[0].Balance().String())
	assert.Equal(t, "0.00", list[1].Balance().String())

	reloaded, err := store.Open(dir)
	require.NoError(t, err)
	got, ok := reloaded.GetAccount(first.ID)
	require.True(t, ok)
	assert.Equal(t, "50.00", got.Balance().String())
}

func TestOpenAccount_GivesUpAfterRepeatedCollisions(t *testing.T) {
	fs, err := store.Open(t.TempDir())
	require.NoError(t, err)
	svc := banking.New(fs, banking.WithIDSource(func() string { return "deadbeef" }))

	_, err = svc.OpenAccount("alice")
	require.NoError(t, err)
	_, err = svc.OpenAccount("alice")
	assert.ErrorIs(t, err, domain.ErrAccountExists)
	assert.Len(t, svc.Accounts("alice"), 1)
}

func TestDeposit_RecordsClockAndRounds(t *testing.T) {
	svc, fs := newService(t, t.TempDir())
	acc, err := svc.OpenAccount("alice")
	require.NoError(t, err)

	bal, err := svc.Deposit("alice", acc.ID, money.MustParse("10.005"))
	require.NoError(t, err)
	assert.Equal(t, "10.01", bal.String())

	recs := fs.TransactionsForAccount(acc.ID)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].Timestamp.Equal(clock))
	assert.Equal(t, domain.TxID("TX-00000002"), recs[0].ID)
}
