package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cashbox/internal/domain/types"
	"cashbox/internal/money"
)

func TestUserLine(t *testing.T) {
	u := types.User{Username: "ali|ce", PasswordHash: "aGFzaA==", Salt: "c2FsdA=="}
	line := types.EncodeUser(u)
	assert.Equal(t, "ali%7Cce|aGFzaA==|c2FsdA==", line)

	got, err := types.DecodeUser(line)
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestAccountLine(t *testing.T) {
	a := types.NewAccount("alice-1a2b3c4d", "alice", money.MustParse("30"))
	line := types.EncodeAccount(a)
	assert.Equal(t, "alice-1a2b3c4d|alice|30.00", line)

	got, err := types.DecodeAccount(line)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, a.Owner, got.Owner)
	assert.True(t, a.Balance().Equal(got.Balance()))
}

func TestTransactionLine(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 890000000, time.FixedZone("X", 3600))
	tx := types.NewTransaction("TX-00ff00ff", "alice-1a2b3c4d", types.Deposit, money.MustParse("50"), at)
	line := types.EncodeTransaction(tx)
	assert.Equal(t, "TX-00ff00ff|alice-1a2b3c4d|DEPOSIT|50.00|2026-03-04T04:06:07.89Z", line)

	got, err := types.DecodeTransaction(line)
	require.NoError(t, err)
	assert.Equal(t, tx.ID, got.ID)
	assert.Equal(t, tx.AccountID, got.AccountID)
	assert.Equal(t, tx.Type, got.Type)
	assert.True(t, tx.Amount.Equal(got.Amount))
	assert.True(t, tx.Timestamp.Equal(got.Timestamp))
}

func TestDecode_Malformed(t *testing.T) {
	users := []string{"alice|hash", "alice|hash|salt|extra", "|hash|salt"}
	for _, l := range users {
		_, err := types.DecodeUser(l)
		assert.ErrorIs(t, err, types.ErrMalformedRecord, l)
	}

	accounts := []string{"a|alice", "a|alice|abc", "a|alice|-1.00", "|alice|1.00"}
	for _, l := range accounts {
		_, err := types.DecodeAccount(l)
		assert.ErrorIs(t, err, types.ErrMalformedRecord, l)
	}

	txs := []string{
		"TX-1|a|DEPOSIT|5.00",
		"TX-1|a|REFUND|5.00|2026-01-01T00:00:00Z",
		"TX-1|a|DEPOSIT|five|2026-01-01T00:00:00Z",
		"TX-1|a|DEPOSIT|0.00|2026-01-01T00:00:00Z",
		"TX-1|a|WITHDRAW|5.00|yesterday",
		"|a|WITHDRAW|5.00|2026-01-01T00:00:00Z",
	}
	for _, l := range txs {
		_, err := types.DecodeTransaction(l)
		assert.ErrorIs(t, err, types.ErrMalformedRecord, l)
	}
}
