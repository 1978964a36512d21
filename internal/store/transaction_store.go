package store

import (
	"fmt"

	"cashbox/internal/domain"
	"cashbox/internal/domain/types"
)

// AddTransaction appends record to transactions.txt and the cached log.
func (s *FileStore) AddTransaction(record domain.TransactionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendTransactionLocked(record)
}

// TransactionsForAccount returns the records for id in the order they were
// written.
func (s *FileStore) TransactionsForAccount(id domain.AccountID) []domain.TransactionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.TransactionRecord
	for _, t := range s.transactions {
		if t.AccountID == id {
			out = append(out, t)
		}
	}
	return out
}

func (s *FileStore) appendTransactionLocked(record domain.TransactionRecord) error {
	if err := appendLine(s.path(TransactionsFile), types.EncodeTransaction(record)); err != nil {
		return fmt.Errorf("store: append %s: %w", TransactionsFile, err)
	}
	s.transactions = append(s.transactions, record)
	return nil
}

func (s *FileStore) loadTransaction(line string) error {
	t, err := types.DecodeTransaction(line)
	if err != nil {
		return err
	}
	s.transactions = append(s.transactions, t)
	return nil
}

// Compile-time assertion that FileStore implements domain.TransactionStore.
var _ domain.TransactionStore = (*FileStore)(nil)
