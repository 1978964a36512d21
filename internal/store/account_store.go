package store

import (
	"fmt"

	"cashbox/internal/domain"
	"cashbox/internal/domain/types"
)

// AddAccount appends account to accounts.txt and caches it. It returns
// domain.ErrAccountExists, writing nothing, when the id is already taken.
func (s *FileStore) AddAccount(account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.ID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrAccountExists, account.ID)
	}

	if err := appendLine(s.path(AccountsFile), types.EncodeAccount(account)); err != nil {
		return fmt.Errorf("store: append %s: %w", AccountsFile, err)
	}
	s.putAccount(account)
	return nil
}

// GetAccount returns the cached account with id.
func (s *FileStore) GetAccount(id domain.AccountID) (*domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	return a, ok
}

// AccountsForUser returns owner's accounts in the order they were first added.
func (s *FileStore) AccountsForUser(owner domain.Username) []*domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Account
	for _, id := range s.accountOrder {
		if a := s.accounts[id]; a.Owner == owner {
			out = append(out, a)
		}
	}
	return out
}

// PersistAccounts rewrites accounts.txt from the cached accounts. It holds the
// store lock for the whole rewrite.
func (s *FileStore) PersistAccounts() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistAccountsLocked()
}

// ApplyTransaction mutates the account named by record, rewrites accounts.txt
// and appends record to transactions.txt under one exclusive lock.
//
// If mutate returns an error nothing is written and the error is returned
// unchanged. An I/O failure after mutate leaves the in-memory balance changed;
// callers treat it as fatal.
func (s *FileStore) ApplyTransaction(
	record domain.TransactionRecord,
	mutate func(*domain.Account) error,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[record.AccountID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, record.AccountID)
	}
	if err := mutate(account); err != nil {
		return err
	}
	if err := s.persistAccountsLocked(); err != nil {
		return err
	}
	return s.appendTransactionLocked(record)
}

func (s *FileStore) persistAccountsLocked() error {
	lines := make([]string, 0, len(s.accountOrder))
	for _, id := range s.accountOrder {
		lines = append(lines, types.EncodeAccount(s.accounts[id]))
	}
	if err := writeLines(s.path(AccountsFile), lines); err != nil {
		return fmt.Errorf("store: rewrite %s: %w", AccountsFile, err)
	}
	return nil
}

// putAccount upserts account, keeping the position of the first insert.
func (s *FileStore) putAccount(account *domain.Account) {
	if _, ok := s.accounts[account.ID]; !ok {
		s.accountOrder = append(s.accountOrder, account.ID)
	}
	s.accounts[account.ID] = account
}

func (s *FileStore) loadAccount(line string) error {
	a, err := types.DecodeAccount(line)
	if err != nil {
		return err
	}
	s.putAccount(a)
	return nil
}

// Compile-time assertion that FileStore implements domain.LedgerStore.
var _ domain.LedgerStore = (*FileStore)(nil)
