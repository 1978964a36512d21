package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"cashbox/internal/domain"
)

const (
	UsersFile        = "users.txt"
	AccountsFile     = "accounts.txt"
	TransactionsFile = "transactions.txt"
)

// LoadStats reports what Open read from disk.
type LoadStats struct {
	Users        int
	Accounts     int
	Transactions int

	SkippedUsers        int
	SkippedAccounts     int
	SkippedTransactions int
}

// Skipped returns the total number of malformed lines ignored on load.
func (s LoadStats) Skipped() int {
	return s.SkippedUsers + s.SkippedAccounts + s.SkippedTransactions
}

// FileStore is the authoritative in-memory copy of users, accounts and
// transactions, backed by one text file per kind.
//
// A single RWMutex guards all three collections and their files, so every
// check-then-write sequence inside a method is atomic with respect to other
// store calls. Reads share the lock; appends and rewrites hold it exclusively.
type FileStore struct {
	dir    string
	logger *slog.Logger

	mu           sync.RWMutex
	users        map[domain.Username]domain.User
	accounts     map[domain.AccountID]*domain.Account
	accountOrder []domain.AccountID
	transactions []domain.TransactionRecord
	stats        LoadStats
}

// Option customises a FileStore.
type Option func(*FileStore)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *FileStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open creates dir and the three data files if needed, then loads every file
// into memory. Calling Open on an existing directory is safe.
func Open(dir string, opts ...Option) (*FileStore, error) {
	s := &FileStore{
		dir:      dir,
		logger:   slog.Default(),
		users:    make(map[domain.Username]domain.User),
		accounts: make(map[domain.AccountID]*domain.Account),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("store: create %s: %w", dir, err)
	}
	for _, name := range []string{UsersFile, AccountsFile, TransactionsFile} {
		if err := ensureFile(s.path(name)); err != nil {
			return nil, fmt.Errorf("store: create %s: %w", name, err)
		}
	}
	if err := s.load(); err != nil {
		return nil, err
	}

	s.logger.Info("store opened",
		"dir", dir,
		"users", s.stats.Users,
		"accounts", s.stats.Accounts,
		"transactions", s.stats.Transactions,
		"skipped", s.stats.Skipped(),
	)
	return s, nil
}

// Dir returns the data directory.
func (s *FileStore) Dir() string { return s.dir }

// Stats returns the counts gathered by Open.
func (s *FileStore) Stats() LoadStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

func (s *FileStore) path(name string) string { return filepath.Join(s.dir, name) }

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if s.stats.SkippedUsers, err = s.loadFile(UsersFile, s.loadUser); err != nil {
		return err
	}
	if s.stats.SkippedAccounts, err = s.loadFile(AccountsFile, s.loadAccount); err != nil {
		return err
	}
	if s.stats.SkippedTransactions, err = s.loadFile(TransactionsFile, s.loadTransaction); err != nil {
		return err
	}
	s.stats.Users = len(s.users)
	s.stats.Accounts = len(s.accounts)
	s.stats.Transactions = len(s.transactions)
	return nil
}

// loadFile feeds every line of name to decode. Lines decode rejects are
// logged and counted; only I/O failures abort.
func (s *FileStore) loadFile(name string, decode func(line string) error) (int, error) {
	skipped := 0
	err := scanLines(s.path(name), func(n int, line string) {
		if err := decode(line); err != nil {
			skipped++
			s.logger.Warn("skipping malformed line", "file", name, "line", n, "error", err)
		}
	})
	if err != nil {
		return skipped, fmt.Errorf("store: read %s: %w", name, err)
	}
	return skipped, nil
}
