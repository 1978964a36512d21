package banking

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"cashbox/internal/domain"
	"cashbox/internal/domain/types"
	"cashbox/internal/money"
)

// Service opens accounts and records deposits and withdrawals.
//
// Balance changes go through LedgerStore.ApplyTransaction, so the new balance,
// the rewritten accounts file and the transaction line are produced under one
// store lock.
type Service struct {
	store  domain.LedgerStore
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// Option customises a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces time.Now for transaction timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDSource replaces the random suffix used in account and transaction ids.
func WithIDSource(next func() string) Option {
	return func(s *Service) { s.newID = next }
}

// New returns a banking service backed by store.
func New(store domain.LedgerStore, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: slog.Default(),
		now:    time.Now,
		newID:  shortUUID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// maxIDAttempts bounds how many fresh ids OpenAccount draws after collisions.
const maxIDAttempts = 8

// shortUUID returns the first eight hex characters of a random UUID.
func shortUUID() string { return uuid.NewString()[:8] }

// OpenAccount creates an empty account for owner. An id that is already taken
// is redrawn; existing accounts are never replaced.
func (s *Service) OpenAccount(owner domain.Username) (*domain.Account, error) {
	var err error
	for i := 0; i < maxIDAttempts; i++ {
		id := domain.AccountID(fmt.Sprintf("%s-%s", owner, s.newID()))
		account := types.NewAccount(id, owner, money.Zero)
		err = s.store.AddAccount(account)
		if err == nil {
			s.logger.Info("account opened", "owner", owner, "account", id)
			return account, nil
		}
		if !errors.Is(err, domain.ErrAccountExists) {
			return nil, err
		}
		s.logger.Warn("account id collision", "owner", owner, "account", id)
	}
	return nil, fmt.Errorf("open account for %s: %w", owner, err)
}

// Accounts lists owner's accounts.
func (s *Service) Accounts(owner domain.Username) []*domain.Account {
	return s.store.AccountsForUser(owner)
}

// Deposit adds amount to the account and returns the new balance.
func (s *Service) Deposit(
	owner domain.Username,
	id domain.AccountID,
	amount money.Money,
) (money.Money, error) {
	return s.move(owner, id, domain.Deposit, amount, func(a *domain.Account) error {
		a.Deposit(amount)
		return nil
	})
}

// Withdraw removes amount from the account and returns the new balance.
// It returns domain.ErrInsufficientFunds, leaving everything untouched, when
// the balance does not cover amount.
func (s *Service) Withdraw(
	owner domain.Username,
	id domain.AccountID,
	amount money.Money,
) (money.Money, error) {
	return s.move(owner, id, domain.Withdraw, amount, func(a *domain.Account) error {
		if !a.Withdraw(amount) {
			return domain.ErrInsufficientFunds
		}
		return nil
	})
}

// History returns the account's transactions, oldest first.
func (s *Service) History(
	owner domain.Username,
	id domain.AccountID,
) ([]domain.TransactionRecord, error) {
	if _, err := s.owned(owner, id); err != nil {
		return nil, err
	}
	return s.store.TransactionsForAccount(id), nil
}

func (s *Service) move(
	owner domain.Username,
	id domain.AccountID,
	typ domain.TxType,
	amount money.Money,
	mutate func(*domain.Account) error,
) (money.Money, error) {
	if !amount.IsPositive() {
		return money.Money{}, domain.ErrInvalidAmount
	}
	if _, err := s.owned(owner, id); err != nil {
		return money.Money{}, err
	}

	txID := domain.TxID("TX-" + s.newID())
	record := types.NewTransaction(txID, id, typ, amount, s.now())

	var balance money.Money
	err := s.store.ApplyTransaction(record, func(a *domain.Account) error {
		if err := mutate(a); err != nil {
			return err
		}
		balance = a.Balance()
		return nil
	})
	if err != nil {
		return money.Money{}, err
	}

	s.logger.Info("transaction recorded",
		"account", id, "tx", txID, "type", typ, "amount", amount.String(), "balance", balance.String())
	return balance, nil
}

// owned returns the account if it exists and belongs to owner. Someone else's
// account is reported as not found.
func (s *Service) owned(owner domain.Username, id domain.AccountID) (*domain.Account, error) {
	account, ok := s.store.GetAccount(id)
	if !ok || account.Owner != owner {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}
	return account, nil
}

// Compile-time assertion that Service implements domain.BankingService.
var _ domain.BankingService = (*Service)(nil)
