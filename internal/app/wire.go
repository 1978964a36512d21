package app

import (
	"log/slog"

	"cashbox/internal/crypto"
	authsvc "cashbox/internal/services/auth"
	bankingsvc "cashbox/internal/services/banking"
	"cashbox/internal/store"
)

// New constructs the dependency graph from cfg. Opening the store loads every
// data file, so New fails on any I/O error there.
func New(cfg Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// File-based store
	fs, err := store.Open(cfg.Home, store.WithLogger(logger.With("component", "store")))
	if err != nil {
		return nil, err
	}

	// High-level services
	auth := authsvc.New(fs, crypto.NewHasher(), logger.With("component", "auth"))
	banking := bankingsvc.New(fs, bankingsvc.WithLogger(logger.With("component", "banking")))

	return &App{
		Config:  cfg,
		Logger:  logger,
		Store:   fs,
		Auth:    auth,
		Banking: banking,
	}, nil
}
