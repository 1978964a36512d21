package app

import (
	"log/slog"

	"cashbox/internal/domain"
	"cashbox/internal/store"
)

// App bundles the store, services and logger for the CLI.
type App struct {
	Config  Config
	Logger  *slog.Logger
	Store   *store.FileStore
	Auth    domain.AuthService
	Banking domain.BankingService
}
