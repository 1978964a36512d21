// Package app wires application dependencies for the CLI.
//
// It loads Config from CASHBOX_* environment variables (optionally seeded from
// a .env file), builds the slog logger, opens the file store and constructs
// the auth and banking services, exposing them via the App struct.
package app
