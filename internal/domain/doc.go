// Package domain defines core data models and interfaces shared across the app.
// It contains plain types, contracts and sentinel errors only.
package domain
