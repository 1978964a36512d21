// Package auth registers users and verifies their passwords.
//
// It enforces the username and password policy, derives salted hashes through
// a domain.PasswordHasher, and persists users via the domain.UserStore.
package auth
