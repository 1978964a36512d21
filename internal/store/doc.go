// Package store provides file-based persistence for cashbox's core data.
//
// FileStore keeps users, accounts and transactions in memory and mirrors them
// to three pipe-delimited text files under one data directory:
//   - users.txt         username|passwordHash|salt      (append)
//   - accounts.txt      accountId|owner|balance         (append, full rewrite)
//   - transactions.txt  txId|accountId|TYPE|amount|time (append)
//
// Appends are synced before the call returns. Full rewrites go through a temp
// file and a rename. Malformed lines are skipped on load, logged, and counted
// in LoadStats. All methods are concurrency-safe via one store-wide lock.
//
// The store assumes it is the only process touching its directory; no file
// locking is done.
package store
