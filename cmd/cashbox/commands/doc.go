// Package commands defines the cashbox CLI and wires dependencies for subcommands.
//
// Commands
//
//   - shell          Interactive login/register menu (the default)
//   - register       Create a login
//   - accounts open  Open a new zero-balance account
//   - accounts list  List your accounts and balances
//   - deposit        Deposit into one of your accounts
//   - withdraw       Withdraw from one of your accounts
//   - history        Print an account's transactions
//
// # Implementation
//
// The root command loads configuration, builds the logger and opens the data
// directory before any subcommand runs. One-shot commands log in with --user
// and a password prompt; passwords are never taken from flags.
package commands
