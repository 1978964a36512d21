package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"cashbox/internal/crypto"
	"cashbox/internal/domain"
	"cashbox/internal/money"
)

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive banking menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

type shell struct {
	p   *prompter
	out io.Writer
}

// runShell drives the menus until the user exits or input ends.
func runShell(in io.Reader, out io.Writer) error {
	sh := &shell{p: newPrompter(in, out), out: out}
	err := sh.mainMenu()
	if errors.Is(err, io.EOF) {
		err = nil
	}
	fmt.Fprintln(out, "Goodbye.")
	return err
}

func (sh *shell) mainMenu() error {
	_, _ = headColor.Fprintln(sh.out, "=== Secure Banking Application ===")
	for {
		fmt.Fprint(sh.out, "\n1) Login\n2) Register\n3) Exit\n")
		choice, err := sh.p.Line("Choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = sh.login()
		case "2":
			err = sh.register()
		case "3":
			return nil
		default:
			failure(sh.out, "Invalid option.")
		}
		if err != nil {
			return err
		}
	}
}

func (sh *shell) register() error {
	name, err := sh.p.Line("Choose a username: ")
	if err != nil {
		return err
	}
	pw, err := sh.p.Password("Choose a password (min 6 chars): ")
	if err != nil {
		return err
	}
	defer crypto.Wipe(pw)

	ok, err := appCtx.Auth.Register(name, pw)
	if err != nil {
		return err
	}
	if ok {
		success(sh.out, "Registration successful. You can now log in.")
	} else {
		failure(sh.out, "Registration failed (username may exist or password too short).")
	}
	return nil
}

func (sh *shell) login() error {
	name, err := sh.p.Line("Username: ")
	if err != nil {
		return err
	}
	owner, err := login(sh.p, name)
	if errors.Is(err, errLoginFailed) {
		failure(sh.out, "Login failed. Check username/password.")
		return nil
	}
	if err != nil {
		return err
	}
	success(sh.out, "Login successful. Welcome, %s!", owner)
	return sh.userMenu(owner)
}

func (sh *shell) userMenu(owner domain.Username) error {
	for {
		fmt.Fprintf(sh.out, "\n--- User Menu (%s) ---\n", owner)
		fmt.Fprint(sh.out, "1) Create New Account\n2) View Accounts\n3) Deposit\n4) Withdraw\n5) Transaction History\n6) Logout\n")
		choice, err := sh.p.Line("Choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = sh.openAccount(owner)
		case "2":
			sh.listAccounts(owner)
		case "3":
			err = sh.move(owner, appCtx.Banking.Deposit, "Deposit complete")
		case "4":
			err = sh.move(owner, appCtx.Banking.Withdraw, "Withdrawal complete")
		case "5":
			err = sh.history(owner)
		case "6":
			fmt.Fprintln(sh.out, "Logged out.")
			return nil
		default:
			failure(sh.out, "Invalid option.")
		}
		if err != nil {
			return err
		}
	}
}

func (sh *shell) openAccount(owner domain.Username) error {
	acc, err := appCtx.Banking.OpenAccount(owner)
	if err != nil {
		return err
	}
	success(sh.out, "Account created: %s", acc.ID)
	return nil
}

func (sh *shell) listAccounts(owner domain.Username) []*domain.Account {
	accounts := appCtx.Banking.Accounts(owner)
	if len(accounts) == 0 {
		fmt.Fprintln(sh.out, "No accounts found. Create one first.")
		return nil
	}
	fmt.Fprintln(sh.out, "Your accounts:")
	for i, a := range accounts {
		fmt.Fprintf(sh.out, "%d) %s | Balance: %s\n", i+1, a.ID, a.Balance())
	}
	return accounts
}

// selectAccount returns nil with no error when the user has no accounts or
// picks an invalid entry.
func (sh *shell) selectAccount(owner domain.Username) (*domain.Account, error) {
	accounts := sh.listAccounts(owner)
	if len(accounts) == 0 {
		return nil, nil
	}
	choice, err := sh.p.Line("Select account number: ")
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(choice)
	if err != nil {
		failure(sh.out, "Invalid input.")
		return nil, nil
	}
	if n < 1 || n > len(accounts) {
		failure(sh.out, "Invalid selection.")
		return nil, nil
	}
	return accounts[n-1], nil
}

func (sh *shell) move(owner domain.Username, move moveFunc, done string) error {
	acc, err := sh.selectAccount(owner)
	if err != nil || acc == nil {
		return err
	}
	raw, err := sh.p.Line("Amount: ")
	if err != nil {
		return err
	}
	amount, err := money.Parse(raw)
	if err != nil {
		failure(sh.out, "Invalid amount.")
		return nil
	}

	balance, err := move(owner, acc.ID, amount)
	if err != nil {
		if msg, ok := explain(err); ok {
			failure(sh.out, msg)
			return nil
		}
		return err
	}
	success(sh.out, "%s. New balance: %s", done, balance)
	return nil
}

func (sh *shell) history(owner domain.Username) error {
	acc, err := sh.selectAccount(owner)
	if err != nil || acc == nil {
		return err
	}
	txs, err := appCtx.Banking.History(owner, acc.ID)
	if err != nil {
		if msg, ok := explain(err); ok {
			failure(sh.out, msg)
			return nil
		}
		return err
	}
	printHistory(sh.out, txs)
	return nil
}

func printHistory(w io.Writer, txs []domain.TransactionRecord) {
	if len(txs) == 0 {
		fmt.Fprintln(w, "No transactions for this account.")
		return
	}
	fmt.Fprintln(w, "Transactions:")
	for _, tx := range txs {
		fmt.Fprintf(w, " - %s\n", tx)
	}
}
