package commands

import (
	"github.com/spf13/cobra"

	"cashbox/internal/domain"
	"cashbox/internal/money"
)

func depositCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit <account-id> <amount>",
		Short: "Deposit a positive amount into one of your accounts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(cmd, args, appCtx.Banking.Deposit, "Deposit complete")
		},
	}
	userFlag(cmd)
	return cmd
}

type moveFunc func(domain.Username, domain.AccountID, money.Money) (money.Money, error)

// runMove parses the amount before prompting so a typo never costs a login.
func runMove(cmd *cobra.Command, args []string, move moveFunc, done string) error {
	out := cmd.OutOrStdout()
	amount, err := money.Parse(args[1])
	if err != nil {
		failure(out, "Invalid amount.")
		return err
	}

	owner, err := login(newPrompter(cmd.InOrStdin(), out), username)
	if err != nil {
		return err
	}

	balance, err := move(owner, domain.AccountID(args[0]), amount)
	if err != nil {
		if msg, ok := explain(err); ok {
			failure(out, msg)
		}
		return err
	}
	success(out, "%s. New balance: %s", done, balance)
	return nil
}
