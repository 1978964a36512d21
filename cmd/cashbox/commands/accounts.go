package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Open or list your accounts",
	}
	userFlag(cmd)

	open := &cobra.Command{
		Use:   "open",
		Short: "Open a new account with balance 0.00",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			owner, err := login(newPrompter(cmd.InOrStdin(), out), username)
			if err != nil {
				return err
			}
			acc, err := appCtx.Banking.OpenAccount(owner)
			if err != nil {
				return err
			}
			success(out, "Account created: %s", acc.ID)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your accounts and balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			owner, err := login(newPrompter(cmd.InOrStdin(), out), username)
			if err != nil {
				return err
			}
			accounts := appCtx.Banking.Accounts(owner)
			if len(accounts) == 0 {
				fmt.Fprintln(out, "No accounts yet.")
				return nil
			}
			for _, a := range accounts {
				fmt.Fprintf(out, "%s\t%s\n", a.ID, a.Balance())
			}
			return nil
		},
	}

	cmd.AddCommand(open, list)
	return cmd
}
