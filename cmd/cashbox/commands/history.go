package commands

import (
	"github.com/spf13/cobra"

	"cashbox/internal/domain"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <account-id>",
		Short: "Print the transaction history of one of your accounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			owner, err := login(newPrompter(cmd.InOrStdin(), out), username)
			if err != nil {
				return err
			}

			txs, err := appCtx.Banking.History(owner, domain.AccountID(args[0]))
			if err != nil {
				if msg, ok := explain(err); ok {
					failure(out, msg)
				}
				return err
			}
			printHistory(out, txs)
			return nil
		},
	}
	userFlag(cmd)
	return cmd
}
