package commands

import "github.com/spf13/cobra"

func withdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw <account-id> <amount>",
		Short: "Withdraw a positive amount the balance can cover",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(cmd, args, appCtx.Banking.Withdraw, "Withdrawal complete")
		},
	}
	userFlag(cmd)
	return cmd
}
