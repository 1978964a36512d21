package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"cashbox/internal/crypto"
)

func registerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create a login (password min 6 chars)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			p := newPrompter(cmd.InOrStdin(), out)

			pw, err := p.Password("Password (min 6 chars): ")
			if err != nil {
				return err
			}
			defer crypto.Wipe(pw)

			ok, err := appCtx.Auth.Register(args[0], pw)
			if err != nil {
				return err
			}
			if !ok {
				failure(out, "Registration failed (username may exist or password too short).")
				return errors.New("registration rejected")
			}
			success(out, "Registration successful.")
			return nil
		},
	}
	return cmd
}
