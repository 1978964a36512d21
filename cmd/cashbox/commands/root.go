package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"cashbox/internal/app"
)

var (
	home    string
	envFile string
	appCtx  *app.App

	username string
)

func Execute() error {
	return newRootCmd().Execute()
}

// newRootCmd builds the command tree. Flag variables are reset on every call.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cashbox",
		Short:        "Console banking with flat-file storage",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			cfg, err := app.LoadConfig(files...)
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}

			logger, err := app.NewLogger(cfg.Log, os.Stderr)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			appCtx, err = app.New(cfg, logger)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data directory (default $CASHBOX_HOME or ./data)")
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment from this file instead of ./.env")

	root.AddCommand(
		shellCmd(),
		registerCmd(),
		accountsCmd(),
		depositCmd(),
		withdrawCmd(),
		historyCmd(),
	)
	return root
}

// userFlag adds the --user flag that one-shot commands log in with.
func userFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&username, "user", "u", "", "username to log in as")
	_ = cmd.MarkPersistentFlagRequired("user")
}
