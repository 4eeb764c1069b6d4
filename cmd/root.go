package cmd

import (
	"fmt"
	"os"

	"github.com/mvqn/ucrm-plugin-xero/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "ucrm-xero",
	Short: "UCRM to Xero correlation service",
	Long: `ucrm-xero keeps a persistent correlation between UCRM records and their
Xero counterparts, reporting what was created, renamed or deleted on each side
and which records still need to be pushed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding at debug level gives readable ISO8601 timestamps for CLI users.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
