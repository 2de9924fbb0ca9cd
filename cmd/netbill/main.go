package main

import (
	"os"

	"github.com/spf13/cobra"

	"netbill/internal/interfaces/cli/migrate"
	"netbill/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "netbill",
		Short: "netbill - ISP subscription billing service",
		Long:  `netbill manages ISP package subscriptions, renewals, and payments, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
