package cmd

import (
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "capwrap <command> [options]",
		Short:         "Detects a web project's framework and generates its Capacitor migration artifacts.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddCommand(newDetectCommand())
	rootCmd.AddCommand(newSpecCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newMcpCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
