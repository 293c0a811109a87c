package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/capwrap/capwrap/internal/synth"
	"github.com/spf13/cobra"
)

func newConfigCommand() *cobra.Command {
	options := synth.ConfigOptions{}
	var guide bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Generate a capacitor.config.json payload",
		Long: heredoc.Doc(`
			Generates the Capacitor configuration for an app: the literal
			capacitor.config.json text, or with --guide the full setup guide
			including package scripts, a permissions template and .gitignore
			entries. Output is deterministic for identical inputs; nothing is
			written to disk.

			Examples:
			  capwrap config --app-name "My App" --app-id com.example.myapp --web-dir dist --framework vite
			  capwrap config --app-name "My App" --app-id com.example.myapp --web-dir out --framework nextjs --guide`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := synth.RenderConfig(options)
			if err != nil {
				return err
			}

			if guide {
				fmt.Fprint(cmd.OutOrStdout(), result.SetupGuide)
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprint(cmd.OutOrStdout(), result.Permissions)
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout(), "## .gitignore additions")
				fmt.Fprintln(cmd.OutOrStdout())
				for _, entry := range result.GitignoreEntries {
					fmt.Fprintln(cmd.OutOrStdout(), entry)
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), result.ConfigText)
			}

			return nil
		},
	}

	configCmd.Flags().StringVar(&options.AppName, "app-name", "", "Display name of the mobile app")
	configCmd.Flags().StringVar(&options.AppID, "app-id", "", "Reverse-DNS app identifier")
	configCmd.Flags().StringVar(&options.WebDir, "web-dir", "", "Relative path to the built web output")
	configCmd.Flags().StringVar(&options.Framework, "framework", "", "Framework name (nextjs, vite or cra)")
	configCmd.Flags().StringVar(&options.PrimaryColor, "primary-color", "", "Brand color as a hex string")
	configCmd.Flags().BoolVar(&guide, "guide", false, "Print the full setup guide instead of just the config")
	_ = configCmd.MarkFlagRequired("app-name")
	_ = configCmd.MarkFlagRequired("app-id")
	_ = configCmd.MarkFlagRequired("web-dir")
	_ = configCmd.MarkFlagRequired("framework")

	return configCmd
}
