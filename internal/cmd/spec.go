package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/capwrap/capwrap/internal/appdetect"
	"github.com/capwrap/capwrap/internal/synth"
	"github.com/spf13/cobra"
)

func newSpecCommand() *cobra.Command {
	options := synth.SpecOptions{}

	specCmd := &cobra.Command{
		Use:   "spec <project-path>",
		Short: "Generate a Capacitor migration document for a web project",
		Long: heredoc.Doc(`
			Detects the project's framework and renders a complete migration
			document to stdout: setup commands, framework-specific guidance,
			known pitfalls, build sequence and a manual testing checklist.

			Examples:
			  capwrap spec ./my-app --app-name "My App" --bundle-id com.example.myapp
			  capwrap spec ./my-app --app-name "My App" --bundle-id com.example.myapp --primary-color "#3b82f6"`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options.ProjectPath = args[0]

			project, err := appdetect.Detect(options.ProjectPath)
			if err != nil {
				renderNoMatch(cmd, err)
				return err
			}

			document := synth.NewSpecSynthesizer().Render(project, options)
			fmt.Fprint(cmd.OutOrStdout(), document)

			return nil
		},
	}

	specCmd.Flags().StringVar(&options.AppName, "app-name", "", "Display name of the mobile app")
	specCmd.Flags().StringVar(&options.BundleID, "bundle-id", "", "Reverse-DNS bundle identifier")
	specCmd.Flags().StringVar(&options.PrimaryColor, "primary-color", "", "Brand color as a hex string")
	_ = specCmd.MarkFlagRequired("app-name")
	_ = specCmd.MarkFlagRequired("bundle-id")

	return specCmd
}
