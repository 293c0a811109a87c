package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/capwrap/capwrap/internal/appdetect"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <project-path>",
		Short: "Detect the build framework of a web project",
		Long: heredoc.Doc(`
			Inspects a web project directory and prints its detected project model
			as JSON: framework, version, build command, web output directory and
			framework-specific attributes.

			Detection reads package.json and known config files; it never modifies
			the project. An unrecognized project exits non-zero with the list of
			supported frameworks.`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := appdetect.Detect(args[0])
			if err != nil {
				renderNoMatch(cmd, err)
				return err
			}

			encoded, err := json.MarshalIndent(project, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding project model: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Detected %s %s\n", project.Framework.Display(), project.Version)

			return nil
		},
	}
}

// renderNoMatch prints the actionable guidance block for a declined
// detection. Errors other than *NoMatchError print nothing; the caller
// returns them as-is.
func renderNoMatch(cmd *cobra.Command, err error) {
	var noMatch *appdetect.NoMatchError
	if !errors.As(err, &noMatch) {
		return
	}

	out := cmd.OutOrStdout()
	color.New(color.FgYellow).Fprintf(out, "No supported framework detected in %s\n", noMatch.ProjectDir)
	if !noMatch.ManifestFound {
		fmt.Fprintln(out, "No package.json was found; point the command at the directory containing the project manifest.")
	} else if noMatch.ProjectName != "" {
		fmt.Fprintf(out, "Found manifest for %q, but no recognized framework dependency.\n", noMatch.ProjectName)
	}
	fmt.Fprintln(out, "Supported frameworks:")
	for _, name := range noMatch.Supported {
		fmt.Fprintf(out, "  - %s\n", name)
	}
}
