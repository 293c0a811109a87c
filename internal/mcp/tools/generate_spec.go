package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/capwrap/capwrap/internal/appdetect"
	"github.com/capwrap/capwrap/internal/synth"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewGenerateSpecTool creates the generate_migration_spec tool.
func NewGenerateSpecTool() server.ServerTool {
	return server.ServerTool{
		Tool: mcp.NewTool(
			"generate_migration_spec",
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithOpenWorldHintAnnotation(false),
			mcp.WithDescription(
				`Detects the framework of a web project and renders a complete Capacitor
migration document for it: setup commands, framework-specific guidance
(including static-export and API-route warnings for Next.js), known pitfalls,
build/sync/open sequence and a manual testing checklist.`,
			),
			mcp.WithString("project_path",
				mcp.Description("Absolute path to the web project directory"),
				mcp.Required(),
			),
			mcp.WithString("app_name",
				mcp.Description("Display name of the mobile app"),
				mcp.Required(),
			),
			mcp.WithString("bundle_id",
				mcp.Description("Reverse-DNS bundle identifier, e.g. com.example.app"),
				mcp.Required(),
			),
			mcp.WithString("primary_color",
				mcp.Description("Optional brand color as a hex string, e.g. #3b82f6"),
			),
		),
		Handler: handleGenerateSpec,
	}
}

func handleGenerateSpec(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	options := synth.SpecOptions{}
	for _, param := range []struct {
		name     string
		required bool
		dest     *string
	}{
		{"project_path", true, &options.ProjectPath},
		{"app_name", true, &options.AppName},
		{"bundle_id", true, &options.BundleID},
		{"primary_color", false, &options.PrimaryColor},
	} {
		value, _ := args[param.name].(string)
		if param.required && value == "" {
			return mcp.NewToolResultError(fmt.Sprintf("%s is required and must be a string", param.name)), nil
		}
		*param.dest = value
	}

	project, err := appdetect.Detect(options.ProjectPath)
	if err != nil {
		var noMatch *appdetect.NoMatchError
		if errors.As(err, &noMatch) {
			return mcp.NewToolResultText(noMatchGuidance(noMatch)), nil
		}

		return mcp.NewToolResultError(fmt.Sprintf("detection failed: %s", err)), nil
	}

	document := synth.NewSpecSynthesizer().Render(project, options)

	return mcp.NewToolResultText(document), nil
}
