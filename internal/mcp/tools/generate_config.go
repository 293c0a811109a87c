package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/capwrap/capwrap/internal/synth"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewGenerateConfigTool creates the generate_capacitor_config tool.
func NewGenerateConfigTool() server.ServerTool {
	return server.ServerTool{
		Tool: mcp.NewTool(
			"generate_capacitor_config",
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithOpenWorldHintAnnotation(false),
			mcp.WithDescription(
				`Generates a Capacitor configuration bundle: the literal
capacitor.config.json text, package.json scripts to add, a platform
permissions template, .gitignore entries and a setup guide. Output is
deterministic for identical inputs. Nothing is written to disk.`,
			),
			mcp.WithString("app_name",
				mcp.Description("Display name of the mobile app"),
				mcp.Required(),
			),
			mcp.WithString("app_id",
				mcp.Description("Reverse-DNS app identifier, e.g. com.example.app"),
				mcp.Required(),
			),
			mcp.WithString("web_dir",
				mcp.Description("Relative path to the built web output, e.g. dist, build or out"),
				mcp.Required(),
			),
			mcp.WithString("framework",
				mcp.Description("Framework name from detect_project (nextjs, vite or cra)"),
				mcp.Required(),
			),
			mcp.WithString("primary_color",
				mcp.Description("Optional brand color as a hex string; splash background falls back to the default brand color when omitted"),
			),
		),
		Handler: handleGenerateConfig,
	}
}

func handleGenerateConfig(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	options := synth.ConfigOptions{}
	for _, param := range []struct {
		name     string
		required bool
		dest     *string
	}{
		{"app_name", true, &options.AppName},
		{"app_id", true, &options.AppID},
		{"web_dir", true, &options.WebDir},
		{"framework", true, &options.Framework},
		{"primary_color", false, &options.PrimaryColor},
	} {
		value, _ := args[param.name].(string)
		if param.required && value == "" {
			return mcp.NewToolResultError(fmt.Sprintf("%s is required and must be a string", param.name)), nil
		}
		*param.dest = value
	}

	result, err := synth.RenderConfig(options)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generating config: %s", err)), nil
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %s", err)), nil
	}

	return mcp.NewToolResultText(string(encoded)), nil
}
