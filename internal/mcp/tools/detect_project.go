// Package tools defines the MCP tools that expose the detection and
// synthesis engine. Each tool is a thin envelope: argument extraction and
// result encoding live here, decision logic stays in the engine packages.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/capwrap/capwrap/internal/appdetect"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewDetectProjectTool creates the detect_project tool.
func NewDetectProjectTool() server.ServerTool {
	return server.ServerTool{
		Tool: mcp.NewTool(
			"detect_project",
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithOpenWorldHintAnnotation(false),
			mcp.WithDescription(
				`Inspects a web project directory and detects its build framework
(Next.js, Vite or Create React App) from package.json and config files.

Returns a JSON project model describing the framework, version, build command,
web output directory and framework-specific attributes (router convention,
API route presence, static export readiness, UI library, routing libraries).

Use this tool before generating a migration plan or Capacitor config.`,
			),
			mcp.WithString("project_path",
				mcp.Description("Absolute path to the web project directory (the directory containing package.json)"),
				mcp.Required(),
			),
		),
		Handler: handleDetectProject,
	}
}

func handleDetectProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	projectPath, ok := args["project_path"].(string)
	if !ok || projectPath == "" {
		return mcp.NewToolResultError("project_path is required and must be a string"), nil
	}

	project, err := appdetect.Detect(projectPath)
	if err != nil {
		var noMatch *appdetect.NoMatchError
		if errors.As(err, &noMatch) {
			return mcp.NewToolResultText(noMatchGuidance(noMatch)), nil
		}

		return mcp.NewToolResultError(fmt.Sprintf("detection failed: %s", err)), nil
	}

	encoded, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding project model: %s", err)), nil
	}

	return mcp.NewToolResultText(string(encoded)), nil
}

// noMatchGuidance renders a declined detection as actionable text rather
// than a bare failure.
func noMatchGuidance(noMatch *appdetect.NoMatchError) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "No supported framework detected in %s.\n\n", noMatch.ProjectDir)

	if !noMatch.ManifestFound {
		sb.WriteString("No package.json was found. Point project_path at the directory that contains the project manifest.\n\n")
	} else {
		if noMatch.ProjectName != "" {
			fmt.Fprintf(&sb, "A manifest for %q was found, but it declares none of the recognized framework dependencies.\n", noMatch.ProjectName)
		} else {
			sb.WriteString("A manifest was found, but it declares none of the recognized framework dependencies.\n")
		}
		if noMatch.BuildScript != "" {
			fmt.Fprintf(&sb, "Its build script is %q, which may hint at the toolchain in use.\n", noMatch.BuildScript)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Supported frameworks: %s.\n", strings.Join(noMatch.Supported, ", "))
	sb.WriteString("Detection requires the framework's dependency (next, vite or react-scripts) in dependencies or devDependencies.")

	return sb.String()
}
