package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
)

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.Len(t, result.Content, 1)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return textContent.Text
}

func TestDetectProjectTool(t *testing.T) {
	dir := t.TempDir()
	manifest := `{
		"dependencies": { "react": "^18.2.0", "react-scripts": "5.0.1" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(manifest), 0644))

	result, err := handleDetectProject(context.Background(), callRequest(map[string]interface{}{
		"project_path": dir,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &decoded))
	require.Equal(t, "cra", decoded["framework"])
	require.Equal(t, "build", decoded["buildOutputDir"])
}

func TestDetectProjectToolNoMatch(t *testing.T) {
	result, err := handleDetectProject(context.Background(), callRequest(map[string]interface{}{
		"project_path": t.TempDir(),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := resultText(t, result)
	require.Contains(t, text, "No supported framework detected")
	require.Contains(t, text, "Next.js")
	require.Contains(t, text, "Vite")
	require.Contains(t, text, "Create React App")
}

func TestDetectProjectToolMissingArg(t *testing.T) {
	result, err := handleDetectProject(context.Background(), callRequest(map[string]interface{}{}))
	require.NoError(t, err)
	require.True(t, result.IsError)
}

func TestGenerateSpecTool(t *testing.T) {
	dir := t.TempDir()
	manifest := `{
		"dependencies": { "next": "14.2.3", "react": "^18.2.0" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(manifest), 0644))

	result, err := handleGenerateSpec(context.Background(), callRequest(map[string]interface{}{
		"project_path": dir,
		"app_name":     "My App",
		"bundle_id":    "com.example.myapp",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := resultText(t, result)
	require.Contains(t, text, "# Capacitor Migration Plan: My App")
	// No router dirs and no config file: the static-export warning applies.
	require.Contains(t, text, "CRITICAL: Static export is not enabled")
}

func TestGenerateSpecToolMissingArgs(t *testing.T) {
	result, err := handleGenerateSpec(context.Background(), callRequest(map[string]interface{}{
		"project_path": "/tmp/nowhere",
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Contains(t, resultText(t, result), "app_name")
}

func TestGenerateConfigTool(t *testing.T) {
	result, err := handleGenerateConfig(context.Background(), callRequest(map[string]interface{}{
		"app_name":  "My App",
		"app_id":    "com.example.myapp",
		"web_dir":   "out",
		"framework": "nextjs",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &decoded))
	require.Contains(t, decoded, "configText")
	require.Contains(t, decoded, "scripts")
	require.Contains(t, decoded, "permissions")
	require.Contains(t, decoded, "gitignoreEntries")
	require.Contains(t, decoded, "setupGuide")
	require.Contains(t, decoded["configText"], `"appId": "com.example.myapp"`)
}

func TestGenerateConfigToolMissingArgs(t *testing.T) {
	result, err := handleGenerateConfig(context.Background(), callRequest(map[string]interface{}{
		"app_name": "My App",
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Contains(t, resultText(t, result), "app_id")
}
