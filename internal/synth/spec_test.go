package synth

import (
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/capwrap/capwrap/internal/appdetect"
	"github.com/stretchr/testify/require"
)

const (
	staticExportWarning = "CRITICAL: Static export is not enabled"
	apiRoutesWarning    = "API routes detected"
)

func pinnedSynthesizer() *SpecSynthesizer {
	mock := clock.NewMock()
	mock.Set(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))
	return NewSpecSynthesizerWithClock(mock)
}

func nextProject(isStaticExport bool, hasAPIRoutes bool) *appdetect.Project {
	outputDir := ".next"
	if isStaticExport {
		outputDir = "out"
	}

	return &appdetect.Project{
		Framework:      appdetect.NextJs,
		Version:        "14.2.3",
		BuildCommand:   "npm run build",
		BuildOutputDir: outputDir,
		Next: &appdetect.NextProject{
			RouterType:     appdetect.RouterApp,
			HasAPIRoutes:   hasAPIRoutes,
			IsStaticExport: isStaticExport,
		},
	}
}

var specOptions = SpecOptions{
	ProjectPath: "/work/my-app",
	AppName:     "My App",
	BundleID:    "com.example.myapp",
}

// The two Next.js warning blocks are independent: each appears exactly when
// its condition holds, across all four combinations.
func TestRenderNextWarningBlocks(t *testing.T) {
	tests := []struct {
		name           string
		isStaticExport bool
		hasAPIRoutes   bool
	}{
		{"NoExportNoAPI", false, false},
		{"NoExportWithAPI", false, true},
		{"ExportNoAPI", true, false},
		{"ExportWithAPI", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			document := pinnedSynthesizer().Render(nextProject(tt.isStaticExport, tt.hasAPIRoutes), specOptions)

			if tt.isStaticExport {
				require.NotContains(t, document, staticExportWarning)
			} else {
				require.Contains(t, document, staticExportWarning)
			}

			if tt.hasAPIRoutes {
				require.Equal(t, 1, strings.Count(document, apiRoutesWarning))
			} else {
				require.NotContains(t, document, apiRoutesWarning)
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	synthesizer := pinnedSynthesizer()
	first := synthesizer.Render(nextProject(true, false), specOptions)
	second := synthesizer.Render(nextProject(true, false), specOptions)
	require.Equal(t, first, second)
	require.Contains(t, first, "Generated: 2026-08-29T12:00:00Z")
}

func TestRenderCommonSections(t *testing.T) {
	document := pinnedSynthesizer().Render(nextProject(true, false), specOptions)

	require.True(t, strings.HasPrefix(document, "# Capacitor Migration Plan: My App"))
	require.Contains(t, document, "Framework: Next.js 14.2.3")
	require.Contains(t, document, `npx cap init "My App" "com.example.myapp" --web-dir "out"`)
	require.Contains(t, document, "## Known Integration Pitfalls")
	require.Contains(t, document, "## Build and Run")
	require.Contains(t, document, "## Manual Testing Checklist")
	require.Contains(t, document, "## Next Steps")

	// No unresolved formatting directives may leak into output.
	require.NotContains(t, document, "%!")
}

func TestRenderPrimaryColor(t *testing.T) {
	without := pinnedSynthesizer().Render(nextProject(true, false), specOptions)
	require.NotContains(t, without, "- Apply your brand color")

	withColor := specOptions
	withColor.PrimaryColor = "#3b82f6"
	document := pinnedSynthesizer().Render(nextProject(true, false), withColor)
	require.Contains(t, document, "- Apply your brand color #3b82f6")
}

func TestRenderViteOverview(t *testing.T) {
	project := &appdetect.Project{
		Framework:      appdetect.Vite,
		Version:        "^5.1.0",
		BuildCommand:   "npm run build",
		BuildOutputDir: "web-dist",
		Vite: &appdetect.ViteProject{
			UILibrary:      appdetect.UIReact,
			ConfigFile:     "vite.config.ts",
			HasReactRouter: true,
		},
	}

	document := pinnedSynthesizer().Render(project, specOptions)
	require.Contains(t, document, "Framework: Vite ^5.1.0")
	require.Contains(t, document, "- UI library: react")
	require.Contains(t, document, "- Vite config: `vite.config.ts`")
	require.Contains(t, document, "- Routing: react-router-dom")
	require.Contains(t, document, "## Vite Notes")
	require.NotContains(t, document, staticExportWarning)
}

func TestRenderViteBothRouters(t *testing.T) {
	project := &appdetect.Project{
		Framework:      appdetect.Vite,
		Version:        "^5.1.0",
		BuildCommand:   "npm run build",
		BuildOutputDir: "dist",
		Vite: &appdetect.ViteProject{
			UILibrary:      appdetect.UIUnknown,
			HasReactRouter: true,
			HasVueRouter:   true,
		},
	}

	document := pinnedSynthesizer().Render(project, specOptions)
	require.Contains(t, document, "- Routing: react-router-dom, vue-router")
	require.Equal(t, 1, strings.Count(document, "- Routing:"))
}

func TestRenderCRAGuidance(t *testing.T) {
	project := &appdetect.Project{
		Framework:      appdetect.CRA,
		Version:        "5.0.1",
		BuildCommand:   "npm run build",
		BuildOutputDir: "build",
		CRA:            &appdetect.CRAProject{HasReactRouter: true},
	}

	document := pinnedSynthesizer().Render(project, specOptions)
	require.Contains(t, document, "## Create React App Notes")
	require.Contains(t, document, "HashRouter")
}
