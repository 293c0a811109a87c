// Package synth renders a detected project model into the two migration
// artifacts: a human-readable migration document and a Capacitor
// configuration payload. Both renderers are pure functions of their inputs;
// the only ambient value is the generation timestamp, taken from an injected
// clock so tests can pin it.
package synth

import (
	"fmt"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/capwrap/capwrap/internal/appdetect"
)

// SpecOptions carries the caller-supplied naming for the migration document.
// Nothing here is inferred from the project.
type SpecOptions struct {
	ProjectPath  string
	AppName      string
	BundleID     string
	PrimaryColor string
}

type SpecSynthesizer struct {
	clock clock.Clock
}

func NewSpecSynthesizer() *SpecSynthesizer {
	return &SpecSynthesizer{clock: clock.New()}
}

// NewSpecSynthesizerWithClock is used by tests to pin the generation
// timestamp.
func NewSpecSynthesizerWithClock(clk clock.Clock) *SpecSynthesizer {
	return &SpecSynthesizer{clock: clk}
}

// Render produces the full migration document for a detected project.
// Sections are computed independently and joined with blank lines; an
// unset optional field renders as nothing, never as a placeholder.
func (s *SpecSynthesizer) Render(project *appdetect.Project, options SpecOptions) string {
	sections := []string{
		s.header(project, options),
		overview(project, options),
		capacitorSetup(project, options),
		frameworkGuidance(project),
		strings.TrimRight(pitfallsCatalog, "\n"),
		buildSequence(project),
		strings.TrimRight(testingChecklist, "\n"),
		nextSteps(options),
	}

	return strings.Join(sections, "\n\n") + "\n"
}

func (s *SpecSynthesizer) header(project *appdetect.Project, options SpecOptions) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Capacitor Migration Plan: %s\n\n", options.AppName)
	fmt.Fprintf(&sb, "Framework: %s %s\n", project.Framework.Display(), project.Version)
	fmt.Fprintf(&sb, "Generated: %s", s.clock.Now().UTC().Format(time.RFC3339))

	return sb.String()
}

func overview(project *appdetect.Project, options SpecOptions) string {
	var sb strings.Builder
	sb.WriteString("## Project Overview\n\n")
	fmt.Fprintf(&sb, "- Project path: `%s`\n", options.ProjectPath)
	fmt.Fprintf(&sb, "- App name: %s\n", options.AppName)
	fmt.Fprintf(&sb, "- Bundle ID: `%s`\n", options.BundleID)
	fmt.Fprintf(&sb, "- Build command: `%s`\n", project.BuildCommand)
	fmt.Fprintf(&sb, "- Web output directory: `%s`", project.BuildOutputDir)

	switch {
	case project.Vite != nil:
		fmt.Fprintf(&sb, "\n- UI library: %s", project.Vite.UILibrary)
		if project.Vite.ConfigFile != "" {
			fmt.Fprintf(&sb, "\n- Vite config: `%s`", project.Vite.ConfigFile)
		}
		routers := []string{}
		if project.Vite.HasReactRouter {
			routers = append(routers, "react-router-dom")
		}
		if project.Vite.HasVueRouter {
			routers = append(routers, "vue-router")
		}
		if len(routers) > 0 {
			fmt.Fprintf(&sb, "\n- Routing: %s", strings.Join(routers, ", "))
		}
	case project.Next != nil:
		fmt.Fprintf(&sb, "\n- Router convention: %s", project.Next.RouterType)
		fmt.Fprintf(&sb, "\n- API routes present: %t", project.Next.HasAPIRoutes)
		fmt.Fprintf(&sb, "\n- Static export configured: %t", project.Next.IsStaticExport)
	case project.CRA != nil:
		if project.CRA.HasReactRouter {
			sb.WriteString("\n- Routing: react-router-dom")
		}
	}

	return sb.String()
}

func capacitorSetup(project *appdetect.Project, options SpecOptions) string {
	var sb strings.Builder
	sb.WriteString("## Capacitor Setup\n\n")
	sb.WriteString("Run these from the project root:\n\n")
	sb.WriteString("```bash\n")
	sb.WriteString("npm install @capacitor/core @capacitor/cli\n")
	sb.WriteString("npm install @capacitor/ios @capacitor/android\n")
	fmt.Fprintf(&sb, "npx cap init %q %q --web-dir %q\n", options.AppName, options.BundleID, project.BuildOutputDir)
	sb.WriteString("npx cap add ios\n")
	sb.WriteString("npx cap add android\n")
	sb.WriteString("```")

	return sb.String()
}

func frameworkGuidance(project *appdetect.Project) string {
	switch {
	case project.Next != nil:
		return nextGuidance(project.Next)
	case project.Vite != nil:
		return viteGuidance(project.Vite)
	case project.CRA != nil:
		return craGuidance(project.CRA)
	}

	return "## Framework Notes"
}

func nextGuidance(next *appdetect.NextProject) string {
	blocks := []string{"## Next.js Notes"}

	if !next.IsStaticExport {
		blocks = append(blocks, strings.TrimSpace(`
### ⚠️ CRITICAL: Static export is not enabled

Capacitor ships your app as static files inside the native shell; there is no
Node.js server at runtime. This project does not have a literal
`+"`output: 'export'`"+` in its Next.js config, so the build produces a
server-dependent bundle that cannot run inside the shell.

Add the following to your Next.js config before migrating:

`+"```js\nmodule.exports = {\n  output: 'export',\n};\n```"+`

If your config computes this option dynamically, verify it resolves to
'export' for the build you ship; detection only recognizes the literal form.`))
	} else {
		blocks = append(blocks, "Static export is configured; the build output in `out/` can be wrapped as-is.")
	}

	if next.HasAPIRoutes {
		blocks = append(blocks, strings.TrimSpace(`
### ⚠️ API routes detected

API routes require a server and are incompatible with static export; they
will not exist inside the native shell. Before migrating, move each API route
to an externally hosted endpoint and point the client at its absolute URL.`))
	}

	return strings.Join(blocks, "\n\n")
}

func viteGuidance(vite *appdetect.ViteProject) string {
	var sb strings.Builder
	sb.WriteString("## Vite Notes\n\n")
	sb.WriteString("Set `base: './'` in your Vite config so built asset URLs are relative; the\n")
	sb.WriteString("shell serves the app from a non-root origin.")
	if vite.HasReactRouter || vite.HasVueRouter {
		sb.WriteString("\n\nClient-side routing works inside the shell, but there is no server-side\n")
		sb.WriteString("fallback: a hard reload on a deep route will 404 unless you use hash-based\n")
		sb.WriteString("history or handle the fallback in the WebView.")
	}

	return sb.String()
}

func craGuidance(cra *appdetect.CRAProject) string {
	var sb strings.Builder
	sb.WriteString("## Create React App Notes\n\n")
	sb.WriteString("Set `\"homepage\": \".\"` in package.json so the build emits relative asset\n")
	sb.WriteString("paths.")
	if cra.HasReactRouter {
		sb.WriteString(" With react-router, prefer `HashRouter` inside the shell — `BrowserRouter`\n")
		sb.WriteString("deep links have no server fallback to land on.")
	}

	return sb.String()
}

func buildSequence(project *appdetect.Project) string {
	var sb strings.Builder
	sb.WriteString("## Build and Run\n\n")
	sb.WriteString("```bash\n")
	fmt.Fprintf(&sb, "%s\n", project.BuildCommand)
	sb.WriteString("npx cap sync\n")
	sb.WriteString("npx cap open ios\n")
	sb.WriteString("npx cap open android\n")
	sb.WriteString("```")

	return sb.String()
}

func nextSteps(options SpecOptions) string {
	var sb strings.Builder
	sb.WriteString("## Next Steps\n\n")
	sb.WriteString("- Generate `capacitor.config.json` with the config tool and commit it\n")
	sb.WriteString("- Add app icons and splash assets for both platforms\n")
	if options.PrimaryColor != "" {
		fmt.Fprintf(&sb, "- Apply your brand color %s to the splash screen and status bar\n", options.PrimaryColor)
	}
	sb.WriteString("- Work through the testing checklist on real devices\n")
	sb.WriteString("- Set up signing and store listings when the shell is stable")

	return sb.String()
}
