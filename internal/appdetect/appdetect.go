// Package appdetect inspects a web project directory and infers which build
// framework it uses, producing a typed project model that drives migration
// document and Capacitor config generation.
//
// Detection is deliberately exact-match: a detector only claims a project when
// the framework's signature dependency is declared in the manifest, and every
// secondary attribute is derived from cheap, bounded checks. There is no
// scoring and no fuzzy matching; an unrecognized project is a NoMatchError,
// not a guess.
package appdetect

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

type Framework string

const (
	Vite   Framework = "vite"
	NextJs Framework = "nextjs"
	CRA    Framework = "cra"
)

func (f Framework) Display() string {
	switch f {
	case Vite:
		return "Vite"
	case NextJs:
		return "Next.js"
	case CRA:
		return "Create React App"
	}

	return string(f)
}

type UILibrary string

const (
	UIReact   UILibrary = "react"
	UIVue     UILibrary = "vue"
	UISvelte  UILibrary = "svelte"
	UIAngular UILibrary = "angular"
	UIUnknown UILibrary = "unknown"
)

type RouterType string

const (
	RouterApp     RouterType = "app"
	RouterPages   RouterType = "pages"
	RouterUnknown RouterType = "unknown"
)

// Project is the result of a successful detection. Framework discriminates
// which of the variant pointers is populated; exactly one is non-nil, and
// only the owning detector constructs it.
type Project struct {
	Framework Framework `json:"framework"`
	// Version is carried verbatim from the manifest (range operators and
	// all); it is display data, not a parsed version.
	Version        string `json:"version"`
	BuildCommand   string `json:"buildCommand"`
	BuildOutputDir string `json:"buildOutputDir"`

	Vite *ViteProject `json:"vite,omitempty"`
	Next *NextProject `json:"next,omitempty"`
	CRA  *CRAProject  `json:"cra,omitempty"`
}

type ViteProject struct {
	UILibrary      UILibrary `json:"uiLibrary"`
	ConfigFile     string    `json:"configFile,omitempty"`
	HasReactRouter bool      `json:"hasReactRouter"`
	HasVueRouter   bool      `json:"hasVueRouter"`
}

type NextProject struct {
	RouterType     RouterType `json:"routerType"`
	HasAPIRoutes   bool       `json:"hasApiRoutes"`
	IsStaticExport bool       `json:"isStaticExport"`
}

type CRAProject struct {
	HasReactRouter bool `json:"hasReactRouter"`
}

// ProjectDetector tests one framework hypothesis against a project directory.
// A nil, nil return means "not this framework"; errors are reserved for
// conditions a detector cannot normalize away.
type ProjectDetector interface {
	DisplayName() string
	DetectProject(projectDir string) (*Project, error)
}

var detectors = []ProjectDetector{
	// Order here determines precedence when a tree carries signals for more
	// than one framework. Next.js outranks Vite so a meta-framework manifest
	// beats a stray bundler config; react-scripts is unambiguous and goes
	// last.
	&nextJsDetector{},
	&viteDetector{},
	&craDetector{},
}

// SupportedFrameworks returns the display names of every framework the
// detector registry recognizes, in precedence order.
func SupportedFrameworks() []string {
	names := make([]string, 0, len(detectors))
	for _, d := range detectors {
		names = append(names, d.DisplayName())
	}

	return names
}

// NoMatchError reports that every registered detector declined the project.
// It carries enough context for a caller to render actionable guidance.
type NoMatchError struct {
	ProjectDir string
	// Supported lists the frameworks the registry knows how to recognize.
	Supported []string
	// ManifestFound reports whether a package.json was present at all.
	ManifestFound bool
	// ProjectName and BuildScript are pulled from the manifest when present,
	// for diagnostics only.
	ProjectName string
	BuildScript string
}

func (e *NoMatchError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "no supported framework detected in %s", e.ProjectDir)
	if !e.ManifestFound {
		sb.WriteString(" (no package.json found)")
	} else if e.ProjectName != "" {
		fmt.Fprintf(&sb, " (project %q)", e.ProjectName)
	}
	fmt.Fprintf(&sb, "; supported frameworks: %s", strings.Join(e.Supported, ", "))

	return sb.String()
}

// Detect runs each registered detector against projectDir and returns the
// first match. When none match it returns a *NoMatchError describing what the
// registry would have accepted.
func Detect(projectDir string) (*Project, error) {
	for _, detector := range detectors {
		project, err := detector.DetectProject(projectDir)
		if err != nil {
			return nil, fmt.Errorf("detecting %s project: %w", detector.DisplayName(), err)
		}

		if project != nil {
			return project, nil
		}
	}

	return nil, noMatch(projectDir)
}

func noMatch(projectDir string) *NoMatchError {
	noMatchErr := &NoMatchError{
		ProjectDir: projectDir,
		Supported:  SupportedFrameworks(),
	}

	// Best-effort diagnostics from the raw manifest. gjson tolerates any
	// JSON shape here, and a miss simply leaves the field empty.
	if raw, ok := readBounded(filepath.Join(projectDir, "package.json"), maxReadBytes); ok {
		noMatchErr.ManifestFound = true
		noMatchErr.ProjectName = gjson.Get(raw, "name").String()
		noMatchErr.BuildScript = gjson.Get(raw, "scripts.build").String()
	}

	return noMatchErr
}

// firstExisting returns the first of the candidate filenames that exists
// under projectDir, or "" when none do. Candidate order is the precedence
// rule for config-file selection.
func firstExisting(projectDir string, candidates []string) string {
	for _, name := range candidates {
		if pathExists(filepath.Join(projectDir, name)) {
			return name
		}
	}

	return ""
}
