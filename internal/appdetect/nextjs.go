package appdetect

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

type nextJsDetector struct {
}

func (nd *nextJsDetector) DisplayName() string {
	return "Next.js"
}

var nextConfigCandidates = []string{
	"next.config.js",
	"next.config.mjs",
	"next.config.ts",
}

// staticExportPattern matches a literal output: 'export' setting. Only a
// literal match counts: a dynamically computed value produces a false
// negative, never a false positive, and the generated migration document
// warns accordingly rather than asserting export-readiness it cannot verify.
var staticExportPattern = regexp.MustCompile(`output:\s*['"]export['"]`)

func (nd *nextJsDetector) DetectProject(projectDir string) (*Project, error) {
	packagesJson := readManifest(projectDir)
	if packagesJson == nil {
		return nil, nil
	}

	version, ok := packagesJson.dependency("next")
	if !ok {
		return nil, nil
	}

	next := &NextProject{
		RouterType:     nextRouterType(projectDir),
		IsStaticExport: nextStaticExport(projectDir),
	}

	hasApiRoutes, err := nextHasAPIRoutes(projectDir, next.RouterType)
	if err != nil {
		return nil, err
	}
	next.HasAPIRoutes = hasApiRoutes

	project := &Project{
		Framework:    NextJs,
		Version:      version,
		BuildCommand: nextBuildCommand(version),
		Next:         next,
	}

	// An exported build lands in out/; otherwise the build cache directory
	// is all there is. The migration document flags the latter case.
	if next.IsStaticExport {
		project.BuildOutputDir = "out"
	} else {
		project.BuildOutputDir = ".next"
	}

	return project, nil
}

// nextRouterType inspects the two routing convention directories, with and
// without the src/ prefix. When both conventions coexist (common mid
// migration) the app router is authoritative.
func nextRouterType(projectDir string) RouterType {
	if dirExists(filepath.Join(projectDir, "app")) || dirExists(filepath.Join(projectDir, "src", "app")) {
		return RouterApp
	}
	if dirExists(filepath.Join(projectDir, "pages")) || dirExists(filepath.Join(projectDir, "src", "pages")) {
		return RouterPages
	}

	return RouterUnknown
}

func nextStaticExport(projectDir string) bool {
	// Every candidate gets scanned; the first textual match wins. A config
	// file without the marker does not end the scan, since another candidate
	// may carry the live setting.
	for _, name := range nextConfigCandidates {
		contents, ok := readBounded(filepath.Join(projectDir, name), maxReadBytes)
		if !ok {
			continue
		}

		if staticExportPattern.MatchString(contents) {
			return true
		}

		log.Printf("appdetect: %s present but no literal output: 'export' found", name)
	}

	return false
}

// nextHasAPIRoutes detects API route presence per router convention. Pages
// router APIs live under one well-known directory; app router route handlers
// can nest arbitrarily deep, so those need a recursive scan for the reserved
// route.ts / route.js filenames.
func nextHasAPIRoutes(projectDir string, routerType RouterType) (bool, error) {
	switch routerType {
	case RouterPages:
		return dirExists(filepath.Join(projectDir, "pages", "api")) ||
			dirExists(filepath.Join(projectDir, "src", "pages", "api")), nil
	case RouterApp:
		for _, appDir := range []string{filepath.Join(projectDir, "app"), filepath.Join(projectDir, "src", "app")} {
			if !dirExists(appDir) {
				continue
			}

			found, err := containsRouteFile(appDir)
			if err != nil {
				return false, err
			}
			if found {
				return true, nil
			}
		}
	}

	return false, nil
}

func containsRouteFile(root string) (bool, error) {
	found := false
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() && (d.Name() == "node_modules" || strings.HasPrefix(d.Name(), ".")) && path != root {
			return filepath.SkipDir
		}

		if !d.IsDir() && (d.Name() == "route.ts" || d.Name() == "route.js") {
			found = true
			return filepath.SkipAll
		}

		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	return found, nil
}

// nextBuildCommand picks the build invocation for the declared version.
// output: 'export' only exists from 13.3; older toolchains need the explicit
// export step. The verbatim range string is coerced through semver just for
// this decision, and anything unparseable is assumed modern.
func nextBuildCommand(version string) string {
	coerced := strings.TrimLeft(version, "^~>=v ")
	parsed, err := semver.NewVersion(coerced)
	if err == nil && parsed.LessThan(semver.MustParse("13.3.0")) {
		return "npm run build && npx next export"
	}

	return "npm run build"
}
