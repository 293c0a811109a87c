package appdetect

import (
	"log"
	"path/filepath"
	"regexp"
)

type viteDetector struct {
}

func (vd *viteDetector) DisplayName() string {
	return "Vite"
}

var viteConfigCandidates = []string{
	"vite.config.ts",
	"vite.config.js",
	"vite.config.mjs",
	"vite.config.mts",
}

// outDirPattern matches a literal outDir assignment in a Vite config. This is
// bounded pattern matching, not parsing: a computed or imported value will not
// match, and the detector falls back to Vite's documented default.
var outDirPattern = regexp.MustCompile(`outDir:\s*['"]([^'"]+)['"]`)

func (vd *viteDetector) DetectProject(projectDir string) (*Project, error) {
	packagesJson := readManifest(projectDir)
	if packagesJson == nil {
		return nil, nil
	}

	version, ok := packagesJson.dependency("vite")
	if !ok {
		return nil, nil
	}

	vite := &ViteProject{
		UILibrary: viteUILibrary(packagesJson),
	}
	_, vite.HasReactRouter = packagesJson.dependency("react-router-dom")
	_, vite.HasVueRouter = packagesJson.dependency("vue-router")

	project := &Project{
		Framework:      Vite,
		Version:        version,
		BuildCommand:   "npm run build",
		BuildOutputDir: "dist",
		Vite:           vite,
	}

	vite.ConfigFile = firstExisting(projectDir, viteConfigCandidates)
	if vite.ConfigFile != "" {
		contents, ok := readBounded(filepath.Join(projectDir, vite.ConfigFile), maxReadBytes)
		if ok {
			if m := outDirPattern.FindStringSubmatch(contents); m != nil {
				project.BuildOutputDir = m[1]
			} else {
				log.Printf("appdetect: %s present but no literal outDir found, assuming %q", vite.ConfigFile, project.BuildOutputDir)
			}
		}
	}

	return project, nil
}

func viteUILibrary(packagesJson *PackagesJson) UILibrary {
	// Exact dependency-name checks, first match wins.
	uiDeps := []struct {
		dep string
		lib UILibrary
	}{
		{"react", UIReact},
		{"vue", UIVue},
		{"svelte", UISvelte},
		{"@angular/core", UIAngular},
	}

	for _, ui := range uiDeps {
		if _, ok := packagesJson.dependency(ui.dep); ok {
			return ui.lib
		}
	}

	return UIUnknown
}
