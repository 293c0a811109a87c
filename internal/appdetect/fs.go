package appdetect

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

// maxReadBytes bounds every file read made during detection. Project config
// files are small; anything larger is almost certainly not a file we should
// be pattern-matching against.
const maxReadBytes = 10 * 1024 * 1024

// PackagesJson is the subset of package.json that detection cares about.
type PackagesJson struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// dependency returns the declared version of dep, looking at both production
// and development dependencies, and whether it was declared at all.
func (p *PackagesJson) dependency(dep string) (string, bool) {
	if v, ok := p.Dependencies[dep]; ok {
		return v, true
	}
	if v, ok := p.DevDependencies[dep]; ok {
		return v, true
	}
	return "", false
}

// pathExists reports whether path exists, regardless of kind.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// dirExists reports whether path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// readBounded reads at most maxBytes from path. Missing files, unreadable
// files and files over the bound all collapse to ok=false; detection treats
// every flavor of "could not read" the same way.
func readBounded(path string, maxBytes int64) (string, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() || info.Size() > maxBytes {
		return "", false
	}

	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	contents, err := io.ReadAll(io.LimitReader(f, maxBytes))
	if err != nil {
		return "", false
	}

	return string(contents), true
}

// readJson unmarshals path into out. Absent or malformed files report false.
func readJson(path string, out any) bool {
	contents, ok := readBounded(path, maxReadBytes)
	if !ok {
		return false
	}

	return json.Unmarshal([]byte(contents), out) == nil
}

// readManifest loads the package.json under projectDir, or nil when the
// manifest is missing or not parseable. No detector proceeds without one.
func readManifest(projectDir string) *PackagesJson {
	var packagesJson PackagesJson
	if !readJson(filepath.Join(projectDir, "package.json"), &packagesJson) {
		return nil
	}

	return &packagesJson
}
