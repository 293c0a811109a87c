package appdetect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadBounded(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "small.txt", "hello")
	writeProjectFile(t, dir, "big.txt", strings.Repeat("x", 100))

	contents, ok := readBounded(dir+"/small.txt", 1024)
	require.True(t, ok)
	require.Equal(t, "hello", contents)

	_, ok = readBounded(dir+"/big.txt", 10)
	require.False(t, ok)

	_, ok = readBounded(dir+"/missing.txt", 1024)
	require.False(t, ok)

	// Directories are not readable files.
	_, ok = readBounded(dir, 1024)
	require.False(t, ok)
}

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "package.json", `{
		"name": "fixture",
		"dependencies": { "react": "^18.2.0" },
		"devDependencies": { "vite": "^5.1.0" }
	}`)

	packagesJson := readManifest(dir)
	require.NotNil(t, packagesJson)
	require.Equal(t, "fixture", packagesJson.Name)

	version, ok := packagesJson.dependency("react")
	require.True(t, ok)
	require.Equal(t, "^18.2.0", version)

	// devDependencies count too.
	_, ok = packagesJson.dependency("vite")
	require.True(t, ok)

	_, ok = packagesJson.dependency("next")
	require.False(t, ok)
}

func TestReadManifestAbsentOrMalformed(t *testing.T) {
	require.Nil(t, readManifest(t.TempDir()))

	dir := t.TempDir()
	writeProjectFile(t, dir, "package.json", `not json at all`)
	require.Nil(t, readManifest(dir))
}
