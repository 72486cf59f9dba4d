package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nopFs is an empty filesystem, so discovery never finds a config file.
func nopFs(t *testing.T) afero.Fs {
	t.Helper()
	return afero.NewMemMapFs()
}

func writeFile(t *testing.T, fsys afero.Fs, path, contents string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(contents), 0o644))
}

func TestCheckForConfigsPrefersPrimaryName(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/proj/tarpaulin.toml", "[a]\nignored = true")
	writeFile(t, fsys, "/proj/.tarpaulin.toml", "[b]\nignored = true")

	p := Default()
	p.Root = "/proj"

	path, ok := p.CheckForConfigs(fsys)
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/proj", "tarpaulin.toml"), path)
}

func TestCheckForConfigsFallsBackToDotfile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/proj/.tarpaulin.toml", "[a]\nignored = true")

	p := Default()
	p.Root = "/proj"

	path, ok := p.CheckForConfigs(fsys)
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/proj", ".tarpaulin.toml"), path)
}

func TestCheckForConfigsUsesManifestParentWithoutRoot(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/workspace/crate/tarpaulin.toml", "[a]\nignored = true")

	p := Default()
	p.Manifest = "/workspace/crate/Cargo.toml"

	path, ok := p.CheckForConfigs(fsys)
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/workspace/crate", "tarpaulin.toml"), path)
}

func TestCheckForConfigsNothingFound(t *testing.T) {
	p := Default()
	p.Root = "/proj"

	_, ok := p.CheckForConfigs(nopFs(t))
	assert.False(t, ok)
}

func TestLoadFileStampsConfigPath(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/proj/tarpaulin.toml", "[a]\nignored = true\n[b]\ncount = true")

	profiles, err := LoadFile(fsys, "/proj/tarpaulin.toml")
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	for _, p := range profiles {
		assert.Equal(t, "/proj/tarpaulin.toml", p.ConfigPath)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(nopFs(t), "/proj/tarpaulin.toml")
	assert.Error(t, err)
}

func TestResolveDiscoversAndMerges(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/proj/tarpaulin.toml", `[global]
	branch = true
	exclude-files = ["target/*"]`)

	args := &Args{
		Root:         "/proj",
		Debug:        true,
		ExcludeFiles: []string{"foo.rs"},
	}
	set, err := Resolve(fsys, args)
	require.NoError(t, err)
	require.Len(t, set, 1)

	p := set[0]
	assert.Equal(t, "global", p.Name)
	assert.True(t, p.BranchCoverage)
	assert.True(t, p.Debug)
	assert.True(t, p.Verbose)
	assert.Equal(t, "/proj", p.Root)
	assert.Equal(t, []string{"target/*", "foo.rs"}, p.ExcludedFilesRaw)
	assert.Equal(t, filepath.Join("/proj", "tarpaulin.toml"), p.ConfigPath)
}

func TestResolveIgnoreConfigBypassesDiscovery(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/proj/tarpaulin.toml", "[global]\nbranch = true")

	set, err := Resolve(fsys, &Args{Root: "/proj", IgnoreConfig: true})
	require.NoError(t, err)
	require.Len(t, set, 1)
	assert.Empty(t, set[0].Name)
	assert.False(t, set[0].BranchCoverage)
}

func TestResolveExplicitAbsoluteConfigPath(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/etc/tarp/custom.toml", "[only]\ncount = true")

	set, err := Resolve(fsys, &Args{ConfigPath: "/etc/tarp/custom.toml"})
	require.NoError(t, err)
	require.Len(t, set, 1)
	assert.Equal(t, "only", set[0].Name)
	assert.True(t, set[0].Count)
}

func TestResolveFallsBackOnMalformedFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/proj/tarpaulin.toml", "[broken\nnot toml")

	set, err := Resolve(fsys, &Args{Root: "/proj"})
	require.NoError(t, err)
	require.Len(t, set, 1)
	assert.Empty(t, set[0].Name)
}

func TestResolveFallsBackOnEmptyFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/proj/tarpaulin.toml", "# nothing here\n")

	set, err := Resolve(fsys, &Args{Root: "/proj"})
	require.NoError(t, err)
	require.Len(t, set, 1)
	assert.Empty(t, set[0].Name)
}

func TestNewProfileSetNeverEmpty(t *testing.T) {
	backup := Default()
	set := NewProfileSet(nil, nil, backup)
	require.Len(t, set, 1)
	assert.Same(t, backup, set[0])
}
