package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfilesTwoTables(t *testing.T) {
	doc := `[global]
	ignored = true
	coveralls = "hello"

	[other]
	run-types = ["Doctests", "Tests"]`

	profiles, err := ParseProfiles([]byte(doc))
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	for _, c := range profiles {
		switch c.Name {
		case "global":
			assert.True(t, c.RunIgnored)
			assert.Equal(t, "hello", c.Coveralls)
		case "other":
			assert.Equal(t, []RunType{RunDoctests, RunTests}, c.RunTypes)
		default:
			t.Fatalf("unexpected name %q", c.Name)
		}
	}
}

func TestParseProfilesPreservesTableOrder(t *testing.T) {
	doc := `[zeta]
	ignored = true
	[alpha]
	count = true
	[mid]
	debug = true`

	profiles, err := ParseProfiles([]byte(doc))
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	assert.Equal(t, "zeta", profiles[0].Name)
	assert.Equal(t, "alpha", profiles[1].Name)
	assert.Equal(t, "mid", profiles[2].Name)
}

func TestParseProfilesEmptyDocument(t *testing.T) {
	_, err := ParseProfiles([]byte(""))
	assert.ErrorIs(t, err, ErrNoTables)
}

func TestParseProfilesMalformed(t *testing.T) {
	_, err := ParseProfiles([]byte("[broken\nignored = true"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoTables)
}

func TestParseProfilesTableKeyOverridesName(t *testing.T) {
	doc := `[global]
	name = "something-else"
	ignored = true`

	profiles, err := ParseProfiles([]byte(doc))
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "global", profiles[0].Name)
}

func TestParseProfilesDefaultsApply(t *testing.T) {
	profiles, err := ParseProfiles([]byte("[minimal]\nignored = true"))
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	c := profiles[0]
	assert.True(t, c.LineCoverage)
	assert.False(t, c.BranchCoverage)
	assert.Equal(t, DefaultManifest, c.Manifest)
	assert.Equal(t, DefaultTimeout, c.TestTimeout.Std())
	assert.Equal(t, []RunType{RunTests}, c.RunTypes)
}

func TestParseProfilesAllOptions(t *testing.T) {
	doc := `[all]
	debug = true
	verbose = true
	ignore-panics = true
	ignore-tests = true
	count = true
	ignored = true
	force-clean = true
	line = true
	branch = true
	forward = true
	coveralls = "hello"
	report-uri = "http://hello.com"
	no-default-features = true
	features = ["a"]
	all-features = true
	workspace = true
	packages = ["pack_1"]
	exclude = ["pack_2"]
	exclude-files = ["fuzz/*"]
	timeout = "5s"
	release = true
	no-run = true
	locked = true
	frozen = true
	target-dir = "/tmp"
	offline = true
	Z = ["something-nightly"]
	out = ["Html"]
	run-types = ["Doctests"]
	root = "/home/rust"
	manifest-path = "/home/rust/foo/Cargo.toml"
	output-dir = "/home/rust/cov"
	ciserver = "travis-ci"
	args = ["--nocapture"]`

	profiles, err := ParseProfiles([]byte(doc))
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	c := profiles[0]
	assert.True(t, c.Debug)
	assert.True(t, c.Verbose)
	assert.True(t, c.IgnorePanics)
	assert.True(t, c.IgnoreTests)
	assert.True(t, c.Count)
	assert.True(t, c.RunIgnored)
	assert.True(t, c.ForceClean)
	assert.True(t, c.LineCoverage)
	assert.True(t, c.BranchCoverage)
	assert.True(t, c.ForwardSignals)
	assert.Equal(t, "hello", c.Coveralls)
	assert.Equal(t, "http://hello.com", c.ReportURI)
	assert.True(t, c.NoDefaultFeatures)
	assert.True(t, c.AllFeatures)
	assert.True(t, c.All)
	assert.True(t, c.Release)
	assert.True(t, c.NoRun)
	assert.True(t, c.Locked)
	assert.True(t, c.Frozen)
	assert.True(t, c.Offline)
	assert.Equal(t, 5*time.Second, c.TestTimeout.Std())
	assert.Equal(t, []string{"something-nightly"}, c.UnstableFeatures)
	assert.Equal(t, []string{"--nocapture"}, c.Varargs)
	assert.Equal(t, []string{"a"}, c.Features)
	assert.Equal(t, []string{"fuzz/*"}, c.ExcludedFilesRaw)
	assert.Equal(t, []string{"pack_1"}, c.Packages)
	assert.Equal(t, []string{"pack_2"}, c.ExcludePackages)
	assert.Equal(t, []OutputFile{OutHTML}, c.Generate)
	assert.Equal(t, []RunType{RunDoctests}, c.RunTypes)
	assert.Equal(t, Travis, c.CIServer)
	assert.Equal(t, "/home/rust", c.Root)
	assert.Equal(t, "/home/rust/foo/Cargo.toml", c.Manifest)
	assert.Equal(t, "/home/rust/cov", c.OutputDirectory)
	assert.Equal(t, "/tmp", c.TargetDir)
}

func TestParseProfilesBadRunType(t *testing.T) {
	_, err := ParseProfiles([]byte(`[bad]
	run-types = ["Nonsense"]`))
	assert.Error(t, err)
}

func TestParseProfilesUnknownCiServerPreserved(t *testing.T) {
	profiles, err := ParseProfiles([]byte(`[ci]
	ciserver = "in-house-ci"`))
	require.NoError(t, err)
	assert.Equal(t, CiService("in-house-ci"), profiles[0].CIServer)
}
