package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativePathBacktracks(t *testing.T) {
	rel, ok := RelativePath("/this/should/form/b/rel/path/", "/this/should/form/a/rel/path/")
	require.True(t, ok)
	assert.Equal(t, "../../../b/rel/path", rel)
}

func TestRelativePathMixedAbsoluteRelative(t *testing.T) {
	// Relative target against an absolute base has no relative form.
	_, ok := RelativePath("./this/should/not/form/a/rel/path/", "/this/should/not/form/a/rel/path/")
	assert.False(t, ok)

	// An absolute target against a relative base is returned unchanged.
	rel, ok := RelativePath("/already/absolute", "some/relative/base")
	require.True(t, ok)
	assert.Equal(t, "/already/absolute", rel)
}

func TestRelativePathDotRelative(t *testing.T) {
	rel, ok := RelativePath("./this/should/form/b/rel/path/", "./this/should/form/a/rel/path/")
	require.True(t, ok)
	assert.Equal(t, "../../../b/rel/path", rel)
}

func TestRelativePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		base string
		want string
		ok   bool
	}{
		{
			name: "target below base",
			path: "/project/src/lib.rs",
			base: "/project",
			want: "src/lib.rs",
			ok:   true,
		},
		{
			name: "target above base",
			path: "/project",
			base: "/project/src/deep",
			want: "../..",
			ok:   true,
		},
		{
			name: "equal paths",
			path: "/project/src",
			base: "/project/src",
			want: "",
			ok:   true,
		},
		{
			name: "sibling directories",
			path: "a/x",
			base: "a/y",
			want: "../x",
			ok:   true,
		},
		{
			name: "parent dir in base past shared prefix",
			path: "/a/b/c",
			base: "/a/../b",
			want: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel, ok := RelativePath(tt.path, tt.base)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, rel)
			}
		})
	}
}
