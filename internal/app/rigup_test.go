package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigup/rigup/internal/platform"
	"github.com/rigup/rigup/internal/testutil/mocks"
)

func testRigup(p *platform.Platform) *Rigup {
	return New(&bytes.Buffer{}).
		WithRunner(mocks.NewCommandRunner()).
		WithFileSystem(mocks.NewFileSystem()).
		WithPlatform(p)
}

func TestCatalog_PicksBuiltinByPlatform(t *testing.T) {
	linux := testRigup(platform.New(platform.OSLinux, "amd64", platform.EnvNative))
	c, err := linux.Catalog(Options{})
	require.NoError(t, err)
	assert.Contains(t, c.Groups(), "editors")
	assert.Contains(t, c.Groups(), "git")

	mac := testRigup(platform.New(platform.OSDarwin, "arm64", platform.EnvNative))
	c, err = mac.Catalog(Options{})
	require.NoError(t, err)
	assert.Contains(t, c.Groups(), "settings")
}

func TestCatalog_UsesFileWhenGiven(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.Seed("/home/dev/rig.yaml", "groups:\n  - name: only\n    apt: [git]\n")

	rigup := New(&bytes.Buffer{}).
		WithRunner(mocks.NewCommandRunner()).
		WithFileSystem(fs).
		WithPlatform(platform.New(platform.OSLinux, "amd64", platform.EnvNative))

	c, err := rigup.Catalog(Options{CatalogPath: "/home/dev/rig.yaml"})
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, c.Groups())

	_, err = rigup.Catalog(Options{CatalogPath: "/home/dev/missing.yaml"})
	require.Error(t, err)
}

func TestPreflight_PackageManagerPerPlatform(t *testing.T) {
	names := func(r *Rigup) []string {
		var out []string
		for _, check := range r.Preflight() {
			out = append(out, check.Name)
		}
		return out
	}

	linux := names(testRigup(platform.New(platform.OSLinux, "amd64", platform.EnvNative)))
	assert.Contains(t, linux, "command-apt-get")
	assert.NotContains(t, linux, "command-brew")
	assert.Equal(t, "not-root", linux[0], "not-root must run before anything else")

	mac := names(testRigup(platform.New(platform.OSDarwin, "arm64", platform.EnvNative)))
	assert.Contains(t, mac, "command-brew")
	assert.NotContains(t, mac, "command-apt-get")
}
