// SPDX-License-Identifier: MPL-2.0

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCacheRootWith_EnvOverride(t *testing.T) {
	t.Parallel()

	getenv := func(key string) string {
		if key == CacheRootEnv {
			return "/custom/packages"
		}
		return ""
	}

	root, err := DefaultCacheRootWith(getenv)
	require.NoError(t, err)
	assert.Equal(t, "/custom/packages", root)
}

func TestDefaultCacheRootWith_PlatformDefault(t *testing.T) {
	t.Parallel()

	root, err := DefaultCacheRootWith(func(string) string { return "" })
	require.NoError(t, err)

	// Always ends with the cache layout the document tool resolves from.
	suffix := filepath.Join("typst", "packages", "local")
	assert.True(t, filepath.IsAbs(root) || root != "", "cache root should be non-empty")
	assert.Equal(t, suffix, root[len(root)-len(suffix):])
}

func TestConfig_CloneTimeout(t *testing.T) {
	t.Parallel()

	cfg := &Config{CloneTimeoutSeconds: 45}
	assert.Equal(t, 45*time.Second, cfg.CloneTimeout())
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.Equal(t, 120, cfg.CloneTimeoutSeconds)
	assert.False(t, cfg.UI.Verbose)
	assert.Empty(t, cfg.CacheRoot)
}
