package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LUCKYDIP_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, time.Duration(0), c.Notify.FadeInDelay())
	require.Equal(t, 4*time.Second, c.Notify.DisplayDuration())
	require.Equal(t, 300*time.Millisecond, c.Notify.FadeOutDuration())
	require.Equal(t, 3, c.UI.MaxToasts)
	require.Equal(t, 10, c.UI.VisibleItems)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LUCKYDIP_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("LUCKYDIP_NOTIFY_DISPLAY_MS", "2000")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, c.Notify.DisplayDuration())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := "[notify]\nfade_out_ms = 150\n\n[ui]\nmax_toasts = 5\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	t.Setenv("LUCKYDIP_CONFIG", path)

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, 150*time.Millisecond, c.Notify.FadeOutDuration())
	require.Equal(t, 5, c.UI.MaxToasts)
	require.Equal(t, 4*time.Second, c.Notify.DisplayDuration(), "unset keys keep defaults")
}
