package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"campusctl"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)
	cfg := LoadConfig()
	require.Equal(t, "http://127.0.0.1:3000", cfg.APIBaseURL)
	require.Equal(t, "campus.db", cfg.DatabasePath)
	require.Equal(t, 30*time.Second, cfg.OnlineCheckInterval)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-a", "https://api.campus.example", "-d", "/tmp/x.db", "-i", "5")
	cfg := LoadConfig()
	require.Equal(t, "https://api.campus.example", cfg.APIBaseURL)
	require.Equal(t, "/tmp/x.db", cfg.DatabasePath)
	require.Equal(t, 5*time.Second, cfg.OnlineCheckInterval)
}
