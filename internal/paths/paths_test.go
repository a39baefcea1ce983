package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDataDirPrecedence(t *testing.T) {
	tests := []struct {
		name        string
		flag        string
		configValue string
		env         string
		want        string
	}{
		{
			name:        "flag wins over everything",
			flag:        "/tmp/from-flag",
			configValue: "/tmp/from-config",
			env:         "/tmp/from-env",
			want:        "/tmp/from-flag",
		},
		{
			name:        "config wins over env",
			configValue: "/tmp/from-config",
			env:         "/tmp/from-env",
			want:        "/tmp/from-config",
		},
		{
			name: "env wins over default",
			env:  "/tmp/from-env",
			want: "/tmp/from-env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv(EnvDataDir, tt.env)
			} else {
				t.Setenv(EnvDataDir, "")
				os.Unsetenv(EnvDataDir)
			}

			got, err := ResolveDataDir(tt.flag, tt.configValue)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDataDirDefault(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	os.Unsetenv(EnvDataDir)

	got, err := ResolveDataDir("", "")

	require.NoError(t, err)
	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, DefaultDataDirName), got)
}

func TestResolveConfigDirPrecedence(t *testing.T) {
	t.Setenv(EnvConfigDir, "/tmp/from-env")

	got, err := ResolveConfigDir("/tmp/from-flag")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-flag", got)

	got, err = ResolveConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env", got)
}

func TestResolveDataDirRelativeFlagBecomesAbsolute(t *testing.T) {
	got, err := ResolveDataDir("relative-dir", "")

	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, "relative-dir", filepath.Base(got))
}

func TestDefaultConfigDirLinuxXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	got, err := DefaultConfigDir()

	require.NoError(t, err)
	// On linux the XDG override is honored; elsewhere the platform
	// config dir is used and the suffix still names the project.
	assert.Equal(t, "lodge", filepath.Base(got))
}
