package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into a fresh directory so no stray .env is picked up.
func chdir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })

	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	chdir(t)
	t.Setenv("HESSCOV_STEP", "5e-4")
	t.Setenv("HESSCOV_INVERTER", "doolittle")
	t.Setenv("HESSCOV_MEMO", "true")
	t.Setenv("HESSCOV_LOG_LEVEL", "debug")
	t.Setenv("HESSCOV_LOG_DEV", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5e-4, cfg.Step)
	assert.Equal(t, "doolittle", cfg.Inverter)
	assert.True(t, cfg.Memo)

	lc := cfg.Logging()
	assert.Equal(t, "debug", lc.Level)
	assert.True(t, lc.Development)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "custom.env")
	require.NoError(t, os.WriteFile(path, []byte("HESSCOV_TOLERANCE=0.5\nHESSCOV_FORMAT=yaml\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("HESSCOV_TOLERANCE")
		_ = os.Unsetenv("HESSCOV_FORMAT")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Tolerance)
	assert.Equal(t, "yaml", cfg.Format)
}

func TestLoad_EnvFileDoesNotOverrideEnvironment(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultEnvFile), []byte("HESSCOV_INVERTER=doolittle\n"), 0o600))
	t.Setenv("HESSCOV_INVERTER", "gonum")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gonum", cfg.Inverter)
}

func TestLoad_MissingExplicitEnvFile(t *testing.T) {
	dir := chdir(t)

	_, err := Load(filepath.Join(dir, "nope.env"))
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	for key, val := range map[string]string{
		"HESSCOV_STEP":      "0",
		"HESSCOV_TOLERANCE": "-1",
		"HESSCOV_INVERTER":  "qr",
		"HESSCOV_FORMAT":    "csv",
	} {
		t.Run(key, func(t *testing.T) {
			chdir(t)
			t.Setenv(key, val)

			cfg, err := Load("")
			require.NoError(t, err)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	t.Run("unparsable", func(t *testing.T) {
		chdir(t)
		t.Setenv("HESSCOV_MEMO", "perhaps")

		_, err := Load("")
		assert.Error(t, err)
	})
}
