package configmanager_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/raykube/rayctl/pkg/configmanager"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigManager_LoadDefaults(t *testing.T) {
	t.Parallel()

	cfgManager := configmanager.NewConfigManager()

	require.NoError(t, cfgManager.Load())

	assert.Equal(t, "ray", cfgManager.Config.Namespace)
	assert.Equal(t, "ray", cfgManager.Config.WorkingDir)
	assert.Equal(t, ".", cfgManager.Config.ChartPath)
	assert.Equal(t, "kubectl", cfgManager.Config.KubectlBinary)
	assert.Equal(t, "helm", cfgManager.Config.HelmBinary)
	assert.Equal(t, time.Duration(0), cfgManager.Config.Timeout)
}

func TestConfigManager_LoadFromFile(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "rayctl.yaml")
	configContent := `namespace: quantum
workingDir: /srv/charts/ray
kubectlBinary: oc
timeout: 30s
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o600))

	cfgManager := configmanager.NewConfigManager()
	cfgManager.Viper.SetConfigFile(configPath)

	require.NoError(t, cfgManager.Load())

	assert.Equal(t, "quantum", cfgManager.Config.Namespace)
	assert.Equal(t, "/srv/charts/ray", cfgManager.Config.WorkingDir)
	assert.Equal(t, "oc", cfgManager.Config.KubectlBinary)
	assert.Equal(t, 30*time.Second, cfgManager.Config.Timeout)
	// Unset keys keep their defaults.
	assert.Equal(t, "helm", cfgManager.Config.HelmBinary)
	assert.Equal(t, ".", cfgManager.Config.ChartPath)
}

func TestConfigManager_LoadFromEnvironment(t *testing.T) {
	t.Setenv("RAYCTL_NAMESPACE", "env-namespace")

	cfgManager := configmanager.NewConfigManager()

	require.NoError(t, cfgManager.Load())

	assert.Equal(t, "env-namespace", cfgManager.Config.Namespace)
}

func TestConfigManager_BoundFlagTakesPrecedence(t *testing.T) {
	t.Parallel()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("namespace", "n", "", "namespace scope")

	cfgManager := configmanager.NewConfigManager()
	require.NoError(t, cfgManager.BindFlag(configmanager.NamespaceKey, flags.Lookup("namespace")))

	require.NoError(t, flags.Parse([]string{"--namespace", "flag-namespace"}))
	require.NoError(t, cfgManager.Load())

	assert.Equal(t, "flag-namespace", cfgManager.Config.Namespace)
}

func TestConfigManager_LoadRejectsMalformedFile(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "rayctl.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("namespace: [unclosed"), 0o600))

	cfgManager := configmanager.NewConfigManager()
	cfgManager.Viper.SetConfigFile(configPath)

	require.Error(t, cfgManager.Load())
}
