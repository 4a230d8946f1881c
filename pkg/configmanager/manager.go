// Package configmanager loads rayctl configuration from file, environment
// and bound command-line flags through Viper.
package configmanager

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration defaults.
const (
	// DefaultNamespace is the orchestrator namespace operations are
	// confined to when none is configured.
	DefaultNamespace = "ray"

	// DefaultWorkingDir is the directory external tools run in. It is
	// expected to contain the Ray chart checkout.
	DefaultWorkingDir = "ray"

	// DefaultChartPath is the chart location passed to the installer,
	// relative to the working directory.
	DefaultChartPath = "."

	// DefaultKubectlBinary is the orchestrator CLI program name.
	DefaultKubectlBinary = "kubectl"

	// DefaultHelmBinary is the package installer program name.
	DefaultHelmBinary = "helm"

	// DefaultTimeout bounds each external tool invocation. Zero keeps the
	// original unbounded blocking behavior.
	DefaultTimeout = time.Duration(0)
)

// Viper keys.
const (
	// NamespaceKey is the config key for the bound namespace.
	NamespaceKey = "namespace"
	// WorkingDirKey is the config key for the tool working directory.
	WorkingDirKey = "workingDir"
	// ChartPathKey is the config key for the chart location.
	ChartPathKey = "chartPath"
	// KubectlBinaryKey is the config key for the kubectl program name.
	KubectlBinaryKey = "kubectlBinary"
	// HelmBinaryKey is the config key for the helm program name.
	HelmBinaryKey = "helmBinary"
	// TimeoutKey is the config key for the per-invocation timeout.
	TimeoutKey = "timeout"
)

const (
	configName = "rayctl"
	configType = "yaml"
	envPrefix  = "RAYCTL"
)

// Config holds the resolved rayctl configuration.
type Config struct {
	// Namespace is the orchestrator namespace all operations are confined to.
	Namespace string `mapstructure:"namespace"`
	// WorkingDir is the directory external tools are started in.
	WorkingDir string `mapstructure:"workingDir"`
	// ChartPath is the chart location passed to the installer.
	ChartPath string `mapstructure:"chartPath"`
	// KubectlBinary is the orchestrator CLI program name.
	KubectlBinary string `mapstructure:"kubectlBinary"`
	// HelmBinary is the package installer program name.
	HelmBinary string `mapstructure:"helmBinary"`
	// Timeout bounds each external tool invocation. Zero means no timeout.
	Timeout time.Duration `mapstructure:"timeout"`
}

// ConfigManager loads and exposes the rayctl configuration.
type ConfigManager struct {
	// Viper is the underlying Viper instance, exposed so commands can bind
	// flags to configuration keys.
	Viper *viper.Viper
	// Config holds the configuration after a successful Load.
	Config *Config
}

// NewConfigManager constructs a ConfigManager that reads rayctl.yaml from
// the current directory and RAYCTL_* environment variables.
func NewConfigManager() *ConfigManager {
	viperInstance := viper.New()
	viperInstance.SetConfigName(configName)
	viperInstance.SetConfigType(configType)
	viperInstance.AddConfigPath(".")
	viperInstance.SetEnvPrefix(envPrefix)
	viperInstance.AutomaticEnv()

	viperInstance.SetDefault(NamespaceKey, DefaultNamespace)
	viperInstance.SetDefault(WorkingDirKey, DefaultWorkingDir)
	viperInstance.SetDefault(ChartPathKey, DefaultChartPath)
	viperInstance.SetDefault(KubectlBinaryKey, DefaultKubectlBinary)
	viperInstance.SetDefault(HelmBinaryKey, DefaultHelmBinary)
	viperInstance.SetDefault(TimeoutKey, DefaultTimeout)

	return &ConfigManager{
		Viper:  viperInstance,
		Config: &Config{},
	}
}

// Load reads the configuration file if present and unmarshals the resolved
// settings. A missing configuration file is not an error; defaults, bound
// flags and environment variables still apply.
func (m *ConfigManager) Load() error {
	err := m.Viper.ReadInConfig()
	if err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	err = m.Viper.Unmarshal(m.Config)
	if err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	return nil
}

// BindFlag binds a command-line flag to a configuration key so the flag
// value takes precedence over file and environment settings.
func (m *ConfigManager) BindFlag(key string, flag *pflag.Flag) error {
	err := m.Viper.BindPFlag(key, flag)
	if err != nil {
		return fmt.Errorf("bind flag %q: %w", key, err)
	}

	return nil
}
