package cluster

import (
	"fmt"
	"path/filepath"

	"github.com/raykube/rayctl/pkg/client/helm"
	"github.com/raykube/rayctl/pkg/configmanager"
	"github.com/raykube/rayctl/pkg/di"
	clusterrepository "github.com/raykube/rayctl/pkg/svc/repository/cluster"
	"github.com/raykube/rayctl/pkg/utils/notify"
	"github.com/spf13/cobra"
)

const lintFlag = "lint"

// NewCreateCmd creates the create command for clusters.
func NewCreateCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a Ray cluster",
		Long: `Install the Ray chart under the given cluster name in the configured ` +
			`namespace, provisioning cluster infrastructure only.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
	}

	cfgManager := configmanager.NewConfigManager()
	bindNamespaceFlag(cmd, cfgManager)
	bindLintFlag(cmd, cfgManager)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runtimeContainer.Invoke(func(injector di.Injector) error {
			factory, err := di.ResolveRepositoryFactory(injector)
			if err != nil {
				return err
			}

			return HandleCreateRunE(cmd, cfgManager, CreateDeps{Factory: factory}, args[0])
		})
	}

	return cmd
}

// CreateDeps captures dependencies needed for the create command logic.
type CreateDeps struct {
	// Factory creates the cluster repository from resolved configuration.
	Factory clusterrepository.Factory
	// Lint overrides the chart lint preflight. If nil, the Helm SDK lint
	// is used. This is primarily for testing purposes.
	Lint func(chartPath string) error
}

// HandleCreateRunE handles the create command.
// Exported for testing purposes.
func HandleCreateRunE(
	cmd *cobra.Command,
	cfgManager *configmanager.ConfigManager,
	deps CreateDeps,
	name string,
) error {
	err := cfgManager.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfgManager.Viper.GetBool(lintFlag) {
		err = lintChart(cfgManager.Config, deps)
		if err != nil {
			return fmt.Errorf("chart preflight failed: %w", err)
		}
	}

	repo, err := deps.Factory.Create(cfgManager.Config)
	if err != nil {
		return fmt.Errorf("failed to create cluster repository: %w", err)
	}

	cluster, err := repo.Create(cmd.Context(), clusterrepository.CreateSpec{Name: name})
	if err != nil {
		return fmt.Errorf("failed to create cluster: %w", err)
	}

	notify.Successf(
		cmd.OutOrStdout(),
		"created cluster %q in namespace %q",
		cluster.Name,
		cfgManager.Config.Namespace,
	)

	return nil
}

// lintChart runs the lint preflight against the resolved chart location.
func lintChart(cfg *configmanager.Config, deps CreateDeps) error {
	lint := deps.Lint
	if lint == nil {
		lint = helm.Lint
	}

	chartPath := cfg.ChartPath
	if !filepath.IsAbs(chartPath) {
		chartPath = filepath.Join(cfg.WorkingDir, chartPath)
	}

	return lint(chartPath)
}

func bindLintFlag(cmd *cobra.Command, cfgManager *configmanager.ConfigManager) {
	cmd.Flags().Bool(
		lintFlag,
		false,
		"Lint the chart locally before installing",
	)

	flag := cmd.Flags().Lookup(lintFlag)
	_ = cfgManager.BindFlag(lintFlag, flag)
}
