package cluster

import (
	"fmt"

	"github.com/raykube/rayctl/pkg/configmanager"
	"github.com/raykube/rayctl/pkg/di"
	clusterrepository "github.com/raykube/rayctl/pkg/svc/repository/cluster"
	"github.com/spf13/cobra"
)

// NewGetCmd creates the get command for clusters.
func NewGetCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "get <name>",
		Short:        "Get Ray cluster details",
		Long:         `Get the head service endpoint of a Ray cluster in the configured namespace.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
	}

	cfgManager := configmanager.NewConfigManager()
	bindNamespaceFlag(cmd, cfgManager)
	bindOutputFlag(cmd, cfgManager)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runtimeContainer.Invoke(func(injector di.Injector) error {
			factory, err := di.ResolveRepositoryFactory(injector)
			if err != nil {
				return err
			}

			return HandleGetRunE(cmd, cfgManager, GetDeps{Factory: factory}, args[0])
		})
	}

	return cmd
}

// GetDeps captures dependencies needed for the get command logic.
type GetDeps struct {
	// Factory creates the cluster repository from resolved configuration.
	Factory clusterrepository.Factory
}

// HandleGetRunE handles the get command.
// Exported for testing purposes.
func HandleGetRunE(
	cmd *cobra.Command,
	cfgManager *configmanager.ConfigManager,
	deps GetDeps,
	name string,
) error {
	err := cfgManager.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	repo, err := deps.Factory.Create(cfgManager.Config)
	if err != nil {
		return fmt.Errorf("failed to create cluster repository: %w", err)
	}

	cluster, err := repo.Get(cmd.Context(), name)
	if err != nil {
		return fmt.Errorf("failed to get cluster: %w", err)
	}

	format := cfgManager.Viper.GetString(outputFlag)

	return renderCluster(cmd.OutOrStdout(), cluster, format)
}

func bindOutputFlag(cmd *cobra.Command, cfgManager *configmanager.ConfigManager) {
	cmd.Flags().StringP(
		outputFlag,
		"o",
		OutputFormatPlain,
		"Output format: plain, json or yaml",
	)

	flag := cmd.Flags().Lookup(outputFlag)
	_ = cfgManager.BindFlag(outputFlag, flag)
}
