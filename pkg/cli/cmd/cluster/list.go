package cluster

import (
	"fmt"
	"strings"

	"github.com/raykube/rayctl/pkg/configmanager"
	"github.com/raykube/rayctl/pkg/di"
	clusterrepository "github.com/raykube/rayctl/pkg/svc/repository/cluster"
	"github.com/raykube/rayctl/pkg/utils/notify"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command for clusters.
func NewListCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List Ray clusters",
		Long:         `List all Ray clusters in the configured namespace.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}

	cfgManager := configmanager.NewConfigManager()
	bindNamespaceFlag(cmd, cfgManager)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runtimeContainer.Invoke(func(injector di.Injector) error {
			factory, err := di.ResolveRepositoryFactory(injector)
			if err != nil {
				return err
			}

			return HandleListRunE(cmd, cfgManager, ListDeps{Factory: factory})
		})
	}

	return cmd
}

// ListDeps captures dependencies needed for the list command logic.
type ListDeps struct {
	// Factory creates the cluster repository from resolved configuration.
	Factory clusterrepository.Factory
}

// HandleListRunE handles the list command.
// Exported for testing purposes.
func HandleListRunE(
	cmd *cobra.Command,
	cfgManager *configmanager.ConfigManager,
	deps ListDeps,
) error {
	err := cfgManager.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	repo, err := deps.Factory.Create(cfgManager.Config)
	if err != nil {
		return fmt.Errorf("failed to create cluster repository: %w", err)
	}

	clusters, err := repo.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list clusters: %w", err)
	}

	displayClusterList(cmd, cfgManager.Config.Namespace, clusters)

	return nil
}

func displayClusterList(
	cmd *cobra.Command,
	namespace string,
	clusters []clusterrepository.Cluster,
) {
	writer := cmd.OutOrStdout()

	if len(clusters) == 0 {
		notify.Activityf(writer, "no clusters found in namespace %q", namespace)

		return
	}

	names := make([]string, 0, len(clusters))
	for _, cluster := range clusters {
		names = append(names, cluster.Name)
	}

	_, _ = fmt.Fprintln(writer, strings.Join(names, ", "))
}
