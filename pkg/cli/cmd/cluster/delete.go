package cluster

import (
	"fmt"

	"github.com/raykube/rayctl/pkg/configmanager"
	"github.com/raykube/rayctl/pkg/di"
	clusterrepository "github.com/raykube/rayctl/pkg/svc/repository/cluster"
	clustererrors "github.com/raykube/rayctl/pkg/svc/repository/cluster/errors"
	"github.com/raykube/rayctl/pkg/utils/notify"
	"github.com/spf13/cobra"
)

// NewDeleteCmd creates the delete command for clusters.
func NewDeleteCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "delete <name>",
		Short:        "Delete a Ray cluster",
		Long:         `Delete the named Ray cluster from the configured namespace.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
	}

	cfgManager := configmanager.NewConfigManager()
	bindNamespaceFlag(cmd, cfgManager)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runtimeContainer.Invoke(func(injector di.Injector) error {
			factory, err := di.ResolveRepositoryFactory(injector)
			if err != nil {
				return err
			}

			return HandleDeleteRunE(cmd, cfgManager, DeleteDeps{Factory: factory}, args[0])
		})
	}

	return cmd
}

// DeleteDeps captures dependencies needed for the delete command logic.
type DeleteDeps struct {
	// Factory creates the cluster repository from resolved configuration.
	Factory clusterrepository.Factory
}

// HandleDeleteRunE handles the delete command.
// Exported for testing purposes.
func HandleDeleteRunE(
	cmd *cobra.Command,
	cfgManager *configmanager.ConfigManager,
	deps DeleteDeps,
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

	err = repo.Delete(cmd.Context(), name)
	if err != nil {
		if clustererrors.IsNotFound(err) {
			notify.Warningf(
				cmd.ErrOrStderr(),
				"cluster %q not found in namespace %q",
				name,
				cfgManager.Config.Namespace,
			)
		}

		return fmt.Errorf("failed to delete cluster: %w", err)
	}

	notify.Successf(
		cmd.OutOrStdout(),
		"deleted cluster %q from namespace %q",
		name,
		cfgManager.Config.Namespace,
	)

	return nil
}
