// Package cluster wires the Ray cluster lifecycle subcommands.
package cluster

import (
	"fmt"

	"github.com/raykube/rayctl/pkg/configmanager"
	"github.com/raykube/rayctl/pkg/di"
	"github.com/spf13/cobra"
)

// NewClusterCmd creates the parent cluster command and wires lifecycle
// subcommands beneath it.
func NewClusterCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Manage Ray cluster lifecycle",
		Long: `Manage lifecycle operations for Ray clusters on Kubernetes, including ` +
			`provisioning, lookup, and teardown.`,
		Args:         cobra.NoArgs,
		RunE:         handleClusterRunE,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewListCmd(runtimeContainer))
	cmd.AddCommand(NewGetCmd(runtimeContainer))
	cmd.AddCommand(NewCreateCmd(runtimeContainer))
	cmd.AddCommand(NewDeleteCmd(runtimeContainer))

	return cmd
}

func handleClusterRunE(cmd *cobra.Command, _ []string) error {
	// Cobra Help() can return an error (e.g., output stream or template issues); wrap it for clarity.
	err := cmd.Help()
	if err != nil {
		return fmt.Errorf("displaying cluster command help: %w", err)
	}

	return nil
}

// bindNamespaceFlag adds the namespace flag and binds it to the
// configuration so the flag value overrides file and environment settings.
func bindNamespaceFlag(cmd *cobra.Command, cfgManager *configmanager.ConfigManager) {
	cmd.Flags().StringP(
		configmanager.NamespaceKey,
		"n",
		"",
		"Namespace the operation is confined to",
	)

	flag := cmd.Flags().Lookup(configmanager.NamespaceKey)
	_ = cfgManager.BindFlag(configmanager.NamespaceKey, flag)
}
