package clusterrepository

import (
	"github.com/raykube/rayctl/pkg/client/helm"
	"github.com/raykube/rayctl/pkg/client/kubectl"
	"github.com/raykube/rayctl/pkg/configmanager"
	"github.com/raykube/rayctl/pkg/utils/runner"
)

// Factory creates Repository instances from resolved configuration.
// Commands depend on this seam so tests can inject fakes.
type Factory interface {
	// Create builds a Repository bound to the configured namespace.
	Create(cfg *configmanager.Config) (Repository, error)
}

// DefaultFactory builds the kubectl/helm-backed repository.
type DefaultFactory struct {
	// Runner overrides the process runner when non-nil. Used by tests;
	// when nil an ExecCommandRunner is built from the configuration.
	Runner runner.CommandRunner
}

var _ Factory = DefaultFactory{}

// Create implements Factory.
func (f DefaultFactory) Create(cfg *configmanager.Config) (Repository, error) {
	cmdRunner := f.Runner
	if cmdRunner == nil {
		cmdRunner = runner.NewExecCommandRunner(cfg.WorkingDir, cfg.Timeout)
	}

	kubectlClient := kubectl.NewClientWithBinary(cfg.KubectlBinary, cmdRunner)
	helmClient := helm.NewClientWithOptions(cfg.HelmBinary, cfg.ChartPath, cmdRunner)

	return NewClusterRepository(cfg.Namespace, kubectlClient, helmClient, nil), nil
}
