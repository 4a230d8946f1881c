package di

import (
	clusterrepository "github.com/raykube/rayctl/pkg/svc/repository/cluster"
	clustererrors "github.com/raykube/rayctl/pkg/svc/repository/cluster/errors"
	"github.com/samber/do/v2"
)

// Dependency providers.

// NewRuntime constructs the shared runtime container used by the root
// command and tests. It registers default implementations for the error
// classifier and the repository factory.
func NewRuntime() *Runtime {
	return New(
		provideClassifier,
		provideRepositoryFactory,
	)
}

// provideClassifier registers the default error classifier dependency.
func provideClassifier(i Injector) error {
	do.Provide(i, func(Injector) (clustererrors.Classifier, error) {
		return clustererrors.NewSubstringClassifier(), nil
	})

	return nil
}

// provideRepositoryFactory registers the cluster repository factory dependency.
func provideRepositoryFactory(i Injector) error {
	do.Provide(i, func(Injector) (clusterrepository.Factory, error) {
		return clusterrepository.DefaultFactory{}, nil
	})

	return nil
}
