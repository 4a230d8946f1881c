package di

import (
	"fmt"

	clusterrepository "github.com/raykube/rayctl/pkg/svc/repository/cluster"
	clustererrors "github.com/raykube/rayctl/pkg/svc/repository/cluster/errors"
	"github.com/samber/do/v2"
)

// Dependency resolvers.

// ResolveClassifier retrieves the error classifier dependency from the
// injector with consistent error handling.
func ResolveClassifier(injector Injector) (clustererrors.Classifier, error) {
	classifier, err := do.Invoke[clustererrors.Classifier](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve classifier dependency: %w", err)
	}

	return classifier, nil
}

// ResolveRepositoryFactory retrieves the cluster repository factory
// dependency from the injector with consistent error handling.
func ResolveRepositoryFactory(injector Injector) (clusterrepository.Factory, error) {
	factory, err := do.Invoke[clusterrepository.Factory](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve repository factory dependency: %w", err)
	}

	return factory, nil
}
