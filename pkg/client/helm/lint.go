package helm

import (
	"errors"
	"fmt"

	helmaction "helm.sh/helm/v4/pkg/action"
)

// ErrChartLint is returned when the chart fails the lint preflight.
var ErrChartLint = errors.New("helm: chart lint failed")

// Lint runs a local lint of the chart at the given path using the Helm SDK.
// It requires no cluster access. Lint messages below error severity are
// ignored; hard lint errors abort with ErrChartLint.
func Lint(chartPath string) error {
	lint := helmaction.NewLint()

	result := lint.Run([]string{chartPath}, map[string]interface{}{})
	if len(result.Errors) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrChartLint, errors.Join(result.Errors...))
}
