// Package helm provides a thin client over the helm command-line tool for
// installing the Ray chart, plus a local chart lint preflight backed by the
// Helm SDK.
package helm

import (
	"context"
	"fmt"

	"github.com/raykube/rayctl/pkg/utils/runner"
)

const (
	// DefaultBinary is the helm program name resolved via PATH.
	DefaultBinary = "helm"

	// DefaultChartPath is the chart location passed to helm install,
	// relative to the runner's working directory.
	DefaultChartPath = "."

	// clusterOnlyValue provisions the cluster infrastructure without an
	// accompanying head/worker deployment.
	clusterOnlyValue = "clusterOnly=true"
)

// Client invokes helm through a CommandRunner.
type Client struct {
	binary    string
	chartPath string
	runner    runner.CommandRunner
}

// NewClient creates a helm client with the default binary and chart path.
func NewClient(cmdRunner runner.CommandRunner) *Client {
	return NewClientWithOptions(DefaultBinary, DefaultChartPath, cmdRunner)
}

// NewClientWithOptions creates a helm client with a custom binary name and
// chart path. Empty values fall back to the defaults.
func NewClientWithOptions(binary, chartPath string, cmdRunner runner.CommandRunner) *Client {
	if binary == "" {
		binary = DefaultBinary
	}

	if chartPath == "" {
		chartPath = DefaultChartPath
	}

	return &Client{
		binary:    binary,
		chartPath: chartPath,
		runner:    cmdRunner,
	}
}

// ChartPath returns the chart location the client installs from.
func (c *Client) ChartPath() string {
	return c.chartPath
}

// Install installs the Ray chart under the given release name in the
// namespace, provisioning cluster infrastructure only and creating the
// namespace if absent. Success is inferred purely from the installer's exit
// code.
func (c *Client) Install(ctx context.Context, namespace, releaseName string) error {
	args := []string{
		c.binary,
		"-n", namespace,
		"install", releaseName,
		"--set", clusterOnlyValue,
		c.chartPath,
		"--create-namespace",
	}

	_, err := c.runner.Run(ctx, args)
	if err != nil {
		return fmt.Errorf("install release %q: %w", releaseName, err)
	}

	return nil
}
