// Package kubectl provides a thin client over the kubectl command-line tool
// for the resource queries and deletions the cluster repository needs.
package kubectl

import (
	"context"
	"fmt"

	"github.com/raykube/rayctl/pkg/utils/runner"
)

const (
	// DefaultBinary is the kubectl program name resolved via PATH.
	DefaultBinary = "kubectl"

	// rayClusterResource is the custom resource type backing Ray clusters.
	rayClusterResource = "rayclusters"

	// nameColumns projects only the resource name.
	nameColumns = "custom-columns=NAME:metadata.name"

	// endpointColumns projects the cluster-internal IP and the first declared
	// port, in that order. The repository parses the output positionally, so
	// the column order is part of the contract.
	endpointColumns = "custom-columns=IP:.spec.clusterIP,PORT:.spec.ports[0].targetPort"
)

// Client invokes kubectl through a CommandRunner.
type Client struct {
	binary string
	runner runner.CommandRunner
}

// NewClient creates a kubectl client using the default binary name.
func NewClient(cmdRunner runner.CommandRunner) *Client {
	return NewClientWithBinary(DefaultBinary, cmdRunner)
}

// NewClientWithBinary creates a kubectl client with a custom binary name.
func NewClientWithBinary(binary string, cmdRunner runner.CommandRunner) *Client {
	if binary == "" {
		binary = DefaultBinary
	}

	return &Client{
		binary: binary,
		runner: cmdRunner,
	}
}

// GetRayClusterNames queries all Ray cluster resources in the namespace,
// requesting only the name column with the header suppressed. It returns the
// raw newline-delimited stdout.
func (c *Client) GetRayClusterNames(ctx context.Context, namespace string) (string, error) {
	args := []string{
		c.binary,
		"-n", namespace,
		"get", rayClusterResource,
		"--no-headers",
		"-o", nameColumns,
	}

	res, err := c.runner.Run(ctx, args)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", rayClusterResource, err)
	}

	return res.Stdout, nil
}

// GetServiceEndpoint queries the named service, requesting the IP and PORT
// columns with the header suppressed. It returns the raw single-line stdout.
func (c *Client) GetServiceEndpoint(
	ctx context.Context,
	namespace, service string,
) (string, error) {
	args := []string{
		c.binary,
		"-n", namespace,
		"get", "service", service,
		"-o", endpointColumns,
		"--no-headers",
	}

	res, err := c.runner.Run(ctx, args)
	if err != nil {
		return "", fmt.Errorf("get service %q: %w", service, err)
	}

	return res.Stdout, nil
}

// DeleteRayCluster deletes the named Ray cluster resource in the namespace.
func (c *Client) DeleteRayCluster(ctx context.Context, namespace, name string) error {
	args := []string{
		c.binary,
		"-n", namespace,
		"delete", rayClusterResource, name,
	}

	_, err := c.runner.Run(ctx, args)
	if err != nil {
		return fmt.Errorf("delete %s %q: %w", rayClusterResource, name, err)
	}

	return nil
}
