// Package client provides thin clients for the external tools rayctl
// drives to manage Ray clusters:
//
//   - kubectl: Kubernetes API operations against RayCluster resources
//   - helm: Ray chart installation and lint preflight
//
// Both clients build exact argument vectors and delegate process
// execution to a runner.CommandRunner, so tests can assert the vectors
// without spawning processes.
package client
