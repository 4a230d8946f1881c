// Package svc provides the service layer for rayctl.
//
// This package contains the business logic that sits between the CLI
// commands and the kubectl/helm clients.
//
// Subpackages:
//   - repository/cluster: Ray cluster records and lifecycle operations
//   - repository/cluster/errors: typed failures and not-found classification
package svc
