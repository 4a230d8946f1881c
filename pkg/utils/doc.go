// Package utils provides utility packages for common operations.
//
// This package contains subpackages with utility functions used across
// the rayctl codebase:
//
//   - notify: formatted message display with symbols and colors
//   - runner: external process execution with captured output
//
// These utilities are designed to be simple, focused, and reusable across
// different parts of the application.
package utils
