// Package clustererrors provides the typed failures and failure
// classification used by the cluster repository.
//
// External tools report "not found" only through free-form stderr text, so
// the default classifier pattern-matches a fixed marker. The Classifier
// interface isolates that heuristic so a structured-output tool can later
// supply an exact classifier.
package clustererrors

import (
	"errors"
	"strings"

	"github.com/raykube/rayctl/pkg/utils/runner"
)

// NotFoundMarker is the substring kubectl emits on stderr when the targeted
// resource does not exist. Any change in kubectl's error phrasing silently
// reclassifies a "not found" as a generic command failure.
const NotFoundMarker = "NotFound"

// NotFoundError reports that the targeted resource does not exist, derived
// from the underlying command failure.
type NotFoundError struct {
	// Err is the command failure the classification was derived from.
	Err *runner.CommandError
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return "resource not found: " + e.Err.Error()
}

// Unwrap exposes the underlying command failure for errors.Is/As.
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err classifies as a NotFoundError.
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError

	return errors.As(err, &notFoundErr)
}

// Classifier maps a raw command failure (exit code + stderr text) to the
// closed set of repository error kinds.
type Classifier interface {
	// Classify refines err into a more specific error kind where possible.
	// Errors that do not match any known kind pass through unchanged.
	Classify(err error) error
}

// SubstringClassifier is the default Classifier. It re-types a command
// failure whose stderr contains a fixed marker into a NotFoundError.
type SubstringClassifier struct {
	// Marker is the stderr substring indicating a missing resource.
	Marker string
}

// NewSubstringClassifier constructs a SubstringClassifier with the default
// kubectl marker.
func NewSubstringClassifier() *SubstringClassifier {
	return &SubstringClassifier{Marker: NotFoundMarker}
}

// Classify implements Classifier.
func (c *SubstringClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var cmdErr *runner.CommandError
	if errors.As(err, &cmdErr) && strings.Contains(cmdErr.Stderr, c.Marker) {
		return &NotFoundError{Err: cmdErr}
	}

	return err
}
