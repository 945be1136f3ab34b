package delaunay

import (
	"fmt"

	"github.com/pkg/errors"
)

// Threading errors up through the insertion, legalization and cavity
// recursion would add a ton of complexity to the code. Instead, the engine
// panics with a TriangulateError, and the public API recovers to convert it
// to an ordinary error. Anything else that panics is a genuine bug and is
// re-panicked.

type TriangulateError struct {
	Err error
}

func (e TriangulateError) Error() string { return e.Err.Error() }
func (e TriangulateError) Unwrap() error { return e.Err }

// Panic with a TriangulateError built from a format string.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

// Panic with a TriangulateError wrapping a typed engine error.
func fatal(err error) {
	panic(TriangulateError{err})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError.Err
		}
		panic(r)
	}
	return nil
}

// DegenerateGeometryError reports a triangle whose area is zero beyond
// tolerance. The fields are point indices.
type DegenerateGeometryError struct {
	A, B, C int
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate geometry: triangle (%d %d %d) has no area", e.A, e.B, e.C)
}

// LegalizationStalledError reports that the flip budget was exhausted while
// legalizing a point insertion. Callers can recover by raising
// MaxInsertionIterations or switching to PrecisionExact.
type LegalizationStalledError struct {
	Point int
	Flips int
}

func (e *LegalizationStalledError) Error() string {
	return fmt.Sprintf("legalization stalled: %d flips inserting point %d", e.Flips, e.Point)
}

// ConstraintConflictError reports a constraint edge that cannot be recovered
// because it crosses another constrained edge (or is degenerate). Neither
// edge is silently dropped.
type ConstraintConflictError struct {
	Edge     Edge
	Blocking Edge
}

func (e *ConstraintConflictError) Error() string {
	if e.Edge == e.Blocking {
		return fmt.Sprintf("constraint conflict: edge (%d %d) is degenerate", e.Edge.U, e.Edge.V)
	}
	return fmt.Sprintf("constraint conflict: edge (%d %d) crosses constrained edge (%d %d)",
		e.Edge.U, e.Edge.V, e.Blocking.U, e.Blocking.V)
}

// IncompleteTriangulationError reports that the refinement loop ran out of
// iterations (or stopped making progress) with constraints still unresolved.
type IncompleteTriangulationError struct {
	Unresolved []Edge
}

func (e *IncompleteTriangulationError) Error() string {
	return fmt.Sprintf("incomplete triangulation: %d constraints unresolved", len(e.Unresolved))
}
