package geometry

import (
	"fmt"

	"github.com/pkg/errors"
)

// Returned when an operation gets fewer points than it needs: 2 for the closest
// pair, 3 for a convex hull. Nothing inside the package retries; acquiring a
// new point set is up to the caller.
type InsufficientPointsError struct {
	Operation string
	Need      int
	Got       int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("%s: need at least %d points, got %d", e.Operation, e.Need, e.Got)
}

// Returned when the input cannot form a polygon (every point on one line) and
// the algorithm needs one, or when a wrap cannot make progress.
type DegenerateGeometryError struct {
	Operation string
	Reason    string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("%s: degenerate geometry: %s", e.Operation, e.Reason)
}

func newInsufficientPointsError(operation string, need, got int) error {
	return errors.WithStack(&InsufficientPointsError{Operation: operation, Need: need, Got: got})
}

func newDegenerateGeometryError(operation, format string, args ...interface{}) error {
	return errors.WithStack(&DegenerateGeometryError{Operation: operation, Reason: fmt.Sprintf(format, args...)})
}

func IsInsufficientPoints(err error) bool {
	var target *InsufficientPointsError
	return errors.As(err, &target)
}

func IsDegenerateGeometry(err error) bool {
	var target *DegenerateGeometryError
	return errors.As(err, &target)
}
