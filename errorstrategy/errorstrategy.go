// Package errorstrategy implements the decisions that follow a step, hook, or
// guard error: absorb it into the running test or propagate it up to the
// suite, mirroring the propagate/absorb branching the teacher uses for
// reconciler errors (internal/reconciler) and the typed-error convention from
// internal/api/errors.go.
package errorstrategy

// Decision is the outcome of consulting a Strategy after an error.
type Decision int

const (
	// Absorb records the error against the current scope and continues.
	Absorb Decision = iota
	// Propagate lets the error break out of the current scope.
	Propagate
)

// String implements fmt.Stringer.
func (d Decision) String() string {
	if d == Absorb {
		return "absorb"
	}
	return "propagate"
}

// Strategy decides, after an error, whether it should be absorbed or
// propagated at the test level and, independently, at the suite level (spec
// §4.D). A Strategy is consulted fresh for every error; any internal counters
// it keeps (AllowCount) must be scoped by the caller per Reset.
type Strategy interface {
	// OnTestError decides the fate of an error observed while a test is
	// running.
	OnTestError(err error) Decision
	// OnSuiteError decides the fate of an error that has already propagated
	// out of a test.
	OnSuiteError(err error) Decision
}
