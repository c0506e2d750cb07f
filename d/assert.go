package d

import "fmt"

// PanicIfTrue panics with an invariant-violation if cond holds. Used at
// every point in the core where a condition would mean a broken internal
// contract rather than bad caller input.
func PanicIfTrue(cond bool, format string, args ...interface{}) {
	if cond {
		panic(fmt.Sprintf("invariant-violation: "+format, args...))
	}
}

// PanicIfFalse is PanicIfTrue(!cond, ...).
func PanicIfFalse(cond bool, format string, args ...interface{}) {
	PanicIfTrue(!cond, format, args...)
}

// PanicIfNotType asserts that the dynamic type of got matches one of want
// (compared by causeInTypes, i.e. by the errors.Cause chain's dynamic
// type) and returns got unchanged.
func PanicIfNotType(got error, want ...error) error {
	if !causeInTypes(got, want...) {
		panic(fmt.Sprintf("invariant-violation: unexpected error type %T", got))
	}
	return got
}

func causeInTypes(err error, types ...error) bool {
	cause := Unwrap(err)
	for _, t := range types {
		if fmt.Sprintf("%T", cause) == fmt.Sprintf("%T", t) {
			return true
		}
	}
	return false
}
