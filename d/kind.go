// Package d holds the failure-handling primitives shared by every colstore
// package: a small set of typed, caller-facing error kinds (§7 of the spec)
// built on github.com/pkg/errors for Cause() chains, plus panic-based
// assertions for invariant violations that are never meant to be recovered.
package d

// Kind is the closed set of caller-facing failure kinds. invariant-violation
// is deliberately not a Kind: it is always a panic, never a *Error value.
type Kind int

const (
	InvalidArgument Kind = iota + 1
	TypeMismatch
	NullDereference
	NameExists
	NoSuchName
	CapacityExceeded
	NotNullable
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid-argument"
	case TypeMismatch:
		return "type-mismatch"
	case NullDereference:
		return "null-dereference"
	case NameExists:
		return "name-exists"
	case NoSuchName:
		return "no-such-name"
	case CapacityExceeded:
		return "capacity-exceeded"
	case NotNullable:
		return "not-nullable"
	default:
		return "unknown-kind"
	}
}
