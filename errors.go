package dfa

import "errors"

// Errors reported by the package. All of them are caller contract
// violations, never transient conditions; retrying the same call cannot
// succeed. Callers match them with errors.Is.
var (
	// ErrInvariantViolation is reported by Validate when one of the four
	// structural invariants does not hold.
	ErrInvariantViolation = errors.New("dfa: invariant violation")

	// ErrAlphabetMismatch is reported by the product construction when the
	// two operands do not share the same alphabet.
	ErrAlphabetMismatch = errors.New("dfa: alphabet mismatch")

	// ErrPreconditionViolation is reported when an operation is invoked
	// outside its contract: merging a state into itself, naming a state
	// that is not in the state set, or traversing a transition function
	// that leaves the state set.
	ErrPreconditionViolation = errors.New("dfa: precondition violation")
)
