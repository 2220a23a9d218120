package types

import "strings"

// Action can be performed on resources by actors.
// Actions are powers of two to achieve efficient set operations, like union, intersection, complement.
// An action is also a union of actions: ReadWrite contains both Read and Write.
type Action uint32

// the closed action set: a request or a grant carries exactly one of these
const (
	Read Action = 1 << iota
	Write

	None      Action = 0
	ReadWrite        = Read | Write

	// AllActions is the union of every known action
	AllActions = ReadWrite
)

var actionNames = map[Action]string{
	Read:  "read",
	Write: "write",
}

// IsIn tells if all actions in a are members of b: a is subset of b
func (a Action) IsIn(b Action) bool {
	return a|b == b
}

// Includes tells if all actions in b are members of a: a is superset of b.
// A ReadWrite grant includes a Read or Write request; a Read grant does not
// include Write or ReadWrite. This is the only satisfying relation between
// granted and requested actions.
func (a Action) Includes(b Action) bool {
	return b.IsIn(a)
}

// Difference returns the set of actions belonging to a but not b: complement of b in a
func (a Action) Difference(b Action) Action {
	return a &^ b
}

// IsValid reports whether a is a non-empty union of known actions
func (a Action) IsValid() bool {
	return a != None && a.IsIn(AllActions)
}

// Split a union of actions to a slice of single actions
func (a Action) Split() []Action {
	out := make([]Action, 0)
	op := Action(1)
	for op <= a {
		if op&a > 0 {
			out = append(out, op)
		}
		op <<= 1
	}
	return out
}

func (a Action) String() string {
	if a == ReadWrite {
		return "read_write"
	}

	as := a.Split()
	ns := make([]string, 0, len(as))
	for _, a := range as {
		n, ok := actionNames[a]
		if !ok {
			n = "unknown"
		}
		ns = append(ns, n)
	}
	return strings.Join(ns, "|")
}

// ParseAction parses a serialized action name.
// It is the fail-fast boundary for action values coming from outside:
// anything not in the closed set is an ErrUnknownAction, never coerced.
func ParseAction(s string) (Action, error) {
	switch s {
	case "read":
		return Read, nil
	case "write":
		return Write, nil
	case "read_write":
		return ReadWrite, nil
	}

	return None, ErrUnknownAction
}
