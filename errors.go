package willowui

import (
	"errors"
	"fmt"
)

// ErrRegistrySealed is returned when a property is registered after the
// registry has been sealed.
var ErrRegistrySealed = errors.New("willowui: property registry is sealed")

// DuplicateDeclarationError reports a second registration of the same
// (kind, name) pair.
type DuplicateDeclarationError struct {
	Kind string
	Name string
}

func (e *DuplicateDeclarationError) Error() string {
	return fmt.Sprintf("willowui: property %s.%s already registered", e.Kind, e.Name)
}

// ChildReason says why an attach was refused.
type ChildReason uint8

const (
	ReasonHasVisualParent  ChildReason = iota // child already has a visual parent
	ReasonHasLogicalParent                    // child already has a logical parent
	ReasonCycle                               // child is the parent or one of its ancestors
	ReasonDisposed                            // child has been disposed
)

func (r ChildReason) String() string {
	switch r {
	case ReasonHasVisualParent:
		return "already has a visual parent"
	case ReasonHasLogicalParent:
		return "already has a logical parent"
	case ReasonCycle:
		return "would create a cycle"
	case ReasonDisposed:
		return "is disposed"
	default:
		return "invalid"
	}
}

// InvalidChildError is returned when a child cannot be attached to a parent.
// Children are never silently stolen from their current parent.
type InvalidChildError struct {
	Parent string
	Child  string
	Reason ChildReason
}

func (e *InvalidChildError) Error() string {
	return fmt.Sprintf("willowui: cannot attach %q to %q: child %s", e.Child, e.Parent, e.Reason)
}
