package layout

import "fmt"

// Kind identifies a Container's tagged-union variant. It also doubles
// as the "expected kind" payload in UuidWrongType errors.
type Kind int

const (
	KindRoot Kind = iota
	KindOutput
	KindWorkspace
	KindContainer
	KindView
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "Root"
	case KindOutput:
		return "Output"
	case KindWorkspace:
		return "Workspace"
	case KindContainer:
		return "Container"
	case KindView:
		return "View"
	default:
		return "Unknown"
	}
}

// NodeNotFoundError means a Uuid does not resolve to any live node.
type NodeNotFoundError struct{ ID Uuid }

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("node not found: %s", e.ID)
}

// NodeWasRemovedError means the node existed but has since been removed
// from the tree; the caller held a stale reference.
type NodeWasRemovedError struct{ ID Uuid }

func (e *NodeWasRemovedError) Error() string {
	return fmt.Sprintf("node was removed: %s", e.ID)
}

// ViewNotFoundError means a view handle has no corresponding node.
type ViewNotFoundError struct{ Handle Handle }

func (e *ViewNotFoundError) Error() string {
	return fmt.Sprintf("view not found: handle %d", e.Handle)
}

// OutputNotFoundError means an output handle has no corresponding node.
type OutputNotFoundError struct{ Handle Handle }

func (e *OutputNotFoundError) Error() string {
	return fmt.Sprintf("output not found: handle %d", e.Handle)
}

// OutputExistsError means add_output was called with a handle already present.
type OutputExistsError struct{ Handle Handle }

func (e *OutputExistsError) Error() string {
	return fmt.Sprintf("output already exists: handle %d", e.Handle)
}

// HandleNotFoundError means a handle-based lookup missed the handle index.
type HandleNotFoundError struct{ Handle Handle }

func (e *HandleNotFoundError) Error() string {
	return fmt.Sprintf("handle not found: %d", e.Handle)
}

// UuidNotAssociatedWithError means a Uuid was expected to name a node of
// a particular kind, but the node it names is of another kind. Unlike
// UuidWrongTypeError it carries only the expected kind.
type UuidNotAssociatedWithError struct{ Kind Kind }

func (e *UuidNotAssociatedWithError) Error() string {
	return fmt.Sprintf("uuid not associated with kind %s", e.Kind)
}

// UuidWrongTypeError means a Uuid resolved to a node, but of a kind the
// caller did not accept.
type UuidWrongTypeError struct {
	ID       Uuid
	Expected []Kind
}

func (e *UuidWrongTypeError) Error() string {
	return fmt.Sprintf("uuid %s has wrong type, expected one of %v", e.ID, e.Expected)
}

// NoActiveContainerError means an operation required an active container
// and none was set.
type NoActiveContainerError struct{}

func (e *NoActiveContainerError) Error() string { return "no active container" }

// InvalidOperationOnRootContainerError means the caller tried to remove,
// float, or otherwise mutate a workspace's root split container directly.
type InvalidOperationOnRootContainerError struct{ ID Uuid }

func (e *InvalidOperationOnRootContainerError) Error() string {
	return fmt.Sprintf("invalid operation on root container: %s", e.ID)
}

// FocusBlockedByFullscreenError is the soft error returned by
// SetActiveNode when a fullscreen view holds the workspace and the
// requested container isn't it. Callers are expected to log and
// continue rather than propagate it as a hard failure.
type FocusBlockedByFullscreenError struct {
	Requested Uuid
	Holder    Uuid
}

func (e *FocusBlockedByFullscreenError) Error() string {
	return fmt.Sprintf("focus blocked: %s is held fullscreen by %s", e.Requested, e.Holder)
}

// Graph errors returned by InnerTree, wrapped by LayoutTree callers as needed.
type (
	// ErrNodeNotFound is returned by InnerTree lookups that take a node
	// index rather than a Uuid.
	ErrNodeNotFound struct{}
	// ErrNoParent is returned when parent_of is called on the root node.
	ErrNoParent struct{}
	// ErrNoSuchEdge is returned when no edge exists between the given
	// parent and child.
	ErrNoSuchEdge struct{}
)

func (ErrNodeNotFound) Error() string { return "node not found" }
func (ErrNoParent) Error() string     { return "node has no parent" }
func (ErrNoSuchEdge) Error() string   { return "no such edge" }
