package layout

import "strconv"

// The layout tree's boundary to the rest of the compositor: pure
// external collaborators the core consumes. Go shapes them as
// interfaces so the core compiles and is testable without a real
// windowing system, rendering, or scripting layer.

// FocusCallback tells the windowing system which view should actually
// receive input focus. The tree decides; it never focuses a client
// itself.
type FocusCallback interface {
	FocusOn(handle Handle) error
}

// BorderSetter applies a border/decoration mode change to a container.
// Border rendering itself is out of scope.
type BorderSetter interface {
	SetBorderMode(id Uuid, mode BorderMode) error
}

// NameAllocator names the default workspace created alongside a new
// output. Rather than hard-coding the output handle's integer value
// (which can collide with an existing workspace name and fail
// validation), callers supply an allocator. IntegerNameAllocator
// reproduces the historical behavior for compatibility.
type NameAllocator interface {
	NextWorkspaceName(out Handle) string
}

// PositionerLookup answers the windowing-system queries add_floating_view
// needs to place a popup/positioner-backed view.
type PositionerLookup interface {
	AnchorRect(handle Handle) (Rect, bool)
	PositionerSize(handle Handle) (Size, bool)
	ParentOf(handle Handle) (Handle, bool)
	GeometryOf(handle Handle) (Rect, bool)
}

// BorderFactory creates the initial Borders value for a newly inserted
// view. Failure is non-fatal: callers treat a false ok as "no borders".
type BorderFactory interface {
	NewBorders(geom Rect, out Handle) (*Borders, bool)
}

// Metrics is the optional instrumentation hook. A nil Metrics on
// LayoutTree disables instrumentation entirely — the core has no
// Prometheus dependency in its own import graph, only through this
// interface's concrete implementation in internal/metrics.
type Metrics interface {
	ObserveMutation(op string, seconds float64)
	SetContainerCount(kind Kind, n int)
	IncValidations(outcome string)
	IncFocusBlockedByFullscreen()
}

// IntegerNameAllocator reproduces the historical (FIXME-prone) default:
// name the workspace after the output handle's decimal integer value.
// If another output already owns that name, validation will fail
// immediately — a known quirk, preserved for compatibility rather than
// papered over.
type IntegerNameAllocator struct{}

// NextWorkspaceName implements NameAllocator.
func (IntegerNameAllocator) NextWorkspaceName(out Handle) string {
	return strconv.FormatUint(uint64(out), 10)
}
