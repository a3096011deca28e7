package layout

import "github.com/google/uuid"

// Uuid is a container's stable, never-reused identifier.
type Uuid = uuid.UUID

// Handle is an opaque identifier for a view or an output, owned by the
// windowing system. The core never introspects it beyond equality.
type Handle uint64

// Orientation is a split container's child arrangement.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
	Tabbed
	Stacked
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Tabbed:
		return "tabbed"
	case Stacked:
		return "stacked"
	default:
		return "unknown"
	}
}

// BorderMode is the focus-state of a container's decoration.
type BorderMode int

const (
	BorderInactive BorderMode = iota
	BorderActive
)

// Borders is the decoration state carried by Container(split) and View
// nodes. Border rendering itself is out of scope; the tree only carries
// the resulting value so focus changes can flip Mode.
type Borders struct {
	Mode      BorderMode
	DrawTitle bool
	Title     string
}

// Container is a tagged-union node in the layout tree. Kind determines
// which of the per-kind fields below are meaningful.
type Container struct {
	id   Uuid
	kind Kind

	// Output fields.
	outputHandle Handle
	background   *Handle
	bar          *Handle

	// Workspace fields.
	name       string
	fullscreen []Uuid

	// Container(split) fields.
	layout    Orientation
	owningOut Handle

	// View fields.
	viewHandle Handle
	title      string

	// Shared geometry/decoration (Workspace, Container, View).
	geometry Rect
	borders  *Borders
	floating bool
}

// ID returns the container's stable identifier. The root node has the
// zero Uuid.
func (c *Container) ID() Uuid { return c.id }

// Kind returns the container's tagged-union variant.
func (c *Container) Kind() Kind { return c.kind }

// OutputHandle returns the handle of an Output container.
func (c *Container) OutputHandle() Handle { return c.outputHandle }

// Background returns the output's background view slot, if set.
func (c *Container) Background() (Handle, bool) {
	if c.background == nil {
		return 0, false
	}
	return *c.background, true
}

// SetBackground sets or clears (via ok=false) the output's background slot.
func (c *Container) SetBackground(h Handle, ok bool) {
	if !ok {
		c.background = nil
		return
	}
	v := h
	c.background = &v
}

// Bar returns the output's bar view slot, if set.
func (c *Container) Bar() (Handle, bool) {
	if c.bar == nil {
		return 0, false
	}
	return *c.bar, true
}

// SetBar sets or clears (via ok=false) the output's bar slot.
func (c *Container) SetBar(h Handle, ok bool) {
	if !ok {
		c.bar = nil
		return
	}
	v := h
	c.bar = &v
}

// Name returns a Workspace's name.
func (c *Container) Name() string { return c.name }

// SetName sets a Workspace's name. Callers are responsible for
// upholding global uniqueness; see validate.Name for format rules.
func (c *Container) SetName(name string) { c.name = name }

// Fullscreen returns the workspace's fullscreen stack, ordered
// bottom-to-top; the last entry is the one that currently blocks focus.
func (c *Container) Fullscreen() []Uuid { return c.fullscreen }

func (c *Container) pushFullscreen(id Uuid) {
	c.fullscreen = append(c.fullscreen, id)
}

// removeFullscreen drops id from the workspace's fullscreen stack,
// wherever it occurs, preserving the relative order of the rest.
func (c *Container) removeFullscreen(id Uuid) {
	out := c.fullscreen[:0]
	for _, fid := range c.fullscreen {
		if fid != id {
			out = append(out, fid)
		}
	}
	c.fullscreen = out
}

// Layout returns a Container(split)'s orientation.
func (c *Container) Layout() Orientation { return c.layout }

// SetLayout sets a Container(split)'s orientation.
func (c *Container) SetLayout(l Orientation) { c.layout = l }

// OwningOutput returns the output handle a Container(split) belongs to.
func (c *Container) OwningOutput() Handle { return c.owningOut }

// ViewHandle returns a View's handle.
func (c *Container) ViewHandle() Handle { return c.viewHandle }

// Title returns a View's title.
func (c *Container) Title() string { return c.title }

// SetTitle sets a View's title.
func (c *Container) SetTitle(title string) { c.title = title }

// Geometry returns the container's current on-screen geometry
// (Workspace, Container(split), View).
func (c *Container) Geometry() Rect { return c.geometry }

// SetGeometry sets the container's on-screen geometry.
func (c *Container) SetGeometry(r Rect) { c.geometry = r }

// Borders returns the container's border/decoration state, or nil if
// border creation failed or was never attempted (non-fatal).
func (c *Container) Borders() *Borders { return c.borders }

// SetBorders replaces the container's border/decoration state.
func (c *Container) SetBorders(b *Borders) { c.borders = b }

// Floating reports whether the container participates in layout but is
// not sized by its parent's tiling rule.
func (c *Container) Floating() bool { return c.floating }

// SetFloating sets the floating flag.
func (c *Container) SetFloating(f bool) { c.floating = f }

func newRoot() *Container {
	return &Container{kind: KindRoot}
}

func newOutput(id Uuid, handle Handle) *Container {
	return &Container{id: id, kind: KindOutput, outputHandle: handle}
}

func newWorkspace(id Uuid, name string, geom Rect) *Container {
	return &Container{id: id, kind: KindWorkspace, name: name, geometry: geom}
}

func newSplitContainer(id Uuid, layout Orientation, out Handle, geom Rect) *Container {
	return &Container{id: id, kind: KindContainer, layout: layout, owningOut: out, geometry: geom}
}

func newView(id Uuid, handle Handle, geom Rect, title string, borders *Borders) *Container {
	return &Container{id: id, kind: KindView, viewHandle: handle, geometry: geom, title: title, borders: borders}
}
