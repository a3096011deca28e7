// Package layout implements the hierarchical layout tree at the core of
// a tiling window compositor: an in-memory tree of outputs, workspaces,
// split containers, and views, plus the active-container/focus
// machinery, directional navigation, and the invariant validator that
// keeps them mutually consistent.
package layout

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sbwtw/way-cooler/internal/validate"
)

// Collaborators bundles the external collaborators LayoutTree consumes.
// Every field is optional; a nil collaborator is a no-op (or, for
// NameAllocator, falls back to IntegerNameAllocator).
type Collaborators struct {
	Focus         FocusCallback
	Borders       BorderSetter
	Names         NameAllocator
	Positioner    PositionerLookup
	BorderFactory BorderFactory
	Metrics       Metrics
}

// LayoutTree owns an InnerTree and the active-container pointer, and
// exposes the tree's mutation/query API. All operations assume
// single-threaded, serialized access.
type LayoutTree struct {
	tree      *InnerTree
	activeIdx int // -1 means unset

	focus         FocusCallback
	borders       BorderSetter
	names         NameAllocator
	positioner    PositionerLookup
	borderFactory BorderFactory
	metrics       Metrics
}

// New creates an empty LayoutTree (just the Root node, no active container).
func New(c Collaborators) *LayoutTree {
	if c.Names == nil {
		c.Names = IntegerNameAllocator{}
	}
	return &LayoutTree{
		tree:          newInnerTree(),
		activeIdx:     -1,
		focus:         c.Focus,
		borders:       c.Borders,
		names:         c.Names,
		positioner:    c.Positioner,
		borderFactory: c.BorderFactory,
		metrics:       c.Metrics,
	}
}

func newUuid() Uuid { return uuid.New() }

func (lt *LayoutTree) observe(op string, start time.Time) {
	if lt.metrics != nil {
		lt.metrics.ObserveMutation(op, time.Since(start).Seconds())
	}
}

func (lt *LayoutTree) validateOrPanic() {
	if err := Validate(lt); err != nil {
		if lt.metrics != nil {
			lt.metrics.IncValidations("fail")
		}
		slog.Error("layout invariant violated", "error", err)
		panic(err)
	}
	if lt.metrics != nil {
		lt.metrics.IncValidations("ok")
		lt.reportContainerCounts()
	}
}

// reportContainerCounts recomputes the live count of nodes per Kind and
// reports it to the Metrics collaborator. Called after every successful
// validation, since that is the only point a full tree walk is already
// known to be cheap relative to the mutation it followed.
func (lt *LayoutTree) reportContainerCounts() {
	counts := map[Kind]int{}
	lt.Walk(func(_ int, c *Container, _ bool) {
		counts[c.Kind()]++
	})
	for _, kind := range []Kind{KindRoot, KindOutput, KindWorkspace, KindContainer, KindView} {
		lt.metrics.SetContainerCount(kind, counts[kind])
	}
}

// lookup resolves id to its container and arena index.
func (lt *LayoutTree) lookup(id Uuid) (*Container, int, error) {
	idx, ok := lt.tree.LookupID(id)
	if !ok {
		return nil, -1, &NodeNotFoundError{ID: id}
	}
	c, ok := lt.tree.Get(idx)
	if !ok {
		return nil, -1, &NodeWasRemovedError{ID: id}
	}
	return c, idx, nil
}

// parentOf resolves id's parent container. Kept unexported since
// nothing outside this package needs it directly.
func (lt *LayoutTree) parentOf(id Uuid) (*Container, error) {
	_, idx, err := lt.lookup(id)
	if err != nil {
		return nil, err
	}
	parentIdx, err := lt.tree.ParentOf(idx)
	if err != nil {
		return nil, err
	}
	c, _ := lt.tree.Get(parentIdx)
	return c, nil
}

// GetActiveContainer returns the currently active container, or nil if unset.
func (lt *LayoutTree) GetActiveContainer() *Container {
	if lt.activeIdx == -1 {
		return nil
	}
	c, _ := lt.tree.Get(lt.activeIdx)
	return c
}

// ActiveIxOf walks up from the active container until one of the given
// kind is found, or returns nil if there is no active container or the
// walk reaches Root first.
func (lt *LayoutTree) ActiveIxOf(kind Kind) *Container {
	if lt.activeIdx == -1 {
		return nil
	}
	c, _ := lt.tree.Get(lt.activeIdx)
	if c.Kind() == kind {
		return c
	}
	ancestorIdx, err := lt.tree.AncestorOfType(lt.activeIdx, kind)
	if err != nil {
		return nil
	}
	anc, _ := lt.tree.Get(ancestorIdx)
	return anc
}

// RootContainerIx returns the workspace-root Container(split) of the
// active path. If there is no active container, it follows active edges
// from Root until a Container(split) is reached.
func (lt *LayoutTree) RootContainerIx() *Container {
	if lt.activeIdx != -1 {
		cur := lt.activeIdx
		for {
			parentIdx, err := lt.tree.ParentOf(cur)
			if err != nil {
				return nil
			}
			curC, _ := lt.tree.Get(cur)
			parentC, _ := lt.tree.Get(parentIdx)
			if curC.Kind() == KindContainer && parentC.Kind() == KindWorkspace {
				return curC
			}
			cur = parentIdx
		}
	}
	idx, ok := lt.tree.FollowPathUntil(lt.tree.RootIx(), KindContainer)
	if !ok {
		return nil
	}
	c, _ := lt.tree.Get(idx)
	return c
}

// InFullscreenWorkspace walks up from id to its Workspace and returns the
// id on top of its fullscreen stack, if any.
func (lt *LayoutTree) InFullscreenWorkspace(id Uuid) (Uuid, bool, error) {
	_, idx, err := lt.lookup(id)
	if err != nil {
		return Uuid{}, false, err
	}
	wsIdx, err := lt.tree.AncestorOfType(idx, KindWorkspace)
	if err != nil {
		return Uuid{}, false, err
	}
	ws, _ := lt.tree.Get(wsIdx)
	stack := ws.Fullscreen()
	if len(stack) == 0 {
		return Uuid{}, false, nil
	}
	return stack[len(stack)-1], true, nil
}

// setBorderMode applies a border-mode change via the collaborator, if any.
func (lt *LayoutTree) setBorderMode(id Uuid, mode BorderMode) error {
	if c, _, err := lt.lookup(id); err == nil && c.Borders() != nil {
		c.Borders().Mode = mode
	}
	if lt.borders == nil {
		return nil
	}
	return lt.borders.SetBorderMode(id, mode)
}

// SetActiveNode makes n the active container: checks the fullscreen
// guard, updates the active pointer, focuses the client (for a View) or
// leaves client focus untouched (for a Container(split)), updates
// borders, and propagates active=true up the path from n to Root.
func (lt *LayoutTree) SetActiveNode(id Uuid) error {
	c, idx, err := lt.lookup(id)
	if err != nil {
		return err
	}

	if holder, blocked, err := lt.InFullscreenWorkspace(id); err != nil {
		return err
	} else if blocked && holder != id {
		if lt.metrics != nil {
			lt.metrics.IncFocusBlockedByFullscreen()
		}
		return &FocusBlockedByFullscreenError{Requested: id, Holder: holder}
	}

	oldActiveIdx := lt.activeIdx
	lt.activeIdx = idx

	switch c.Kind() {
	case KindView:
		if lt.focus != nil {
			if err := lt.focus.FocusOn(c.ViewHandle()); err != nil {
				return err
			}
		}
	case KindContainer:
		// TODO: structural focus. A Container(split) has no window
		// handle to focus, so this only updates the active pointer
		// and borders for now.
	default:
		return &UuidWrongTypeError{ID: id, Expected: []Kind{KindView, KindContainer}}
	}

	if oldActiveIdx != -1 && oldActiveIdx != idx {
		if oldC, ok := lt.tree.Get(oldActiveIdx); ok && oldC.Kind() == KindView {
			sameAsNew := false
			if lt.positioner != nil {
				if parentHandle, hasParent := lt.positioner.ParentOf(oldC.ViewHandle()); hasParent {
					if parentIdx, ok := lt.tree.LookupView(parentHandle); ok && parentIdx == idx {
						sameAsNew = true
					}
				}
			}
			if !sameAsNew {
				if err := lt.setBorderMode(oldC.ID(), BorderInactive); err != nil {
					return err
				}
			}
		}
	}
	if err := lt.setBorderMode(id, BorderActive); err != nil {
		return err
	}

	// Propagate active=true along every edge from n up to Root.
	child := idx
	for {
		parentIdx, err := lt.tree.ParentOf(child)
		if err != nil {
			break
		}
		for _, sib := range lt.tree.ChildrenOf(parentIdx) {
			n := lt.tree.mustNode(sib)
			n.edge.active = sib == child
		}
		child = parentIdx
	}

	return nil
}

// SetActiveView resolves handle to a view and delegates to SetActiveNode.
func (lt *LayoutTree) SetActiveView(handle Handle) error {
	idx, ok := lt.tree.LookupView(handle)
	if !ok {
		return &ViewNotFoundError{Handle: handle}
	}
	c, _ := lt.tree.Get(idx)
	return lt.SetActiveNode(c.ID())
}

// UnsetActiveContainer clears the active pointer, e.g. when focus moves
// to a window outside the tree (a background layer).
func (lt *LayoutTree) UnsetActiveContainer() {
	lt.activeIdx = -1
}

// AddView inserts a new View for handle as a sibling/child of the active
// container and makes it active.
func (lt *LayoutTree) AddView(handle Handle) (*Container, error) {
	start := time.Now()
	defer lt.observe("add_view", start)

	if lt.activeIdx == -1 {
		return nil, &NoActiveContainerError{}
	}

	parentIdx, err := lt.tree.ParentOf(lt.activeIdx)
	if err != nil {
		return nil, err
	}
	w, _ := lt.tree.EdgeWeightBetween(parentIdx, lt.activeIdx)
	prevPos := w.order + 1

	insertParent := lt.activeIdx
	activeC, _ := lt.tree.Get(lt.activeIdx)
	if activeC.Kind() == KindView {
		insertParent = parentIdx
	}

	insertParentC, _ := lt.tree.Get(insertParent)
	drawTitle := insertParentC.Layout() == Horizontal || insertParentC.Layout() == Vertical

	geom, out := Rect{}, Handle(0)
	if lt.positioner != nil {
		if g, ok := lt.positioner.GeometryOf(handle); ok {
			geom = g
		}
	}
	out = insertParentC.OwningOutput()

	var borders *Borders
	if lt.borderFactory != nil {
		if b, ok := lt.borderFactory.NewBorders(geom, out); ok {
			b.DrawTitle = drawTitle
			borders = b
		}
	}

	view := newView(newUuid(), handle, geom, "", borders)
	viewIdx, err := lt.tree.AddChild(insertParent, view, true)
	if err != nil {
		return nil, err
	}
	if err := lt.tree.SetChildPos(viewIdx, prevPos); err != nil {
		return nil, err
	}

	lt.validateOrPanic()

	if err := lt.SetActiveNode(view.ID()); err != nil {
		if _, ok := err.(*FocusBlockedByFullscreenError); ok {
			slog.Info("add_view: blocked focus by fullscreen", "view", view.ID())
		} else {
			return nil, err
		}
	}

	c, _ := lt.tree.Get(viewIdx)
	return c, nil
}

// AddFloatingView attaches a new, floating View for handle under the
// workspace's root split container. It does not steal focus.
func (lt *LayoutTree) AddFloatingView(handle Handle, borders *Borders) (*Container, error) {
	root := lt.RootContainerIx()
	if root == nil {
		return nil, &NoActiveContainerError{}
	}
	rootIdx, _ := lt.tree.LookupID(root.ID())

	geom := Rect{}
	if lt.positioner != nil {
		if g, ok := lt.positioner.GeometryOf(handle); ok {
			geom = g
		}
	}

	view := newView(newUuid(), handle, geom, "", borders)
	viewIdx, err := lt.tree.AddChild(rootIdx, view, false)
	if err != nil {
		return nil, err
	}
	view.SetFloating(true)

	if lt.positioner != nil {
		if anchor, ok := lt.positioner.AnchorRect(handle); ok {
			size, ok := lt.positioner.PositionerSize(handle)
			if !ok || size.W == 0 || size.H == 0 {
				size = view.Geometry().Size
			}
			newGeom := Rect{Origin: anchor.Origin, Size: size}
			if parent, hasParent := lt.positioner.ParentOf(handle); hasParent {
				if parentGeom, ok := lt.positioner.GeometryOf(parent); ok {
					newGeom.Origin.X += parentGeom.Origin.X
					newGeom.Origin.Y += parentGeom.Origin.Y
				}
			}
			view.SetGeometry(newGeom)
		}
	}

	lt.validateOrPanic()
	c, _ := lt.tree.Get(viewIdx)
	return c, nil
}

// AddContainer wraps an existing child in a new Container(split), at the
// child's old sibling position, and makes the new container active.
func (lt *LayoutTree) AddContainer(layout Orientation, childID Uuid) (*Container, error) {
	_, childIdx, err := lt.lookup(childID)
	if err != nil {
		return nil, err
	}
	parentIdx, err := lt.tree.ParentOf(childIdx)
	if err != nil {
		return nil, err
	}
	oldWeight, ok := lt.tree.EdgeWeightBetween(parentIdx, childIdx)
	if !ok {
		return nil, ErrNoSuchEdge{}
	}

	parentC, _ := lt.tree.Get(parentIdx)
	newContainer := newSplitContainer(newUuid(), layout, parentC.OwningOutput(), Rect{})
	newIdx, err := lt.tree.AddChild(parentIdx, newContainer, false)
	if err != nil {
		return nil, err
	}

	if err := lt.tree.MoveNode(childIdx, newIdx); err != nil {
		return nil, err
	}
	if err := lt.tree.SetChildPos(newIdx, oldWeight.order); err != nil {
		return nil, err
	}

	if err := lt.SetActiveNode(newContainer.ID()); err != nil {
		if _, ok := err.(*FocusBlockedByFullscreenError); ok {
			slog.Info("add_container: blocked focus by fullscreen", "container", newContainer.ID())
		} else {
			return nil, err
		}
	}

	lt.validateOrPanic()
	c, _ := lt.tree.Get(newIdx)
	return c, nil
}

// AddOutput adds a new Output for handle, with a default workspace named
// by the configured NameAllocator and an empty root split Container.
func (lt *LayoutTree) AddOutput(handle Handle) error {
	rootIx := lt.tree.RootIx()
	for _, outIdx := range lt.tree.ChildrenOf(rootIx) {
		out, _ := lt.tree.Get(outIdx)
		if out.OutputHandle() == handle {
			return &OutputExistsError{Handle: handle}
		}
	}

	output := newOutput(newUuid(), handle)
	outIdx, err := lt.tree.AddChild(rootIx, output, true)
	if err != nil {
		return err
	}

	name := lt.names.NextWorkspaceName(handle)
	if err := validate.Name(name); err != nil {
		slog.Warn("add_output: workspace name failed validation", "name", name, "error", err)
	}

	ws := newWorkspace(newUuid(), name, Rect{})
	wsIdx, err := lt.tree.AddChild(outIdx, ws, true)
	if err != nil {
		return err
	}

	root := newSplitContainer(newUuid(), Horizontal, handle, Rect{})
	rootContainerIdx, err := lt.tree.AddChild(wsIdx, root, true)
	if err != nil {
		return err
	}

	lt.activeIdx = rootContainerIdx
	lt.validateOrPanic()
	return nil
}

// RemoveView removes the View for handle. If no such view exists in the
// tree, background/bar slots on every output are checked and cleared.
func (lt *LayoutTree) RemoveView(handle Handle) (*Container, error) {
	if idx, ok := lt.tree.DescendantWithHandle(lt.tree.RootIx(), handle); ok {
		c, _ := lt.tree.Get(idx)
		removed, err := lt.RemoveViewOrContainer(c.ID())
		if err != nil {
			return nil, err
		}
		lt.validateOrPanic()
		return removed, nil
	}

	for _, outIdx := range lt.tree.ChildrenOf(lt.tree.RootIx()) {
		out, _ := lt.tree.Get(outIdx)
		if bg, ok := out.Background(); ok && bg == handle {
			out.SetBackground(0, false)
		}
		if bar, ok := out.Bar(); ok && bar == handle {
			out.SetBar(0, false)
		}
	}
	lt.validateOrPanic()
	return nil, &ViewNotFoundError{Handle: handle}
}

// RemoveViewOrContainer removes a View or Container(split) node,
// renumbers its former siblings, clears the workspace's fullscreen entry
// and the active pointer if they referenced it, and prunes the parent
// split container if removing this node left it empty.
func (lt *LayoutTree) RemoveViewOrContainer(id Uuid) (*Container, error) {
	c, idx, err := lt.lookup(id)
	if err != nil {
		return nil, err
	}

	if lt.tree.IsRootContainer(idx) {
		return nil, &InvalidOperationOnRootContainerError{ID: id}
	}
	if c.Kind() != KindView && c.Kind() != KindContainer {
		return nil, &UuidWrongTypeError{ID: id, Expected: []Kind{KindView, KindContainer}}
	}

	wsIdx, err := lt.tree.AncestorOfType(idx, KindWorkspace)
	if err != nil {
		return nil, err
	}
	parentIdx, err := lt.tree.AncestorOfType(idx, KindContainer)
	if err != nil {
		parentIdx = wsIdx
	}

	removed, err := lt.tree.Remove(idx)
	if err != nil {
		return nil, err
	}

	if ws, ok := lt.tree.Get(wsIdx); ok {
		ws.removeFullscreen(id)
	}

	if lt.activeIdx == idx {
		lt.activeIdx = -1
	}

	pruned := false
	if parentC, ok := lt.tree.Get(parentIdx); ok && parentC.Kind() == KindContainer {
		if lt.tree.CanRemoveEmptyParent(parentIdx) {
			pruned = true
			if _, err := lt.RemoveViewOrContainer(parentC.ID()); err != nil {
				return nil, err
			}
		}
	}
	if !pruned {
		lt.focusOnNextContainer(parentIdx)
	}

	lt.validateOrPanic()
	return removed, nil
}

// focusOnNextContainer chooses a new active container after a removal:
// it follows whatever's left of the active path down from parentIdx, or
// falls back to parentIdx itself if nothing is left to descend into.
func (lt *LayoutTree) focusOnNextContainer(parentIdx int) {
	cur := parentIdx
	for {
		c, ok := lt.tree.Get(cur)
		if !ok {
			return
		}
		if c.Kind() == KindWorkspace {
			children := lt.tree.ChildrenOf(cur)
			if len(children) == 0 {
				return
			}
			cur = children[0]
			continue
		}
		if c.Kind() != KindView && c.Kind() != KindContainer {
			return
		}

		next := -1
		for _, ch := range lt.tree.ChildrenOf(cur) {
			if w, ok := lt.tree.EdgeWeightBetween(cur, ch); ok && w.active {
				next = ch
				break
			}
		}
		if next == -1 {
			_ = lt.SetActiveNode(c.ID())
			return
		}
		cur = next
	}
}

// RemoveContainer removes node id and all of its descendants (depth-first).
func (lt *LayoutTree) RemoveContainer(id Uuid) error {
	_, idx, err := lt.lookup(id)
	if err != nil {
		return err
	}
	descendants := lt.tree.AllDescendantsOf(idx)
	ids := make([]Uuid, 0, len(descendants)+1)
	for i := len(descendants) - 1; i >= 0; i-- {
		if c, ok := lt.tree.Get(descendants[i]); ok {
			ids = append(ids, c.ID())
		}
	}
	ids = append(ids, id)

	for _, nid := range ids {
		c, nidx, err := lt.lookup(nid)
		if err != nil {
			// Already gone: removing one of its descendants emptied an
			// ancestor container, which CanRemoveEmptyParent pruned on
			// the way back up. Nothing left to do for nid.
			continue
		}
		switch c.Kind() {
		case KindView, KindContainer:
			if _, err := lt.RemoveViewOrContainer(nid); err != nil {
				return err
			}
		default:
			if _, err := lt.tree.Remove(nidx); err != nil {
				return err
			}
		}
	}
	lt.validateOrPanic()
	return nil
}

// RemoveWorkspace removes a Workspace and everything beneath it. Unlike
// RemoveContainer, the workspace-root split container is removed
// directly (bypassing the usual root-container protection) because the
// whole workspace is leaving.
func (lt *LayoutTree) RemoveWorkspace(id Uuid) error {
	wsC, wsIdx, err := lt.lookup(id)
	if err != nil {
		return err
	}
	if wsC.Kind() != KindWorkspace {
		return &UuidNotAssociatedWithError{Kind: KindWorkspace}
	}

	descendants := lt.tree.AllDescendantsOf(wsIdx)
	ids := make([]Uuid, 0, len(descendants)+1)
	for i := len(descendants) - 1; i >= 0; i-- {
		if c, ok := lt.tree.Get(descendants[i]); ok {
			ids = append(ids, c.ID())
		}
	}
	ids = append(ids, id)

	for _, nid := range ids {
		c, nidx, err := lt.lookup(nid)
		if err != nil {
			// Already gone: removing one of its descendants emptied an
			// ancestor container, which CanRemoveEmptyParent pruned on
			// the way back up. Nothing left to do for nid.
			continue
		}
		if lt.activeIdx == nidx {
			lt.activeIdx = -1
		}
		switch c.Kind() {
		case KindView:
			if _, err := lt.RemoveViewOrContainer(nid); err != nil {
				return err
			}
		case KindContainer:
			if lt.tree.IsRootContainer(nidx) {
				if _, err := lt.tree.Remove(nidx); err != nil {
					return err
				}
			} else if _, err := lt.RemoveViewOrContainer(nid); err != nil {
				return err
			}
		default:
			if _, err := lt.tree.Remove(nidx); err != nil {
				return err
			}
		}
	}
	lt.validateOrPanic()
	return nil
}

// RemoveActive removes the currently active View or Container(split).
func (lt *LayoutTree) RemoveActive() (*Container, error) {
	if lt.activeIdx == -1 {
		return nil, &NoActiveContainerError{}
	}
	c, _ := lt.tree.Get(lt.activeIdx)
	return lt.RemoveViewOrContainer(c.ID())
}

// ToggleActiveLayout wraps the active container in a new Container(split)
// with the given orientation, at the active container's old sibling
// position. Unlike AddContainer, the active pointer stays on the
// wrapped container rather than moving to the new wrapper: toggling a
// view's parent layout shouldn't steal focus away from that view.
func (lt *LayoutTree) ToggleActiveLayout(orientation Orientation) (*Container, error) {
	if lt.activeIdx == -1 {
		return nil, &NoActiveContainerError{}
	}
	activeC, _ := lt.tree.Get(lt.activeIdx)
	wrappedID := activeC.ID()

	wrapper, err := lt.AddContainer(orientation, wrappedID)
	if err != nil {
		return nil, err
	}

	if err := lt.SetActiveNode(wrappedID); err != nil {
		if _, ok := err.(*FocusBlockedByFullscreenError); !ok {
			return nil, err
		}
	}

	lt.validateOrPanic()
	return wrapper, nil
}

// ToggleCardinalTiling flips the orientation of id's enclosing
// Container(split) between Horizontal and Vertical. If id is itself a
// Container(split), its own orientation is flipped. Tabbed/Stacked
// containers are left untouched: cardinal tiling only concerns the two
// directional layouts.
func (lt *LayoutTree) ToggleCardinalTiling(id Uuid) error {
	c, idx, err := lt.lookup(id)
	if err != nil {
		return err
	}

	targetIdx := idx
	if c.Kind() != KindContainer {
		targetIdx, err = lt.tree.ParentOf(idx)
		if err != nil {
			return err
		}
	}
	target, _ := lt.tree.Get(targetIdx)

	switch target.Layout() {
	case Horizontal:
		target.SetLayout(Vertical)
	case Vertical:
		target.SetLayout(Horizontal)
	}

	lt.validateOrPanic()
	return nil
}

// FloatContainer marks an existing View or Container(split) as floating,
// removing it from its parent's tiling rule without detaching it from
// the tree.
func (lt *LayoutTree) FloatContainer(id Uuid) error {
	c, idx, err := lt.lookup(id)
	if err != nil {
		return err
	}
	if lt.tree.IsRootContainer(idx) {
		return &InvalidOperationOnRootContainerError{ID: id}
	}
	if c.Kind() != KindView && c.Kind() != KindContainer {
		return &UuidWrongTypeError{ID: id, Expected: []Kind{KindView, KindContainer}}
	}

	c.SetFloating(true)
	lt.validateOrPanic()
	return nil
}

// DestroyTree removes every descendant of Root and clears the active pointer.
func (lt *LayoutTree) DestroyTree() {
	ids := lt.tree.AllDescendantsOf(lt.tree.RootIx())
	for i := len(ids) - 1; i >= 0; i-- {
		_, _ = lt.tree.Remove(ids[i])
	}
	lt.activeIdx = -1
}

// Walk performs a depth-first traversal from Root, calling visit with each
// container and its depth (Root is depth 0). It never mutates the tree;
// it exists for callers outside this package (cmd/mosaic, diagnostics)
// that need to render the tree without reaching into InnerTree directly.
func (lt *LayoutTree) Walk(visit func(depth int, c *Container, active bool)) {
	var walk func(idx, depth int)
	walk = func(idx, depth int) {
		c, ok := lt.tree.Get(idx)
		if !ok {
			return
		}
		visit(depth, c, idx == lt.activeIdx)
		for _, childIdx := range lt.tree.ChildrenOf(idx) {
			walk(childIdx, depth+1)
		}
	}
	walk(lt.tree.RootIx(), 0)
}
