package layout

import "sort"

// edgeWeight is the (order, active) pair carried by a parent→child edge.
// order positions siblings densely starting at 1; active marks the
// single outgoing edge of a node that lies on the active path.
type edgeWeight struct {
	order  uint32
	active bool
}

// node is an arena slot. A removed node's slot is nilled rather than
// compacted, so indices already handed out stay stable: index
// invalidation is avoided because node slots never move.
type node struct {
	container *Container
	parent    int // -1 for the root
	edge      edgeWeight
	children  []int // ordered by edge.order ascending
}

// InnerTree is the raw graph store: node storage with stable indices,
// edge weights, parent/child lookup, descendant enumeration, path
// following, and handle→node / id→node indices.
type InnerTree struct {
	nodes    []*node
	byID     map[Uuid]int
	byHandle map[Handle]int
}

const rootIdx = 0

// newInnerTree creates a tree containing only the Root node.
func newInnerTree() *InnerTree {
	t := &InnerTree{
		byID:     make(map[Uuid]int),
		byHandle: make(map[Handle]int),
	}
	t.nodes = append(t.nodes, &node{container: newRoot(), parent: -1})
	return t
}

// RootIx returns the arena index of the Root node (always 0).
func (t *InnerTree) RootIx() int { return rootIdx }

// Get returns the container at idx, or false if the slot is empty
// (removed) or out of range.
func (t *InnerTree) Get(idx int) (*Container, bool) {
	if idx < 0 || idx >= len(t.nodes) || t.nodes[idx] == nil {
		return nil, false
	}
	return t.nodes[idx].container, true
}

func (t *InnerTree) mustNode(idx int) *node {
	if idx < 0 || idx >= len(t.nodes) || t.nodes[idx] == nil {
		return nil
	}
	return t.nodes[idx]
}

// indexHandle records idx under its container's handle, for Output and
// View kinds only (the only kinds that carry a windowing-system handle).
func (t *InnerTree) indexHandle(idx int) {
	n := t.nodes[idx]
	switch n.container.Kind() {
	case KindOutput:
		t.byHandle[n.container.OutputHandle()] = idx
	case KindView:
		t.byHandle[n.container.ViewHandle()] = idx
	}
}

func (t *InnerTree) unindexHandle(idx int) {
	n := t.nodes[idx]
	switch n.container.Kind() {
	case KindOutput:
		delete(t.byHandle, n.container.OutputHandle())
	case KindView:
		delete(t.byHandle, n.container.ViewHandle())
	}
}

// AddChild appends c as the last sibling of parent's children, assigning
// order = max_sibling_order + 1. If setActive, the new edge's active
// flag is set and all sibling edges of parent have theirs cleared.
func (t *InnerTree) AddChild(parent int, c *Container, setActive bool) (int, error) {
	p := t.mustNode(parent)
	if p == nil {
		return -1, ErrNodeNotFound{}
	}

	maxOrder := uint32(0)
	for _, childIdx := range p.children {
		if w := t.nodes[childIdx].edge.order; w > maxOrder {
			maxOrder = w
		}
	}

	idx := len(t.nodes)
	t.nodes = append(t.nodes, &node{
		container: c,
		parent:    parent,
		edge:      edgeWeight{order: maxOrder + 1, active: setActive},
	})
	p.children = append(p.children, idx)

	if setActive {
		for _, sibIdx := range p.children {
			if sibIdx != idx {
				t.nodes[sibIdx].edge.active = false
			}
		}
	}

	t.byID[c.ID()] = idx
	t.indexHandle(idx)
	return idx, nil
}

// Remove removes node idx and its incident edges. It does NOT recurse
// into descendants — the caller must enumerate and remove those first.
// Remaining siblings are renumbered so order stays dense. Returns the
// removed container.
func (t *InnerTree) Remove(idx int) (*Container, error) {
	n := t.mustNode(idx)
	if n == nil {
		return nil, ErrNodeNotFound{}
	}

	p := t.mustNode(n.parent)
	if p != nil {
		removedOrder := n.edge.order
		newChildren := make([]int, 0, len(p.children)-1)
		for _, childIdx := range p.children {
			if childIdx == idx {
				continue
			}
			if t.nodes[childIdx].edge.order > removedOrder {
				t.nodes[childIdx].edge.order--
			}
			newChildren = append(newChildren, childIdx)
		}
		p.children = newChildren
	}

	delete(t.byID, n.container.ID())
	t.unindexHandle(idx)
	c := n.container
	t.nodes[idx] = nil
	return c, nil
}

// MoveNode reparents node idx under newParent, appending it as the last
// sibling there.
func (t *InnerTree) MoveNode(idx, newParent int) error {
	n := t.mustNode(idx)
	if n == nil {
		return ErrNodeNotFound{}
	}
	np := t.mustNode(newParent)
	if np == nil {
		return ErrNodeNotFound{}
	}

	if old := t.mustNode(n.parent); old != nil {
		filtered := old.children[:0]
		for _, c := range old.children {
			if c != idx {
				filtered = append(filtered, c)
			}
		}
		old.children = filtered
		// Renumber the old parent's remaining children densely.
		t.renumber(old)
	}

	maxOrder := uint32(0)
	for _, childIdx := range np.children {
		if w := t.nodes[childIdx].edge.order; w > maxOrder {
			maxOrder = w
		}
	}
	n.parent = newParent
	n.edge.order = maxOrder + 1
	np.children = append(np.children, idx)
	return nil
}

// renumber reassigns dense 1..k order values to p's children, preserving
// their relative order.
func (t *InnerTree) renumber(p *node) {
	sort.Slice(p.children, func(i, j int) bool {
		return t.nodes[p.children[i]].edge.order < t.nodes[p.children[j]].edge.order
	})
	for i, childIdx := range p.children {
		t.nodes[childIdx].edge.order = uint32(i + 1)
	}
}

// SetChildPos moves node idx to order position pos (1-based) among its
// current siblings, renumbering the rest to keep density.
func (t *InnerTree) SetChildPos(idx int, pos uint32) error {
	n := t.mustNode(idx)
	if n == nil {
		return ErrNodeNotFound{}
	}
	p := t.mustNode(n.parent)
	if p == nil {
		return ErrNoParent{}
	}

	if pos < 1 {
		pos = 1
	}
	if pos > uint32(len(p.children)) {
		pos = uint32(len(p.children))
	}

	ordered := append([]int(nil), p.children...)
	sort.Slice(ordered, func(i, j int) bool {
		return t.nodes[ordered[i]].edge.order < t.nodes[ordered[j]].edge.order
	})

	withoutIdx := make([]int, 0, len(ordered))
	for _, c := range ordered {
		if c != idx {
			withoutIdx = append(withoutIdx, c)
		}
	}

	insertAt := int(pos) - 1
	if insertAt > len(withoutIdx) {
		insertAt = len(withoutIdx)
	}
	result := make([]int, 0, len(ordered))
	result = append(result, withoutIdx[:insertAt]...)
	result = append(result, idx)
	result = append(result, withoutIdx[insertAt:]...)

	for i, childIdx := range result {
		t.nodes[childIdx].edge.order = uint32(i + 1)
	}
	p.children = result
	return nil
}

// ParentOf returns the arena index of idx's parent.
func (t *InnerTree) ParentOf(idx int) (int, error) {
	n := t.mustNode(idx)
	if n == nil {
		return -1, ErrNodeNotFound{}
	}
	if n.parent == -1 {
		return -1, ErrNoParent{}
	}
	return n.parent, nil
}

// ChildrenOf returns idx's children ordered by edge.order ascending.
func (t *InnerTree) ChildrenOf(idx int) []int {
	n := t.mustNode(idx)
	if n == nil {
		return nil
	}
	ordered := append([]int(nil), n.children...)
	sort.Slice(ordered, func(i, j int) bool {
		return t.nodes[ordered[i]].edge.order < t.nodes[ordered[j]].edge.order
	})
	return ordered
}

// AncestorOfType walks up from idx (exclusive) until it finds a node of
// the given kind.
func (t *InnerTree) AncestorOfType(idx int, kind Kind) (int, error) {
	n := t.mustNode(idx)
	if n == nil {
		return -1, ErrNodeNotFound{}
	}
	cur := n.parent
	for cur != -1 {
		cn := t.nodes[cur]
		if cn == nil {
			return -1, ErrNodeNotFound{}
		}
		if cn.container.Kind() == kind {
			return cur, nil
		}
		cur = cn.parent
	}
	return -1, ErrNoParent{}
}

// DescendantOfType returns the first descendant of idx (depth-first,
// children in order) of the given kind.
func (t *InnerTree) DescendantOfType(idx int, kind Kind) (int, error) {
	n := t.mustNode(idx)
	if n == nil {
		return -1, ErrNodeNotFound{}
	}
	for _, childIdx := range t.ChildrenOf(idx) {
		cn := t.nodes[childIdx]
		if cn.container.Kind() == kind {
			return childIdx, nil
		}
		if found, err := t.DescendantOfType(childIdx, kind); err == nil {
			return found, nil
		}
	}
	return -1, ErrNodeNotFound{}
}

// AllDescendantsOf returns every descendant of idx, depth-first.
func (t *InnerTree) AllDescendantsOf(idx int) []int {
	var out []int
	for _, childIdx := range t.ChildrenOf(idx) {
		out = append(out, childIdx)
		out = append(out, t.AllDescendantsOf(childIdx)...)
	}
	return out
}

// LookupID resolves a Uuid to an arena index.
func (t *InnerTree) LookupID(id Uuid) (int, bool) {
	idx, ok := t.byID[id]
	return idx, ok
}

// LookupView resolves a view Handle to an arena index.
func (t *InnerTree) LookupView(handle Handle) (int, bool) {
	idx, ok := t.byHandle[handle]
	if !ok {
		return -1, false
	}
	if t.nodes[idx].container.Kind() != KindView {
		return -1, false
	}
	return idx, true
}

// LookupOutput resolves an output Handle to an arena index.
func (t *InnerTree) LookupOutput(handle Handle) (int, bool) {
	idx, ok := t.byHandle[handle]
	if !ok {
		return -1, false
	}
	if t.nodes[idx].container.Kind() != KindOutput {
		return -1, false
	}
	return idx, true
}

// DescendantWithHandle scans root's descendants for a node carrying handle.
func (t *InnerTree) DescendantWithHandle(root int, handle Handle) (int, bool) {
	idx, ok := t.byHandle[handle]
	if !ok {
		return -1, false
	}
	for cur := idx; cur != -1; {
		n := t.mustNode(cur)
		if n == nil {
			return -1, false
		}
		if cur == root {
			return idx, true
		}
		cur = n.parent
	}
	return -1, false
}

// EdgeWeightBetween returns the edge weight of child, provided parent is
// actually its current parent.
func (t *InnerTree) EdgeWeightBetween(parent, child int) (edgeWeight, bool) {
	n := t.mustNode(child)
	if n == nil || n.parent != parent {
		return edgeWeight{}, false
	}
	return n.edge, true
}

// IsRootContainer reports whether idx is a Container(split) whose parent
// is a Workspace — i.e. the one non-removable split container per workspace.
func (t *InnerTree) IsRootContainer(idx int) bool {
	n := t.mustNode(idx)
	if n == nil || n.container.Kind() != KindContainer {
		return false
	}
	p := t.mustNode(n.parent)
	return p != nil && p.container.Kind() == KindWorkspace
}

// FollowPathUntil descends from start following active=true edges until
// a node of the requested kind is reached. Fails if the path dead-ends
// (no active child) before reaching that kind.
func (t *InnerTree) FollowPathUntil(start int, kind Kind) (int, bool) {
	cur := start
	for {
		n := t.mustNode(cur)
		if n == nil {
			return -1, false
		}
		if n.container.Kind() == kind {
			return cur, true
		}
		next := -1
		for _, childIdx := range n.children {
			if t.nodes[childIdx].edge.active {
				next = childIdx
				break
			}
		}
		if next == -1 {
			return -1, false
		}
		cur = next
	}
}

// CanRemoveEmptyParent reports whether idx is a childless Container(split)
// whose parent is not a Workspace (i.e. it is safe to prune).
func (t *InnerTree) CanRemoveEmptyParent(idx int) bool {
	n := t.mustNode(idx)
	if n == nil || n.container.Kind() != KindContainer || len(n.children) != 0 {
		return false
	}
	p := t.mustNode(n.parent)
	return p != nil && p.container.Kind() != KindWorkspace
}
