package layout

import "fmt"

// Validate runs every shape and bookkeeping invariant against t and its
// active pointer. It returns the first violation found, with enough
// context to diagnose it; it never mutates the tree.
//
// Validate is a pure, standalone, testable function.
// LayoutTree.validateOrPanic (tree.go) is the caller, run after
// mutations in every build (there is no debug-only switch), that turns
// a non-nil error into a panic: an invariant violation is a
// precondition failure, not a recoverable user error.
func Validate(lt *LayoutTree) error {
	t := lt.tree

	if err := validateConnections(t, t.RootIx()); err != nil {
		return err
	}
	if err := validateActivePointer(lt); err != nil {
		return err
	}
	if err := validateActivePath(t, t.RootIx()); err != nil {
		return err
	}
	if err := validateShapeAndOrdering(t); err != nil {
		return err
	}
	if err := validateWorkspaceNames(t); err != nil {
		return err
	}
	return nil
}

// validateConnections checks that every child's parent pointer resolves
// back to the expected parent.
func validateConnections(t *InnerTree, parent int) error {
	for _, childIdx := range t.ChildrenOf(parent) {
		gotParent, err := t.ParentOf(childIdx)
		if err != nil || gotParent != parent {
			return fmt.Errorf("child %d does not point back to parent %d", childIdx, parent)
		}
		if err := validateConnections(t, childIdx); err != nil {
			return err
		}
	}
	return nil
}

// validateActivePointer checks that, if set, the active pointer resolves
// to a live node of kind View or Container.
func validateActivePointer(lt *LayoutTree) error {
	if lt.activeIdx == -1 {
		return nil
	}
	c, ok := lt.tree.Get(lt.activeIdx)
	if !ok {
		return fmt.Errorf("active container %d does not resolve to a live node", lt.activeIdx)
	}
	if c.Kind() != KindView && c.Kind() != KindContainer {
		return fmt.Errorf("active container %s has kind %s, expected View or Container", c.ID(), c.Kind())
	}
	return nil
}

// validateActivePath checks that each node has at most one outgoing
// active edge, so following active edges from Root never branches. It
// does not check the kind of node at which that path ends.
func validateActivePath(t *InnerTree, idx int) error {
	activeCount := 0
	for _, childIdx := range t.ChildrenOf(idx) {
		if w, ok := t.EdgeWeightBetween(idx, childIdx); ok && w.active {
			activeCount++
		}
		if err := validateActivePath(t, childIdx); err != nil {
			return err
		}
	}
	if activeCount > 1 {
		return fmt.Errorf("node %d has %d active outgoing edges, expected at most 1", idx, activeCount)
	}
	return nil
}

// validateShapeAndOrdering checks kind sequencing (Root->Output->
// Workspace->Container(split)*->View), that every workspace has at
// least one child, that no non-root split container is empty, and that
// sibling order is dense at every level.
func validateShapeAndOrdering(t *InnerTree) error {
	if err := checkDenseOrder(t, t.RootIx()); err != nil {
		return err
	}
	for _, outIdx := range t.ChildrenOf(t.RootIx()) {
		out, _ := t.Get(outIdx)
		if out.Kind() != KindOutput {
			return fmt.Errorf("root child %d has kind %s, expected Output", outIdx, out.Kind())
		}
		if err := checkDenseOrder(t, outIdx); err != nil {
			return err
		}
		for _, wsIdx := range t.ChildrenOf(outIdx) {
			ws, _ := t.Get(wsIdx)
			if ws.Kind() != KindWorkspace {
				return fmt.Errorf("output child %d has kind %s, expected Workspace", wsIdx, ws.Kind())
			}
			if err := checkDenseOrder(t, wsIdx); err != nil {
				return err
			}
			wsChildren := t.ChildrenOf(wsIdx)
			if len(wsChildren) == 0 {
				return fmt.Errorf("workspace %s has no children", ws.ID())
			}
			for _, childIdx := range wsChildren {
				if err := validateSplitSubtree(t, childIdx); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func validateSplitSubtree(t *InnerTree, idx int) error {
	c, _ := t.Get(idx)
	if c.Kind() != KindContainer && c.Kind() != KindView {
		return fmt.Errorf("node %s under a workspace has kind %s, expected Container or View", c.ID(), c.Kind())
	}
	if c.Kind() == KindView {
		return nil
	}

	children := t.ChildrenOf(idx)
	if len(children) == 0 && !t.IsRootContainer(idx) {
		return fmt.Errorf("non-root split container %s is empty", c.ID())
	}
	if err := checkDenseOrder(t, idx); err != nil {
		return err
	}
	for _, childIdx := range children {
		if err := validateSplitSubtree(t, childIdx); err != nil {
			return err
		}
	}
	return nil
}

// checkDenseOrder checks that parent's children have order values
// exactly {1, ..., k}.
func checkDenseOrder(t *InnerTree, parent int) error {
	children := t.ChildrenOf(parent)
	for i, childIdx := range children {
		w, ok := t.EdgeWeightBetween(parent, childIdx)
		if !ok || w.order != uint32(i+1) {
			return fmt.Errorf("parent %d's children are not densely ordered", parent)
		}
	}
	return nil
}

// validateWorkspaceNames checks that workspace names are globally unique.
func validateWorkspaceNames(t *InnerTree) error {
	seen := make(map[string]bool)
	for _, outIdx := range t.ChildrenOf(t.RootIx()) {
		for _, wsIdx := range t.ChildrenOf(outIdx) {
			ws, _ := t.Get(wsIdx)
			if seen[ws.Name()] {
				return fmt.Errorf("duplicate workspace name %q", ws.Name())
			}
			seen[ws.Name()] = true
		}
	}
	return nil
}
