package layout

// ContainerInDir finds the neighbor of id in direction dir, climbing the
// tree through incompatible orientations (or Tabbed/Stacked parents)
// until a compatible split is found or the workspace root is passed.
//
// It returns (ancestorID, neighborID): ancestorID is the ancestor of id
// for which the move was actually resolved (may be id itself), and
// neighborID is the container found in that direction.
func (lt *LayoutTree) ContainerInDir(id Uuid, dir Direction) (Uuid, Uuid, error) {
	idx, ok := lt.tree.LookupID(id)
	if !ok {
		return Uuid{}, Uuid{}, &NodeNotFoundError{ID: id}
	}
	c, _ := lt.tree.Get(idx)
	if c.Kind() != KindView && c.Kind() != KindContainer {
		return Uuid{}, Uuid{}, &UuidWrongTypeError{ID: id, Expected: []Kind{KindView, KindContainer}}
	}

	parentIdx, err := lt.tree.ParentOf(idx)
	if err != nil {
		return Uuid{}, Uuid{}, &NodeNotFoundError{ID: id}
	}
	parent, _ := lt.tree.Get(parentIdx)
	if parent.Kind() != KindContainer {
		return Uuid{}, Uuid{}, &UuidWrongTypeError{ID: id, Expected: []Kind{KindContainer}}
	}

	if orientationCompatible(parent.Layout(), dir) {
		siblings := lt.tree.ChildrenOf(parentIdx)
		curPos := -1
		for i, s := range siblings {
			if s == idx {
				curPos = i
				break
			}
		}
		target := curPos
		switch dir {
		case Right, Down:
			target++
		case Left, Up:
			target--
		}
		if target >= 0 && target < len(siblings) {
			neighbor, _ := lt.tree.Get(siblings[target])
			return id, neighbor.ID(), nil
		}
	}

	return lt.ContainerInDir(parent.ID(), dir)
}

func orientationCompatible(o Orientation, dir Direction) bool {
	switch o {
	case Horizontal:
		return dir == Left || dir == Right
	case Vertical:
		return dir == Up || dir == Down
	default: // Tabbed, Stacked
		return false
	}
}
