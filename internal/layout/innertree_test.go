package layout

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInnerTreeHasOnlyRoot(t *testing.T) {
	tr := newInnerTree()
	assert.Equal(t, rootIdx, tr.RootIx())
	c, ok := tr.Get(tr.RootIx())
	require.True(t, ok)
	assert.Equal(t, KindRoot, c.Kind())
	assert.Empty(t, tr.ChildrenOf(tr.RootIx()))
}

func TestAddChildAssignsDenseOrder(t *testing.T) {
	tr := newInnerTree()
	a, err := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 1), false)
	require.NoError(t, err)
	b, err := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 2), false)
	require.NoError(t, err)

	wa, ok := tr.EdgeWeightBetween(tr.RootIx(), a)
	require.True(t, ok)
	assert.Equal(t, uint32(1), wa.order)

	wb, ok := tr.EdgeWeightBetween(tr.RootIx(), b)
	require.True(t, ok)
	assert.Equal(t, uint32(2), wb.order)
}

func TestAddChildSetActiveClearsSiblings(t *testing.T) {
	tr := newInnerTree()
	a, _ := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 1), true)
	b, _ := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 2), true)

	wa, _ := tr.EdgeWeightBetween(tr.RootIx(), a)
	wb, _ := tr.EdgeWeightBetween(tr.RootIx(), b)
	assert.False(t, wa.active)
	assert.True(t, wb.active)
}

func TestRemoveRenumbersSiblings(t *testing.T) {
	tr := newInnerTree()
	a, _ := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 1), false)
	b, _ := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 2), false)
	c, _ := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 3), false)

	_, err := tr.Remove(b)
	require.NoError(t, err)

	wa, _ := tr.EdgeWeightBetween(tr.RootIx(), a)
	wc, _ := tr.EdgeWeightBetween(tr.RootIx(), c)
	assert.Equal(t, uint32(1), wa.order)
	assert.Equal(t, uint32(2), wc.order)

	_, ok := tr.Get(b)
	assert.False(t, ok)
}

func TestRemoveUnknownNode(t *testing.T) {
	tr := newInnerTree()
	_, err := tr.Remove(99)
	assert.Error(t, err)
}

func TestMoveNodeRenumbersOldParent(t *testing.T) {
	tr := newInnerTree()
	p1, _ := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 1), false)
	p2, _ := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 2), false)
	a, _ := tr.AddChild(p1, newWorkspace(uuid.New(), "a", Rect{}), false)
	b, _ := tr.AddChild(p1, newWorkspace(uuid.New(), "b", Rect{}), false)

	require.NoError(t, tr.MoveNode(a, p2))

	assert.Equal(t, []int{b}, tr.ChildrenOf(p1))
	assert.Equal(t, []int{a}, tr.ChildrenOf(p2))

	wb, _ := tr.EdgeWeightBetween(p1, b)
	assert.Equal(t, uint32(1), wb.order)
}

func TestSetChildPosReorders(t *testing.T) {
	tr := newInnerTree()
	a, _ := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 1), false)
	b, _ := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 2), false)
	c, _ := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 3), false)

	require.NoError(t, tr.SetChildPos(c, 1))
	assert.Equal(t, []int{c, a, b}, tr.ChildrenOf(tr.RootIx()))
}

func TestParentOfRootFails(t *testing.T) {
	tr := newInnerTree()
	_, err := tr.ParentOf(tr.RootIx())
	assert.Error(t, err)
}

func TestAncestorOfType(t *testing.T) {
	tr := newInnerTree()
	out, _ := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 1), false)
	ws, _ := tr.AddChild(out, newWorkspace(uuid.New(), "1", Rect{}), false)
	root, _ := tr.AddChild(ws, newSplitContainer(uuid.New(), Horizontal, 1, Rect{}), false)
	view, _ := tr.AddChild(root, newView(uuid.New(), 1, Rect{}, "", nil), false)

	gotWs, err := tr.AncestorOfType(view, KindWorkspace)
	require.NoError(t, err)
	assert.Equal(t, ws, gotWs)

	gotOut, err := tr.AncestorOfType(view, KindOutput)
	require.NoError(t, err)
	assert.Equal(t, out, gotOut)

	_, err = tr.AncestorOfType(view, KindView)
	assert.Error(t, err)
}

func TestDescendantOfType(t *testing.T) {
	tr := newInnerTree()
	out, _ := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 1), false)
	ws, _ := tr.AddChild(out, newWorkspace(uuid.New(), "1", Rect{}), false)

	_, err := tr.DescendantOfType(tr.RootIx(), KindWorkspace)
	require.NoError(t, err)

	found, err := tr.DescendantOfType(out, KindWorkspace)
	require.NoError(t, err)
	assert.Equal(t, ws, found)
}

func TestAllDescendantsOf(t *testing.T) {
	tr := newInnerTree()
	out, _ := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 1), false)
	ws, _ := tr.AddChild(out, newWorkspace(uuid.New(), "1", Rect{}), false)

	descendants := tr.AllDescendantsOf(tr.RootIx())
	assert.ElementsMatch(t, []int{out, ws}, descendants)
}

func TestLookupViewAndOutput(t *testing.T) {
	tr := newInnerTree()
	out, _ := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 5), false)
	ws, _ := tr.AddChild(out, newWorkspace(uuid.New(), "1", Rect{}), false)
	root, _ := tr.AddChild(ws, newSplitContainer(uuid.New(), Horizontal, 5, Rect{}), false)
	view, _ := tr.AddChild(root, newView(uuid.New(), 42, Rect{}, "", nil), false)

	gotView, ok := tr.LookupView(42)
	assert.True(t, ok)
	assert.Equal(t, view, gotView)

	gotOut, ok := tr.LookupOutput(5)
	assert.True(t, ok)
	assert.Equal(t, out, gotOut)

	_, ok = tr.LookupView(5)
	assert.False(t, ok, "handle 5 belongs to an Output, not a View")
}

func TestDescendantWithHandle(t *testing.T) {
	tr := newInnerTree()
	out, _ := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 1), false)
	ws, _ := tr.AddChild(out, newWorkspace(uuid.New(), "1", Rect{}), false)
	root, _ := tr.AddChild(ws, newSplitContainer(uuid.New(), Horizontal, 1, Rect{}), false)
	view, _ := tr.AddChild(root, newView(uuid.New(), 42, Rect{}, "", nil), false)

	found, ok := tr.DescendantWithHandle(tr.RootIx(), 42)
	assert.True(t, ok)
	assert.Equal(t, view, found)

	_, ok = tr.DescendantWithHandle(out, 999)
	assert.False(t, ok)
}

func TestIsRootContainer(t *testing.T) {
	tr := newInnerTree()
	out, _ := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 1), false)
	ws, _ := tr.AddChild(out, newWorkspace(uuid.New(), "1", Rect{}), false)
	root, _ := tr.AddChild(ws, newSplitContainer(uuid.New(), Horizontal, 1, Rect{}), false)
	child, _ := tr.AddChild(root, newSplitContainer(uuid.New(), Vertical, 1, Rect{}), false)

	assert.True(t, tr.IsRootContainer(root))
	assert.False(t, tr.IsRootContainer(child))
	assert.False(t, tr.IsRootContainer(ws))
}

func TestCanRemoveEmptyParent(t *testing.T) {
	tr := newInnerTree()
	out, _ := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 1), false)
	ws, _ := tr.AddChild(out, newWorkspace(uuid.New(), "1", Rect{}), false)
	root, _ := tr.AddChild(ws, newSplitContainer(uuid.New(), Horizontal, 1, Rect{}), false)
	child, _ := tr.AddChild(root, newSplitContainer(uuid.New(), Vertical, 1, Rect{}), false)

	assert.True(t, tr.CanRemoveEmptyParent(child))
	assert.False(t, tr.CanRemoveEmptyParent(root), "workspace-root containers are never pruned")
}

func TestFollowPathUntil(t *testing.T) {
	tr := newInnerTree()
	out, _ := tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 1), true)
	ws, _ := tr.AddChild(out, newWorkspace(uuid.New(), "1", Rect{}), true)
	root, _ := tr.AddChild(ws, newSplitContainer(uuid.New(), Horizontal, 1, Rect{}), true)

	found, ok := tr.FollowPathUntil(tr.RootIx(), KindContainer)
	require.True(t, ok)
	assert.Equal(t, root, found)
}

func TestFollowPathUntilDeadEnd(t *testing.T) {
	tr := newInnerTree()
	tr.AddChild(tr.RootIx(), newOutput(uuid.New(), 1), false)

	_, ok := tr.FollowPathUntil(tr.RootIx(), KindContainer)
	assert.False(t, ok)
}
