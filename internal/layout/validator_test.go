package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedNameAllocator string

func (n fixedNameAllocator) NextWorkspaceName(Handle) string { return string(n) }

func TestValidateEmptyTreeOK(t *testing.T) {
	lt := New(Collaborators{})
	assert.NoError(t, Validate(lt))
}

func TestValidateAfterAddOutputOK(t *testing.T) {
	lt := New(Collaborators{})
	require.NoError(t, lt.AddOutput(1))
	assert.NoError(t, Validate(lt))
}

func TestValidateAfterAddViewOK(t *testing.T) {
	lt := New(Collaborators{})
	require.NoError(t, lt.AddOutput(1))
	_, err := lt.AddView(100)
	require.NoError(t, err)
	assert.NoError(t, Validate(lt))
}

func TestValidateDetectsDuplicateWorkspaceName(t *testing.T) {
	lt := New(Collaborators{Names: fixedNameAllocator("dup")})
	require.NoError(t, lt.AddOutput(1))

	// A second output forced to collide with the first's workspace name
	// trips the uniqueness check inside validateOrPanic, which panics
	// rather than returning an error.
	assert.Panics(t, func() {
		_ = lt.AddOutput(2)
	})
}

func TestValidateWorkspaceWithOnlyEmptyRootContainerIsValid(t *testing.T) {
	lt := New(Collaborators{})
	require.NoError(t, lt.AddOutput(1))
	// A workspace just needs a child of some kind; an empty root
	// Container(split) still counts, since it is the one split container
	// CanRemoveEmptyParent never prunes.
	assert.NoError(t, Validate(lt))
}

func TestCheckDenseOrderOK(t *testing.T) {
	tr := newInnerTree()
	out, _ := tr.AddChild(tr.RootIx(), newOutput(newUuid(), 1), false)
	tr.AddChild(out, newWorkspace(newUuid(), "1", Rect{}), false)
	tr.AddChild(out, newWorkspace(newUuid(), "2", Rect{}), false)

	assert.NoError(t, checkDenseOrder(tr, out))
}

func TestValidateWorkspaceNamesDetectsDuplicate(t *testing.T) {
	tr := newInnerTree()
	out, _ := tr.AddChild(tr.RootIx(), newOutput(newUuid(), 1), false)
	tr.AddChild(out, newWorkspace(newUuid(), "same", Rect{}), false)
	tr.AddChild(out, newWorkspace(newUuid(), "same", Rect{}), false)

	assert.Error(t, validateWorkspaceNames(tr))
}

func TestValidateActivePointerRejectsStaleIndex(t *testing.T) {
	lt := New(Collaborators{})
	require.NoError(t, lt.AddOutput(1))
	lt.activeIdx = 9999
	assert.Error(t, Validate(lt))
}
