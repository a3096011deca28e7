package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbwtw/way-cooler/internal/layout"
	"github.com/sbwtw/way-cooler/internal/scenario"
)

const sampleYAML = `
outputs:
  - handle: 1
    views:
      - handle: 100
        title: editor
      - handle: 200
  - handle: 2
    views: []
`

func writeScenario(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadParsesOutputsAndViews(t *testing.T) {
	path := writeScenario(t, sampleYAML)

	s, err := scenario.Load(path)
	require.NoError(t, err)
	require.Len(t, s.Outputs, 2)

	assert.Equal(t, uint64(1), s.Outputs[0].Handle)
	require.Len(t, s.Outputs[0].Views, 2)
	assert.Equal(t, "editor", s.Outputs[0].Views[0].Title)
	assert.Equal(t, uint64(200), s.Outputs[0].Views[1].Handle)

	assert.Equal(t, uint64(2), s.Outputs[1].Handle)
	assert.Empty(t, s.Outputs[1].Views)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuildReplaysMutations(t *testing.T) {
	path := writeScenario(t, sampleYAML)
	s, err := scenario.Load(path)
	require.NoError(t, err)

	lt, err := scenario.Build(s, layout.Collaborators{})
	require.NoError(t, err)

	require.NotNil(t, lt.GetActiveContainer())

	title, ok := lookupViewTitle(lt, 100)
	require.True(t, ok)
	assert.Equal(t, "editor", title)
}

// lookupViewTitle resolves a view by handle via SetActiveView, returning
// its title; it exists purely to avoid reaching into LayoutTree internals
// from an external test package.
func lookupViewTitle(lt *layout.LayoutTree, handle uint64) (string, bool) {
	if err := lt.SetActiveView(layout.Handle(handle)); err != nil {
		return "", false
	}
	c := lt.GetActiveContainer()
	if c == nil {
		return "", false
	}
	return c.Title(), true
}
