// Package scenario loads a declarative YAML description of a layout
// tree — outputs and the views on each output's default workspace —
// and replays it as a sequence
// of mutations against a fresh internal/layout.LayoutTree. It exists so
// cmd/mosaic and tests can express a starting tree as a short fixture
// file instead of a page of Go calls.
package scenario

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/sbwtw/way-cooler/internal/layout"
)

// defaults seeds an empty scenario before the file is loaded, so a
// scenario file that omits "outputs" entirely still unmarshals into a
// Scenario with a nil (not missing) slice rather than failing.
var defaults = map[string]interface{}{
	"outputs": []interface{}{},
}

// View describes a single view to insert into an output's workspace.
type View struct {
	Handle uint64 `koanf:"handle"`
	Title  string `koanf:"title"`
}

// Output describes one output and the views to add to it, in order.
type Output struct {
	Handle uint64 `koanf:"handle"`
	Views  []View `koanf:"views"`
}

// Scenario is the top-level shape of a scenario YAML file.
type Scenario struct {
	Outputs []Output `koanf:"outputs"`
}

// Load reads and parses a scenario file at path.
func Load(path string) (*Scenario, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load scenario defaults: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}

	var s Scenario
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("unmarshal scenario %s: %w", path, err)
	}
	return &s, nil
}

// Build replays s against a new LayoutTree constructed with the given
// collaborators, in output/view order. The last container added ends up
// active (the last output's last view, or that output's root container
// if it has no views), matching repeated calls to AddOutput/AddView.
func Build(s *Scenario, collaborators layout.Collaborators) (*layout.LayoutTree, error) {
	lt := layout.New(collaborators)

	for _, o := range s.Outputs {
		if err := lt.AddOutput(layout.Handle(o.Handle)); err != nil {
			return nil, fmt.Errorf("add output %d: %w", o.Handle, err)
		}
		for _, v := range o.Views {
			c, err := lt.AddView(layout.Handle(v.Handle))
			if err != nil {
				return nil, fmt.Errorf("add view %d to output %d: %w", v.Handle, o.Handle, err)
			}
			if v.Title != "" {
				c.SetTitle(v.Title)
			}
		}
	}

	return lt, nil
}
