package main

import (
	"flag"
	"fmt"

	"github.com/sbwtw/way-cooler/internal/layout"
	"github.com/sbwtw/way-cooler/internal/scenario"
)

func validateScenario(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	path := fs.String("scenario", "", "path to a scenario YAML file")
	_ = fs.Parse(args)

	if *path == "" {
		return fmt.Errorf("validate: -scenario is required")
	}

	s, err := scenario.Load(*path)
	if err != nil {
		return err
	}

	lt, err := scenario.Build(s, layout.Collaborators{})
	if err != nil {
		return err
	}

	if err := layout.Validate(lt); err != nil {
		return fmt.Errorf("invariant violated: %w", err)
	}

	fmt.Println("ok")
	return nil
}
