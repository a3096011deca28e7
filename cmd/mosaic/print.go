package main

import (
	"fmt"
	"strings"

	"github.com/sbwtw/way-cooler/internal/layout"
)

func printTree(lt *layout.LayoutTree) {
	lt.Walk(func(depth int, c *layout.Container, active bool) {
		marker := " "
		if active {
			marker = "*"
		}
		label := describe(c)
		fmt.Printf("%s%s%s\n", strings.Repeat("  ", depth), marker, label)
	})
}

func describe(c *layout.Container) string {
	switch c.Kind() {
	case layout.KindRoot:
		return "Root"
	case layout.KindOutput:
		return fmt.Sprintf("Output(handle=%d)", c.OutputHandle())
	case layout.KindWorkspace:
		return fmt.Sprintf("Workspace(%q)", c.Name())
	case layout.KindContainer:
		return fmt.Sprintf("Container(%s)", c.Layout())
	case layout.KindView:
		title := c.Title()
		if title == "" {
			title = "untitled"
		}
		return fmt.Sprintf("View(handle=%d, %q)", c.ViewHandle(), title)
	default:
		return "Unknown"
	}
}
