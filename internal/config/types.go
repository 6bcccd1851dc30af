// Package config provides the project file types for stylebridge.
// This package is decoupled from CLI concerns; the CLI layers flags and
// environment variables on top of it in internal/cli/config.
package config

import (
	"sort"

	"github.com/leapstack-labs/stylebridge/pkg/importer"
)

// Values holds the values of one property. A property listed several times
// keeps every value, in order.
type Values []string

// Check is one check module of the project file.
type Check struct {
	Name       string            `koanf:"name"`
	Properties map[string]Values `koanf:"properties"`
	Children   []Check           `koanf:"children"`
}

// Module converts the check into an importer module tree.
// Property names are emitted in sorted order; repeated values keep their order.
func (c Check) Module() *importer.Module {
	m := &importer.Module{Name: c.Name}

	names := make([]string, 0, len(c.Properties))
	for name := range c.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, v := range c.Properties[name] {
			m.Properties = append(m.Properties, importer.Property{Name: name, Value: v})
		}
	}
	for _, child := range c.Children {
		m.Children = append(m.Children, child.Module())
	}
	return m
}

// ProjectConfig is the content of a stylebridge project file.
type ProjectConfig struct {
	Concurrency int     `koanf:"concurrency"`
	Checks      []Check `koanf:"checks"`
}

// Root wraps the checks in a synthetic root module.
func (p *ProjectConfig) Root() *importer.Module {
	root := &importer.Module{Name: RootModuleName}
	for _, c := range p.Checks {
		root.Children = append(root.Children, c.Module())
	}
	return root
}

// CheckNames returns the names of all checks, depth first.
func (p *ProjectConfig) CheckNames() []string {
	var names []string
	var walk func([]Check)
	walk = func(checks []Check) {
		for _, c := range checks {
			names = append(names, c.Name)
			walk(c.Children)
		}
	}
	walk(p.Checks)
	return names
}
