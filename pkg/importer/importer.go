package importer

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/stylebridge/pkg/codestyle"
)

// Sentinel errors returned by HandleAttribute.
var (
	ErrUnknownAttribute = errors.New("unknown attribute")
	ErrInvalidValue     = errors.New("invalid value")
)

// ModuleImporter consumes the properties of one module and compiles them.
type ModuleImporter interface {
	// HandleAttribute records one property. Errors are warnings; the importer
	// must stay usable after returning one.
	HandleAttribute(name, value string) error

	// Compile builds the change for the recorded properties. It must not
	// touch shared state.
	Compile() codestyle.Change
}

// Def describes a registered importer.
type Def struct {
	Name        string
	Group       string
	Description string
	ConfigKeys  []string
	New         func() ModuleImporter
}

// Info is the serialisable view of a Def for listings.
type Info struct {
	Name        string   `json:"name" yaml:"name"`
	Group       string   `json:"group" yaml:"group"`
	Description string   `json:"description" yaml:"description"`
	ConfigKeys  []string `json:"config_keys,omitempty" yaml:"config_keys,omitempty"`
}

// Info returns the listing view of the definition.
func (d Def) Info() Info {
	return Info{
		Name:        d.Name,
		Group:       d.Group,
		Description: d.Description,
		ConfigKeys:  append([]string(nil), d.ConfigKeys...),
	}
}

// UnknownAttribute returns an error wrapping ErrUnknownAttribute.
func UnknownAttribute(module, name string) error {
	return fmt.Errorf("%s: %w %q", module, ErrUnknownAttribute, name)
}

// InvalidValue returns an error wrapping ErrInvalidValue.
func InvalidValue(module, name, value string) error {
	return fmt.Errorf("%s: %w %q for %s", module, ErrInvalidValue, value, name)
}
