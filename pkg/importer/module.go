package importer

// Property is one name/value pair of a module. Names may repeat.
type Property struct {
	Name  string `koanf:"name" json:"name" yaml:"name"`
	Value string `koanf:"value" json:"value" yaml:"value"`
}

// Module is one node of a check configuration tree.
type Module struct {
	Name       string     `koanf:"name" json:"name" yaml:"name"`
	Properties []Property `koanf:"properties" json:"properties,omitempty" yaml:"properties,omitempty"`
	Children   []*Module  `koanf:"children" json:"children,omitempty" yaml:"children,omitempty"`
}

// NewModule creates a module from alternating name/value pairs.
// A trailing name without a value is dropped.
func NewModule(name string, pairs ...string) *Module {
	m := &Module{Name: name}
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Properties = append(m.Properties, Property{Name: pairs[i], Value: pairs[i+1]})
	}
	return m
}

// AddChild appends children and returns the module for chaining.
func (m *Module) AddChild(children ...*Module) *Module {
	m.Children = append(m.Children, children...)
	return m
}

// Value returns the last value of the named property.
func (m *Module) Value(name string) (string, bool) {
	for i := len(m.Properties) - 1; i >= 0; i-- {
		if m.Properties[i].Name == name {
			return m.Properties[i].Value, true
		}
	}
	return "", false
}

// Values returns every value of the named property in document order.
func (m *Module) Values(name string) []string {
	var out []string
	for _, p := range m.Properties {
		if p.Name == name {
			out = append(out, p.Value)
		}
	}
	return out
}

// Walk visits m and its descendants depth first in document order.
// Returning false from fn skips the children of that module.
func (m *Module) Walk(fn func(*Module) bool) {
	if m == nil {
		return
	}
	if !fn(m) {
		return
	}
	for _, child := range m.Children {
		child.Walk(fn)
	}
}
