package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModuleValues(t *testing.T) {
	m := NewModule("WhitespaceAround", "tokens", "ASSIGN", "tokens", "PLUS", "dangling")

	assert.Len(t, m.Properties, 2)
	assert.Equal(t, []string{"ASSIGN", "PLUS"}, m.Values("tokens"))

	v, ok := m.Value("tokens")
	assert.True(t, ok)
	assert.Equal(t, "PLUS", v, "Value returns the last occurrence")

	_, ok = m.Value("dangling")
	assert.False(t, ok)
}

func TestModuleWalk(t *testing.T) {
	root := NewModule("Checker").AddChild(
		NewModule("LineLength"),
		NewModule("TreeWalker").AddChild(
			NewModule("ImportOrder"),
			NewModule("LeftCurly"),
		),
		NewModule("FileTabCharacter"),
	)

	var names []string
	root.Walk(func(m *Module) bool {
		names = append(names, m.Name)
		return true
	})
	assert.Equal(t, []string{"Checker", "LineLength", "TreeWalker", "ImportOrder", "LeftCurly", "FileTabCharacter"}, names)

	names = nil
	root.Walk(func(m *Module) bool {
		names = append(names, m.Name)
		return m.Name != "TreeWalker"
	})
	assert.Equal(t, []string{"Checker", "LineLength", "TreeWalker", "FileTabCharacter"}, names)

	var nilModule *Module
	assert.NotPanics(t, func() { nilModule.Walk(func(*Module) bool { return true }) })
}
