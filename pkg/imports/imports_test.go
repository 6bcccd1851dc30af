package imports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackageEntryString(t *testing.T) {
	tests := []struct {
		name  string
		entry PackageEntry
		want  string
	}{
		{"package with subpackages", NewPackageEntry(false, "java", true), "java.*"},
		{"static package", NewPackageEntry(true, "org.junit", true), "static org.junit.*"},
		{"exact package", NewPackageEntry(false, "a.b.c", false), "a.b.c"},
		{"all other", AllOtherImports, "<all other imports>"},
		{"all other static", AllOtherStaticImports, "<all other static imports>"},
		{"blank line", BlankLine, "<blank line>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.String())
		})
	}
}

func TestPackageEntrySpecial(t *testing.T) {
	assert.False(t, NewPackageEntry(false, "java", true).IsSpecial())
	assert.True(t, AllOtherImports.IsSpecial())
	assert.True(t, AllOtherStaticImports.IsSpecial())
	assert.True(t, BlankLine.IsSpecial())
	assert.NotEqual(t, NewPackageEntry(true, "java", true), NewPackageEntry(false, "java", true))
}

func TestTable(t *testing.T) {
	var table Table
	table.Add(NewPackageEntry(false, "java", true), BlankLine)
	table.Add(AllOtherImports)

	assert.Equal(t, 3, table.Len())
	assert.True(t, table.Contains(BlankLine))
	assert.False(t, table.Contains(AllOtherStaticImports))

	entries := table.Entries()
	entries[0] = AllOtherStaticImports
	assert.Equal(t, NewPackageEntry(false, "java", true), table.Entries()[0], "Entries must return a copy")

	same := NewTable(NewPackageEntry(false, "java", true), BlankLine, AllOtherImports)
	assert.True(t, table.Equal(same))

	reordered := NewTable(BlankLine, NewPackageEntry(false, "java", true), AllOtherImports)
	assert.False(t, table.Equal(reordered))
}

func TestLayoutEqual(t *testing.T) {
	a := Layout{Table: NewTable(AllOtherImports), StaticSeparately: true}
	b := Layout{Table: NewTable(AllOtherImports), StaticSeparately: false}
	assert.False(t, a.Equal(b))
	b.StaticSeparately = true
	assert.True(t, a.Equal(b))
}
