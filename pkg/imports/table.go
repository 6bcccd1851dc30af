package imports

// Table is an ordered list of package entries. The order is the import order.
type Table struct {
	entries []PackageEntry
}

// NewTable creates a table holding a copy of entries.
func NewTable(entries ...PackageEntry) Table {
	return Table{entries: append([]PackageEntry(nil), entries...)}
}

// Add appends entries to the table.
func (t *Table) Add(entries ...PackageEntry) {
	t.entries = append(t.entries, entries...)
}

// Entries returns a copy of the entries.
func (t Table) Entries() []PackageEntry {
	return append([]PackageEntry(nil), t.entries...)
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t.entries)
}

// Contains reports whether an equal entry is present.
func (t Table) Contains(e PackageEntry) bool {
	for _, x := range t.entries {
		if x == e {
			return true
		}
	}
	return false
}

// Equal reports element-wise equality.
func (t Table) Equal(other Table) bool {
	if len(t.entries) != len(other.entries) {
		return false
	}
	for i := range t.entries {
		if t.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

// Layout is the import layout installed into the host settings.
type Layout struct {
	Table Table
	// StaticSeparately reports whether static imports form their own category.
	StaticSeparately bool
}

// Equal reports structural equality.
func (l Layout) Equal(other Layout) bool {
	return l.StaticSeparately == other.StaticSeparately && l.Table.Equal(other.Table)
}
