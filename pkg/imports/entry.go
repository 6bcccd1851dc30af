// Package imports models the import layout of the formatting engine: an ordered
// table of package entries and the synthetic markers placed between them.
package imports

import "fmt"

// EntryKind discriminates package entries.
type EntryKind int

// Entry kinds.
const (
	KindPackage EntryKind = iota
	KindAllOther
	KindAllOtherStatic
	KindBlankLine
)

// String returns the string representation of the kind.
func (k EntryKind) String() string {
	switch k {
	case KindPackage:
		return "package"
	case KindAllOther:
		return "all_other"
	case KindAllOtherStatic:
		return "all_other_static"
	case KindBlankLine:
		return "blank_line"
	default:
		return "unknown"
	}
}

// PackageEntry is one element of an import ordering.
// Name, WithSubpackages and Static are only meaningful for KindPackage.
type PackageEntry struct {
	Kind            EntryKind
	Name            string
	WithSubpackages bool
	Static          bool
}

// Synthetic entries.
var (
	AllOtherImports       = PackageEntry{Kind: KindAllOther}
	AllOtherStaticImports = PackageEntry{Kind: KindAllOtherStatic, Static: true}
	BlankLine             = PackageEntry{Kind: KindBlankLine}
)

// NewPackageEntry creates a named package entry.
func NewPackageEntry(static bool, name string, withSubpackages bool) PackageEntry {
	return PackageEntry{
		Kind:            KindPackage,
		Name:            name,
		WithSubpackages: withSubpackages,
		Static:          static,
	}
}

// IsSpecial reports whether the entry is a synthetic marker.
func (e PackageEntry) IsSpecial() bool {
	return e.Kind != KindPackage
}

func (e PackageEntry) String() string {
	switch e.Kind {
	case KindAllOther:
		return "<all other imports>"
	case KindAllOtherStatic:
		return "<all other static imports>"
	case KindBlankLine:
		return "<blank line>"
	}
	s := e.Name
	if e.WithSubpackages {
		s += ".*"
	}
	if e.Static {
		s = "static " + s
	}
	return s
}

// GoString keeps test failure output readable.
func (e PackageEntry) GoString() string {
	return fmt.Sprintf("imports.PackageEntry(%s)", e.String())
}
