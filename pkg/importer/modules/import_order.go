package modules

import (
	"strings"

	"github.com/leapstack-labs/stylebridge/pkg/codestyle"
	"github.com/leapstack-labs/stylebridge/pkg/importer"
	"github.com/leapstack-labs/stylebridge/pkg/imports"
)

func init() {
	importer.Register(ImportOrder)
}

// ImportOrder maps the import order check to the import layout.
var ImportOrder = importer.Def{
	Name:        "ImportOrder",
	Group:       "imports",
	Description: "Lays out import groups and places static imports according to the option.",
	ConfigKeys:  append([]string{"groups", "option", "separated"}, importOrderPassive...),
	New:         func() importer.ModuleImporter { return &importOrder{} },
}

// importOrderPassive are check attributes without a layout counterpart.
var importOrderPassive = []string{
	"ordered",
	"caseSensitive",
	"sortStaticImportsAlphabetically",
	"useContainerOrderingForStatic",
	"separatedStaticGroups",
	"staticGroups",
	"tokens",
}

// WildcardGroup stands for all imports not matched by a named group.
const WildcardGroup = "*"

// StaticPosition is the placement policy for static imports.
type StaticPosition int

// Static positions. The zero value is the default.
const (
	StaticBottom StaticPosition = iota
	StaticTop
	StaticAbove
	StaticUnder
	StaticInflow
)

var staticPositionNames = map[string]StaticPosition{
	"bottom": StaticBottom,
	"top":    StaticTop,
	"above":  StaticAbove,
	"under":  StaticUnder,
	"inflow": StaticInflow,
}

// String returns the option value of the position.
func (p StaticPosition) String() string {
	switch p {
	case StaticTop:
		return "top"
	case StaticAbove:
		return "above"
	case StaticUnder:
		return "under"
	case StaticInflow:
		return "inflow"
	default:
		return "bottom"
	}
}

// ParseStaticPosition parses an option value case-insensitively.
// Unknown values yield StaticBottom and false.
func ParseStaticPosition(value string) (StaticPosition, bool) {
	return importer.ParseEnum(value, staticPositionNames, StaticBottom)
}

type standalone int

const (
	standaloneNone standalone = iota
	standaloneFirst
	standaloneLast
)

// placement describes how one static position shapes the blocks.
type placement struct {
	group      func(name string) []imports.PackageEntry
	wildcard   []imports.PackageEntry
	static     standalone
	separately bool
}

func plainGroup(name string) []imports.PackageEntry {
	return []imports.PackageEntry{imports.NewPackageEntry(false, name, true)}
}

var placements = map[StaticPosition]placement{
	StaticTop: {
		group:      plainGroup,
		wildcard:   []imports.PackageEntry{imports.AllOtherImports},
		static:     standaloneFirst,
		separately: true,
	},
	StaticBottom: {
		group:      plainGroup,
		wildcard:   []imports.PackageEntry{imports.AllOtherImports},
		static:     standaloneLast,
		separately: true,
	},
	StaticAbove: {
		group: func(name string) []imports.PackageEntry {
			return []imports.PackageEntry{
				imports.NewPackageEntry(true, name, true),
				imports.NewPackageEntry(false, name, true),
			}
		},
		wildcard:   []imports.PackageEntry{imports.AllOtherStaticImports, imports.AllOtherImports},
		separately: true,
	},
	StaticUnder: {
		group: func(name string) []imports.PackageEntry {
			return []imports.PackageEntry{
				imports.NewPackageEntry(false, name, true),
				imports.NewPackageEntry(true, name, true),
			}
		},
		wildcard:   []imports.PackageEntry{imports.AllOtherImports, imports.AllOtherStaticImports},
		separately: true,
	},
	StaticInflow: {
		group:    plainGroup,
		wildcard: []imports.PackageEntry{imports.AllOtherImports},
	},
}

// ImportOrderOptions are the settings of the import order check.
type ImportOrderOptions struct {
	Groups    []string
	Option    StaticPosition
	Separated bool
}

// CompileImportOrder builds the import layout for opts.
//
// Each configured group becomes a block; the wildcard group becomes the
// "all other imports" block and is appended when missing; repeats of the
// wildcard are dropped. Separated layouts
// put one blank line between blocks, never inside one.
func CompileImportOrder(opts ImportOrderOptions) imports.Layout {
	p, ok := placements[opts.Option]
	if !ok {
		p = placements[StaticBottom]
	}

	var blocks [][]imports.PackageEntry
	hasWildcard := false
	for _, group := range opts.Groups {
		group = strings.TrimSpace(group)
		switch group {
		case "":
			continue
		case WildcardGroup:
			if hasWildcard {
				continue
			}
			hasWildcard = true
			blocks = append(blocks, p.wildcard)
		default:
			blocks = append(blocks, p.group(group))
		}
	}
	if !hasWildcard {
		blocks = append(blocks, p.wildcard)
	}

	staticBlock := []imports.PackageEntry{imports.AllOtherStaticImports}
	switch p.static {
	case standaloneFirst:
		blocks = append([][]imports.PackageEntry{staticBlock}, blocks...)
	case standaloneLast:
		blocks = append(blocks, staticBlock)
	}

	var table imports.Table
	for i, block := range blocks {
		if i > 0 && opts.Separated {
			table.Add(imports.BlankLine)
		}
		table.Add(block...)
	}
	return imports.Layout{Table: table, StaticSeparately: p.separately}
}

type importOrder struct {
	opts ImportOrderOptions
}

func (o *importOrder) HandleAttribute(name, value string) error {
	switch name {
	case "groups":
		o.opts.Groups = importer.SplitList(value)
	case "option":
		pos, ok := ParseStaticPosition(value)
		o.opts.Option = pos
		if !ok {
			return importer.InvalidValue(ImportOrder.Name, name, value)
		}
	case "separated":
		o.opts.Separated = importer.ParseBool(value)
	default:
		for _, passive := range importOrderPassive {
			if name == passive {
				return nil
			}
		}
		return importer.UnknownAttribute(ImportOrder.Name, name)
	}
	return nil
}

func (o *importOrder) Compile() codestyle.Change {
	layout := CompileImportOrder(o.opts)
	return func(s *codestyle.State) {
		s.Imports.Layout = imports.Layout{
			Table:            imports.NewTable(layout.Table.Entries()...),
			StaticSeparately: layout.StaticSeparately,
		}
	}
}
