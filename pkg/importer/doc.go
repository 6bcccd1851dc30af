// Package importer translates linter check configurations into code-style settings.
//
// # Architecture
//
// A check configuration is a tree of modules. Each Module carries a name,
// string-valued properties and child modules. The import pass walks the tree
// and, for every module with a registered importer:
//
//  1. creates a fresh ModuleImporter from its Def
//  2. feeds it the module's properties via HandleAttribute
//  3. compiles it into a codestyle.Change
//
// All changes of one pass are installed with a single codestyle.Settings.Apply
// call, in document order.
//
// # Importer Registration
//
// Importers register themselves via init() functions:
//
//	import _ "github.com/leapstack-labs/stylebridge/pkg/importer/modules"
//
// # Defining an Importer
//
//	var LineLength = importer.Def{
//		Name:        "LineLength",
//		Group:       "sizes",
//		Description: "Maps the maximum line length to the right margin.",
//		ConfigKeys:  []string{"max"},
//		New:         func() importer.ModuleImporter { return &lineLength{} },
//	}
//
//	func init() {
//		importer.Register(LineLength)
//	}
//
// # Errors
//
// HandleAttribute reports problems with errors wrapping ErrUnknownAttribute
// or ErrInvalidValue. The pass logs them as warnings and carries on; nothing
// aborts compilation.
package importer
