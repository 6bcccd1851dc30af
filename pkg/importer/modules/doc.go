// Package modules contains the importers for individual linter checks.
//
// Every file registers its importers with the importer registry from init().
// Import the package for its side effects:
//
//	import _ "github.com/leapstack-labs/stylebridge/pkg/importer/modules"
//
// The two rule-set compilers, CompileDeclarationOrder and CompileImportOrder,
// are pure functions and can be used without the registry.
package modules
