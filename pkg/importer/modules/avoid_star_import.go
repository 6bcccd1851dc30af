package modules

import (
	"github.com/leapstack-labs/stylebridge/pkg/codestyle"
	"github.com/leapstack-labs/stylebridge/pkg/importer"
	"github.com/leapstack-labs/stylebridge/pkg/imports"
)

func init() {
	importer.Register(AvoidStarImport)
}

// AvoidStarImport maps star import avoidance to the on-demand thresholds.
var AvoidStarImport = importer.Def{
	Name:        "AvoidStarImport",
	Group:       "imports",
	Description: "Disables on-demand imports unless allowed; excluded packages stay on demand.",
	ConfigKeys:  []string{"allowClassImports", "allowStaticMemberImports", "excludes"},
	New:         func() importer.ModuleImporter { return &avoidStarImport{} },
}

// Thresholds written by AvoidStarImport.
const (
	OnDemandAllowed   = 1
	OnDemandForbidden = 999
)

type avoidStarImport struct {
	allowClass  bool
	allowStatic bool
	excludes    []string
}

func (a *avoidStarImport) HandleAttribute(name, value string) error {
	switch name {
	case "allowClassImports":
		a.allowClass = importer.ParseBool(value)
	case "allowStaticMemberImports":
		a.allowStatic = importer.ParseBool(value)
	case "excludes":
		a.excludes = append(a.excludes, importer.SplitList(value)...)
	default:
		return importer.UnknownAttribute(AvoidStarImport.Name, name)
	}
	return nil
}

func threshold(allowed bool) int {
	if allowed {
		return OnDemandAllowed
	}
	return OnDemandForbidden
}

func (a *avoidStarImport) Compile() codestyle.Change {
	classCount := threshold(a.allowClass)
	namesCount := threshold(a.allowStatic)
	entries := make([]imports.PackageEntry, 0, len(a.excludes))
	for _, pkg := range a.excludes {
		entries = append(entries, imports.NewPackageEntry(false, pkg, false))
	}
	return func(s *codestyle.State) {
		s.Imports.ClassCountToUseImportOnDemand = classCount
		s.Imports.NamesCountToUseImportOnDemand = namesCount
		s.Imports.PackagesToUseImportOnDemand = imports.NewTable(entries...)
	}
}
