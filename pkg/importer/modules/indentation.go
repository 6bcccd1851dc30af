package modules

import (
	"github.com/leapstack-labs/stylebridge/pkg/codestyle"
	"github.com/leapstack-labs/stylebridge/pkg/importer"
)

func init() {
	importer.Register(Indentation)
}

// Indentation maps indent sizes for Java.
var Indentation = importer.Def{
	Name:        "Indentation",
	Group:       "indentation",
	Description: "Maps the basic offset, line wrapping indentation and case indent.",
	ConfigKeys: []string{
		"basicOffset",
		"lineWrappingIndentation",
		"caseIndent",
		"braceAdjustment",
		"throwsIndent",
		"arrayInitIndent",
		"forceStrictCondition",
	},
	New: func() importer.ModuleImporter { return &indentation{} },
}

type indentation struct {
	basicOffset  *int
	lineWrapping *int
	caseIndent   *int
}

func (in *indentation) HandleAttribute(name, value string) error {
	var target **int
	switch name {
	case "basicOffset":
		target = &in.basicOffset
	case "lineWrappingIndentation":
		target = &in.lineWrapping
	case "caseIndent":
		target = &in.caseIndent
	case "braceAdjustment", "throwsIndent", "arrayInitIndent", "forceStrictCondition":
		return nil
	default:
		return importer.UnknownAttribute(Indentation.Name, name)
	}
	n, ok := importer.ParseInt(value)
	if !ok || n < 0 {
		return importer.InvalidValue(Indentation.Name, name, value)
	}
	*target = &n
	return nil
}

func (in *indentation) Compile() codestyle.Change {
	basic, wrapping, caseIndent := in.basicOffset, in.lineWrapping, in.caseIndent
	return func(s *codestyle.State) {
		s.SetIndent(codestyle.LanguageJava, func(o *codestyle.IndentOptions) {
			if basic != nil {
				o.IndentSize = *basic
			}
			if wrapping != nil {
				o.ContinuationIndentSize = *wrapping
			}
		})
		if caseIndent != nil {
			s.Java.IndentCaseFromSwitch = *caseIndent > 0
		}
	}
}
