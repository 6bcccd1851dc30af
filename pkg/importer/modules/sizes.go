package modules

import (
	"github.com/leapstack-labs/stylebridge/pkg/codestyle"
	"github.com/leapstack-labs/stylebridge/pkg/importer"
)

func init() {
	importer.Register(LineLength)
	importer.Register(EmptyLineSeparator)
}

// LineLength maps the maximum line length to the right margin.
var LineLength = importer.Def{
	Name:        "LineLength",
	Group:       "sizes",
	Description: "Maps the maximum line length to the right margin.",
	ConfigKeys:  []string{"max", "ignorePattern", "fileExtensions"},
	New:         func() importer.ModuleImporter { return &lineLength{} },
}

type lineLength struct {
	max int
	set bool
}

func (l *lineLength) HandleAttribute(name, value string) error {
	switch name {
	case "max":
		n, ok := importer.ParseInt(value)
		if !ok || n <= 0 {
			return importer.InvalidValue(LineLength.Name, name, value)
		}
		l.max, l.set = n, true
	case "ignorePattern", "fileExtensions":
	default:
		return importer.UnknownAttribute(LineLength.Name, name)
	}
	return nil
}

func (l *lineLength) Compile() codestyle.Change {
	if !l.set {
		return nil
	}
	margin := l.max
	return func(s *codestyle.State) {
		s.Java.RightMargin = margin
	}
}

// EmptyLineSeparator maps required blank lines around members.
var EmptyLineSeparator = importer.Def{
	Name:        "EmptyLineSeparator",
	Group:       "sizes",
	Description: "Requires one blank line around the listed member kinds.",
	ConfigKeys: []string{
		"tokens",
		"allowNoEmptyLineBetweenFields",
		"allowMultipleEmptyLines",
		"allowMultipleEmptyLinesInsideClassMembers",
	},
	New: func() importer.ModuleImporter { return &emptyLineSeparator{} },
}

const defaultEmptyLineTokens = "VARIABLE_DEF,METHOD_DEF"

type emptyLineSeparator struct {
	tokens []string
}

func (e *emptyLineSeparator) HandleAttribute(name, value string) error {
	switch name {
	case "tokens":
		e.tokens = append(e.tokens, value)
	case "allowNoEmptyLineBetweenFields", "allowMultipleEmptyLines", "allowMultipleEmptyLinesInsideClassMembers":
	default:
		return importer.UnknownAttribute(EmptyLineSeparator.Name, name)
	}
	return nil
}

func (e *emptyLineSeparator) Compile() codestyle.Change {
	tokens := importer.NewTokenSet(e.tokens...)
	if len(e.tokens) == 0 {
		tokens.Add(defaultEmptyLineTokens)
	}
	return func(s *codestyle.State) {
		if tokens.Has("VARIABLE_DEF") {
			s.Java.BlankLinesAroundField = 1
		}
		if tokens.Has("METHOD_DEF") {
			s.Java.BlankLinesAroundMethod = 1
		}
	}
}
