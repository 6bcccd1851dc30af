package modules

import (
	"github.com/leapstack-labs/stylebridge/pkg/codestyle"
	"github.com/leapstack-labs/stylebridge/pkg/importer"
)

func init() {
	importer.Register(LeftCurly)
	importer.Register(NeedBraces)
}

// LeftCurly maps opening brace placement.
var LeftCurly = importer.Def{
	Name:        "LeftCurly",
	Group:       "blocks",
	Description: "Places opening braces for the class, method and statement token families.",
	ConfigKeys:  []string{"option", "tokens", "ignoreEnums"},
	New:         func() importer.ModuleImporter { return &leftCurly{style: codestyle.BraceEndOfLine} },
}

var braceOptions = map[string]codestyle.BraceStyle{
	"eol":  codestyle.BraceEndOfLine,
	"nl":   codestyle.BraceNextLine,
	"nlow": codestyle.BraceNextLineIfWrapped,
}

type braceFamily int

const (
	classBraces braceFamily = iota
	methodBraces
	otherBraces
)

var braceTokens = map[string]braceFamily{
	"CLASS_DEF":            classBraces,
	"INTERFACE_DEF":        classBraces,
	"ENUM_DEF":             classBraces,
	"ANNOTATION_DEF":       classBraces,
	"RECORD_DEF":           classBraces,
	"METHOD_DEF":           methodBraces,
	"CTOR_DEF":             methodBraces,
	"COMPACT_CTOR_DEF":     methodBraces,
	"ANNOTATION_FIELD_DEF": methodBraces,
	"LITERAL_IF":           otherBraces,
	"LITERAL_ELSE":         otherBraces,
	"LITERAL_FOR":          otherBraces,
	"LITERAL_WHILE":        otherBraces,
	"LITERAL_DO":           otherBraces,
	"LITERAL_TRY":          otherBraces,
	"LITERAL_CATCH":        otherBraces,
	"LITERAL_FINALLY":      otherBraces,
	"LITERAL_SWITCH":       otherBraces,
	"LITERAL_SYNCHRONIZED": otherBraces,
	"LITERAL_CASE":         otherBraces,
	"LITERAL_DEFAULT":      otherBraces,
	"STATIC_INIT":          otherBraces,
	"INSTANCE_INIT":        otherBraces,
	"LAMBDA":               otherBraces,
}

type leftCurly struct {
	style  codestyle.BraceStyle
	tokens []string
}

func (l *leftCurly) HandleAttribute(name, value string) error {
	switch name {
	case "option":
		style, ok := importer.ParseEnum(value, braceOptions, codestyle.BraceEndOfLine)
		l.style = style
		if !ok {
			return importer.InvalidValue(LeftCurly.Name, name, value)
		}
	case "tokens":
		l.tokens = append(l.tokens, value)
	case "ignoreEnums":
	default:
		return importer.UnknownAttribute(LeftCurly.Name, name)
	}
	return nil
}

func (l *leftCurly) Compile() codestyle.Change {
	families := make(map[braceFamily]bool)
	if len(l.tokens) == 0 {
		families[classBraces], families[methodBraces], families[otherBraces] = true, true, true
	}
	for tok := range importer.NewTokenSet(l.tokens...) {
		if f, ok := braceTokens[tok]; ok {
			families[f] = true
		}
	}
	style := l.style
	return func(s *codestyle.State) {
		if families[classBraces] {
			s.Java.ClassBraceStyle = style
		}
		if families[methodBraces] {
			s.Java.MethodBraceStyle = style
		}
		if families[otherBraces] {
			s.Java.BraceStyle = style
		}
	}
}

// NeedBraces maps brace forcing for control statements.
var NeedBraces = importer.Def{
	Name:        "NeedBraces",
	Group:       "blocks",
	Description: "Forces braces around if, for, while and do-while bodies.",
	ConfigKeys:  []string{"allowSingleLineStatement", "allowEmptyLoopBody", "tokens"},
	New:         func() importer.ModuleImporter { return &needBraces{} },
}

const defaultNeedBracesTokens = "LITERAL_DO,LITERAL_ELSE,LITERAL_FOR,LITERAL_IF,LITERAL_WHILE"

type needBraces struct {
	singleLine bool
	tokens     []string
}

func (n *needBraces) HandleAttribute(name, value string) error {
	switch name {
	case "allowSingleLineStatement":
		n.singleLine = importer.ParseBool(value)
	case "tokens":
		n.tokens = append(n.tokens, value)
	case "allowEmptyLoopBody":
	default:
		return importer.UnknownAttribute(NeedBraces.Name, name)
	}
	return nil
}

func (n *needBraces) Compile() codestyle.Change {
	force := codestyle.ForceBracesAlways
	if n.singleLine {
		force = codestyle.ForceBracesIfMultiline
	}
	tokens := importer.NewTokenSet(n.tokens...)
	if len(n.tokens) == 0 {
		tokens.Add(defaultNeedBracesTokens)
	}
	return func(s *codestyle.State) {
		if tokens.Has("LITERAL_IF") || tokens.Has("LITERAL_ELSE") {
			s.Java.IfBraceForce = force
		}
		if tokens.Has("LITERAL_FOR") {
			s.Java.ForBraceForce = force
		}
		if tokens.Has("LITERAL_WHILE") {
			s.Java.WhileBraceForce = force
		}
		if tokens.Has("LITERAL_DO") {
			s.Java.DoWhileBraceForce = force
		}
	}
}
