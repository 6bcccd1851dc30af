package modules

import (
	"strings"

	"github.com/leapstack-labs/stylebridge/pkg/codestyle"
	"github.com/leapstack-labs/stylebridge/pkg/importer"
)

func init() {
	importer.Register(FileTabCharacter)
	importer.Register(WhitespaceAfter)
	importer.Register(WhitespaceAround)
	importer.Register(NoWhitespaceBefore)
}

// FileTabCharacter disables tab indentation.
var FileTabCharacter = importer.Def{
	Name:        "FileTabCharacter",
	Group:       "whitespace",
	Description: "Turns off tab characters for the languages matching the file extensions.",
	ConfigKeys:  []string{"eachLine", "fileExtensions"},
	New:         func() importer.ModuleImporter { return &fileTabCharacter{} },
}

var extensionLanguages = map[string]codestyle.Language{
	"java": codestyle.LanguageJava,
	"xml":  codestyle.LanguageXML,
}

type fileTabCharacter struct {
	extensions []string
	explicit   bool
}

func (f *fileTabCharacter) HandleAttribute(name, value string) error {
	switch name {
	case "fileExtensions":
		f.extensions = importer.SplitList(value)
		f.explicit = true
	case "eachLine":
	default:
		return importer.UnknownAttribute(FileTabCharacter.Name, name)
	}
	return nil
}

func (f *fileTabCharacter) Compile() codestyle.Change {
	langs := codestyle.Languages
	if f.explicit && len(f.extensions) > 0 {
		langs = nil
		for _, ext := range f.extensions {
			if lang, ok := extensionLanguages[strings.ToLower(strings.TrimPrefix(ext, "."))]; ok {
				langs = append(langs, lang)
			}
		}
	}
	return func(s *codestyle.State) {
		for _, lang := range langs {
			s.SetIndent(lang, func(o *codestyle.IndentOptions) { o.UseTabCharacter = false })
		}
	}
}

// WhitespaceAfter maps required spaces after separators.
var WhitespaceAfter = importer.Def{
	Name:        "WhitespaceAfter",
	Group:       "whitespace",
	Description: "Requires a space after the listed separators.",
	ConfigKeys:  []string{"tokens"},
	New:         func() importer.ModuleImporter { return &whitespaceAfter{} },
}

type whitespaceAfter struct {
	tokens []string
}

func (w *whitespaceAfter) HandleAttribute(name, value string) error {
	if name != "tokens" {
		return importer.UnknownAttribute(WhitespaceAfter.Name, name)
	}
	w.tokens = append(w.tokens, value)
	return nil
}

func (w *whitespaceAfter) Compile() codestyle.Change {
	tokens := importer.NewTokenSet(w.tokens...)
	if len(w.tokens) == 0 {
		tokens.Add("COMMA,SEMI,TYPECAST")
	}
	return func(s *codestyle.State) {
		if tokens.Has("COMMA") {
			s.Java.SpaceAfterComma = true
		}
		if tokens.Has("SEMI") {
			s.Java.SpaceAfterSemicolon = true
		}
		if tokens.Has("TYPECAST") {
			s.Java.SpaceAfterTypeCast = true
		}
	}
}

// WhitespaceAround maps required spaces around operators.
var WhitespaceAround = importer.Def{
	Name:        "WhitespaceAround",
	Group:       "whitespace",
	Description: "Requires spaces around the listed operators. Repeated tokens properties accumulate.",
	ConfigKeys: []string{
		"tokens",
		"allowEmptyConstructors",
		"allowEmptyMethods",
		"allowEmptyTypes",
		"allowEmptyLoops",
		"allowEmptyLambdas",
		"allowEmptyCatches",
		"allowEmptySwitchBlockStatements",
		"ignoreEnhancedForColon",
	},
	New: func() importer.ModuleImporter { return &whitespaceAround{} },
}

// operatorGroup selects one space-around flag.
type operatorGroup func(*codestyle.JavaSettings) *bool

var (
	assignmentOps     operatorGroup = func(j *codestyle.JavaSettings) *bool { return &j.SpaceAroundAssignmentOperators }
	equalityOps       operatorGroup = func(j *codestyle.JavaSettings) *bool { return &j.SpaceAroundEqualityOperators }
	relationalOps     operatorGroup = func(j *codestyle.JavaSettings) *bool { return &j.SpaceAroundRelationalOperators }
	logicalOps        operatorGroup = func(j *codestyle.JavaSettings) *bool { return &j.SpaceAroundLogicalOperators }
	bitwiseOps        operatorGroup = func(j *codestyle.JavaSettings) *bool { return &j.SpaceAroundBitwiseOperators }
	additiveOps       operatorGroup = func(j *codestyle.JavaSettings) *bool { return &j.SpaceAroundAdditiveOperators }
	multiplicativeOps operatorGroup = func(j *codestyle.JavaSettings) *bool { return &j.SpaceAroundMultiplicativeOperators }
	shiftOps          operatorGroup = func(j *codestyle.JavaSettings) *bool { return &j.SpaceAroundShiftOperators }
)

var operatorTokens = map[string]operatorGroup{
	"ASSIGN":       assignmentOps,
	"PLUS_ASSIGN":  assignmentOps,
	"MINUS_ASSIGN": assignmentOps,
	"STAR_ASSIGN":  assignmentOps,
	"DIV_ASSIGN":   assignmentOps,
	"MOD_ASSIGN":   assignmentOps,
	"BAND_ASSIGN":  assignmentOps,
	"BOR_ASSIGN":   assignmentOps,
	"BXOR_ASSIGN":  assignmentOps,
	"SL_ASSIGN":    assignmentOps,
	"SR_ASSIGN":    assignmentOps,
	"BSR_ASSIGN":   assignmentOps,
	"EQUAL":        equalityOps,
	"NOT_EQUAL":    equalityOps,
	"LT":           relationalOps,
	"GT":           relationalOps,
	"LE":           relationalOps,
	"GE":           relationalOps,
	"LAND":         logicalOps,
	"LOR":          logicalOps,
	"BAND":         bitwiseOps,
	"BOR":          bitwiseOps,
	"BXOR":         bitwiseOps,
	"PLUS":         additiveOps,
	"MINUS":        additiveOps,
	"STAR":         multiplicativeOps,
	"DIV":          multiplicativeOps,
	"MOD":          multiplicativeOps,
	"SL":           shiftOps,
	"SR":           shiftOps,
	"BSR":          shiftOps,
}

type whitespaceAround struct {
	tokens []string
}

func (w *whitespaceAround) HandleAttribute(name, value string) error {
	switch name {
	case "tokens":
		w.tokens = append(w.tokens, value)
	case "allowEmptyConstructors", "allowEmptyMethods", "allowEmptyTypes", "allowEmptyLoops",
		"allowEmptyLambdas", "allowEmptyCatches", "allowEmptySwitchBlockStatements", "ignoreEnhancedForColon":
	default:
		return importer.UnknownAttribute(WhitespaceAround.Name, name)
	}
	return nil
}

func (w *whitespaceAround) Compile() codestyle.Change {
	var groups []operatorGroup
	if len(w.tokens) == 0 {
		groups = []operatorGroup{
			assignmentOps, equalityOps, relationalOps, logicalOps,
			bitwiseOps, additiveOps, multiplicativeOps, shiftOps,
		}
	} else {
		for tok := range importer.NewTokenSet(w.tokens...) {
			if g, ok := operatorTokens[tok]; ok {
				groups = append(groups, g)
			}
		}
	}
	return func(s *codestyle.State) {
		for _, g := range groups {
			*g(&s.Java) = true
		}
	}
}

// NoWhitespaceBefore maps forbidden spaces before separators.
var NoWhitespaceBefore = importer.Def{
	Name:        "NoWhitespaceBefore",
	Group:       "whitespace",
	Description: "Removes the space before commas and semicolons.",
	ConfigKeys:  []string{"tokens", "allowLineBreaks"},
	New:         func() importer.ModuleImporter { return &noWhitespaceBefore{} },
}

const defaultNoWhitespaceBeforeTokens = "COMMA,SEMI,POST_INC,POST_DEC,ELLIPSIS,LABELED_STAT"

type noWhitespaceBefore struct {
	tokens []string
}

func (n *noWhitespaceBefore) HandleAttribute(name, value string) error {
	switch name {
	case "tokens":
		n.tokens = append(n.tokens, value)
	case "allowLineBreaks":
	default:
		return importer.UnknownAttribute(NoWhitespaceBefore.Name, name)
	}
	return nil
}

func (n *noWhitespaceBefore) Compile() codestyle.Change {
	tokens := importer.NewTokenSet(n.tokens...)
	if len(n.tokens) == 0 {
		tokens.Add(defaultNoWhitespaceBeforeTokens)
	}
	return func(s *codestyle.State) {
		if tokens.Has("COMMA") {
			s.Java.SpaceBeforeComma = false
		}
		if tokens.Has("SEMI") {
			s.Java.SpaceBeforeSemicolon = false
		}
	}
}
