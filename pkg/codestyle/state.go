// Package codestyle holds the code-style settings that importers write into.
//
// State is a plain value. Settings guards a State with a lock and installs
// batches of changes atomically, so readers never observe a half-imported
// configuration.
package codestyle

import (
	"github.com/leapstack-labs/stylebridge/pkg/arrangement"
	"github.com/leapstack-labs/stylebridge/pkg/imports"
)

// Language identifies a language with its own indent options.
type Language string

// Supported languages.
const (
	LanguageJava Language = "java"
	LanguageXML  Language = "xml"
)

// Languages lists the supported languages in a stable order.
var Languages = []Language{LanguageJava, LanguageXML}

// BraceStyle is the placement of an opening brace.
type BraceStyle string

// Brace styles.
const (
	BraceEndOfLine         BraceStyle = "end_of_line"
	BraceNextLine          BraceStyle = "next_line"
	BraceNextLineShifted   BraceStyle = "next_line_shifted"
	BraceNextLineIfWrapped BraceStyle = "next_line_if_wrapped"
)

// ForceBraces controls brace insertion around single statements.
type ForceBraces string

// Brace forcing modes.
const (
	ForceBracesDoNotForce  ForceBraces = "do_not_force"
	ForceBracesIfMultiline ForceBraces = "if_multiline"
	ForceBracesAlways      ForceBraces = "always"
)

// ImportSettings is the import part of the state.
type ImportSettings struct {
	Layout                        imports.Layout
	ClassCountToUseImportOnDemand int
	NamesCountToUseImportOnDemand int
	PackagesToUseImportOnDemand   imports.Table
}

// JavaSettings holds the language-specific Java options.
type JavaSettings struct {
	RightMargin int

	BlankLinesAroundField  int
	BlankLinesAroundMethod int

	SpaceAfterComma     bool
	SpaceAfterSemicolon bool
	SpaceAfterTypeCast  bool

	SpaceBeforeComma     bool
	SpaceBeforeSemicolon bool

	SpaceAroundAssignmentOperators     bool
	SpaceAroundEqualityOperators       bool
	SpaceAroundRelationalOperators     bool
	SpaceAroundLogicalOperators        bool
	SpaceAroundBitwiseOperators        bool
	SpaceAroundAdditiveOperators       bool
	SpaceAroundMultiplicativeOperators bool
	SpaceAroundShiftOperators          bool

	ClassBraceStyle  BraceStyle
	MethodBraceStyle BraceStyle
	BraceStyle       BraceStyle

	IfBraceForce      ForceBraces
	ForBraceForce     ForceBraces
	WhileBraceForce   ForceBraces
	DoWhileBraceForce ForceBraces

	IndentCaseFromSwitch bool
}

// IndentOptions are the per-language indentation options.
type IndentOptions struct {
	UseTabCharacter        bool
	IndentSize             int
	ContinuationIndentSize int
	TabSize                int
}

// State is the complete code-style configuration.
type State struct {
	Arrangement *arrangement.Settings
	Imports     ImportSettings
	Java        JavaSettings
	Indent      map[Language]IndentOptions
}

// Defaults returns the host defaults.
func Defaults() State {
	indent := IndentOptions{
		IndentSize:             4,
		ContinuationIndentSize: 8,
		TabSize:                4,
	}
	return State{
		Arrangement: &arrangement.Settings{},
		Imports: ImportSettings{
			Layout: imports.Layout{
				Table: imports.NewTable(
					imports.AllOtherImports,
					imports.BlankLine,
					imports.AllOtherStaticImports,
				),
				StaticSeparately: true,
			},
			ClassCountToUseImportOnDemand: 5,
			NamesCountToUseImportOnDemand: 3,
		},
		Java: JavaSettings{
			RightMargin:                        120,
			SpaceAfterComma:                    true,
			SpaceAfterSemicolon:                true,
			SpaceAroundAssignmentOperators:     true,
			SpaceAroundEqualityOperators:       true,
			SpaceAroundRelationalOperators:     true,
			SpaceAroundLogicalOperators:        true,
			SpaceAroundBitwiseOperators:        true,
			SpaceAroundAdditiveOperators:       true,
			SpaceAroundMultiplicativeOperators: true,
			SpaceAroundShiftOperators:          true,
			ClassBraceStyle:                    BraceEndOfLine,
			MethodBraceStyle:                   BraceEndOfLine,
			BraceStyle:                         BraceEndOfLine,
			IfBraceForce:                       ForceBracesDoNotForce,
			ForBraceForce:                      ForceBracesDoNotForce,
			WhileBraceForce:                    ForceBracesDoNotForce,
			DoWhileBraceForce:                  ForceBracesDoNotForce,
			IndentCaseFromSwitch:               true,
		},
		Indent: map[Language]IndentOptions{
			LanguageJava: indent,
			LanguageXML:  indent,
		},
	}
}

// IndentFor returns the indent options of a language, falling back to the defaults.
func (s *State) IndentFor(lang Language) IndentOptions {
	if opts, ok := s.Indent[lang]; ok {
		return opts
	}
	return Defaults().Indent[LanguageJava]
}

// SetIndent updates the indent options of a language in place.
func (s *State) SetIndent(lang Language, update func(*IndentOptions)) {
	opts := s.IndentFor(lang)
	update(&opts)
	if s.Indent == nil {
		s.Indent = make(map[Language]IndentOptions)
	}
	s.Indent[lang] = opts
}

// Clone returns a deep copy.
func (s State) Clone() State {
	out := s
	out.Arrangement = s.Arrangement.Clone()
	out.Imports.Layout.Table = imports.NewTable(s.Imports.Layout.Table.Entries()...)
	out.Imports.PackagesToUseImportOnDemand = imports.NewTable(s.Imports.PackagesToUseImportOnDemand.Entries()...)
	if s.Indent != nil {
		out.Indent = make(map[Language]IndentOptions, len(s.Indent))
		for k, v := range s.Indent {
			out.Indent[k] = v
		}
	}
	return out
}
