package modules

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/stylebridge/pkg/codestyle"
	"github.com/leapstack-labs/stylebridge/pkg/importer"
	"github.com/leapstack-labs/stylebridge/pkg/imports"
)

func TestAllModulesRegistered(t *testing.T) {
	for _, name := range []string{
		"AvoidStarImport",
		"DeclarationOrder",
		"EmptyLineSeparator",
		"FileTabCharacter",
		"ImportOrder",
		"Indentation",
		"LeftCurly",
		"LineLength",
		"NeedBraces",
		"NoWhitespaceBefore",
		"WhitespaceAfter",
		"WhitespaceAround",
	} {
		def, ok := importer.Get(name)
		if assert.True(t, ok, name) {
			assert.NotEmpty(t, def.Group, name)
			assert.NotEmpty(t, def.Description, name)
			assert.NotNil(t, def.New, name)
		}
	}
}

func TestLineLength(t *testing.T) {
	state, capture := importModules(t, importer.NewModule("LineLength", "max", "100"))
	assert.Equal(t, 100, state.Java.RightMargin)
	assert.Zero(t, capture.Count(slog.LevelWarn))

	state, capture = importModules(t, importer.NewModule("LineLength", "max", "wide"))
	assert.Equal(t, 120, state.Java.RightMargin)
	assert.Equal(t, 1, capture.Count(slog.LevelWarn))
}

func TestEmptyLineSeparator(t *testing.T) {
	settings := withState(func(s *codestyle.State) {
		s.Java.BlankLinesAroundField = 0
		s.Java.BlankLinesAroundMethod = 0
	})
	state, _ := importModulesInto(t, settings, importer.NewModule("EmptyLineSeparator", "tokens", "VARIABLE_DEF, METHOD_DEF"))
	assert.Equal(t, 1, state.Java.BlankLinesAroundField)
	assert.Equal(t, 1, state.Java.BlankLinesAroundMethod)

	settings = withState(func(s *codestyle.State) {
		s.Java.BlankLinesAroundField = 0
		s.Java.BlankLinesAroundMethod = 0
	})
	state, _ = importModulesInto(t, settings, importer.NewModule("EmptyLineSeparator", "tokens", "METHOD_DEF"))
	assert.Equal(t, 0, state.Java.BlankLinesAroundField)
	assert.Equal(t, 1, state.Java.BlankLinesAroundMethod)
}

func TestFileTabCharacter(t *testing.T) {
	tests := []struct {
		name   string
		module *importer.Module
		java   bool
		xml    bool
	}{
		{"explicit extensions", importer.NewModule("FileTabCharacter", "eachLine", "true", "fileExtensions", "java,xml"), false, false},
		{"no extensions means all languages", importer.NewModule("FileTabCharacter"), false, false},
		{"only java", importer.NewModule("FileTabCharacter", "fileExtensions", ".java"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := withState(func(s *codestyle.State) {
				for _, lang := range codestyle.Languages {
					s.SetIndent(lang, func(o *codestyle.IndentOptions) { o.UseTabCharacter = true })
				}
			})
			state, _ := importModulesInto(t, settings, tt.module)
			assert.Equal(t, tt.java, state.IndentFor(codestyle.LanguageJava).UseTabCharacter)
			assert.Equal(t, tt.xml, state.IndentFor(codestyle.LanguageXML).UseTabCharacter)
		})
	}
}

func TestWhitespaceAfter(t *testing.T) {
	settings := withState(func(s *codestyle.State) {
		s.Java.SpaceAfterComma = false
		s.Java.SpaceAfterSemicolon = false
		s.Java.SpaceAfterTypeCast = false
	})
	state, _ := importModulesInto(t, settings, importer.NewModule("WhitespaceAfter", "tokens", "COMMA, SEMI"))
	assert.True(t, state.Java.SpaceAfterComma)
	assert.True(t, state.Java.SpaceAfterSemicolon)
	assert.False(t, state.Java.SpaceAfterTypeCast)
}

func TestWhitespaceAround(t *testing.T) {
	settings := withState(func(s *codestyle.State) {
		s.Java.SpaceAroundAssignmentOperators = false
		s.Java.SpaceAroundEqualityOperators = false
		s.Java.SpaceAroundBitwiseOperators = false
	})
	state, _ := importModulesInto(t, settings,
		importer.NewModule("WhitespaceAround", "tokens", "ASSIGN", "tokens", "EQUAL"))
	assert.True(t, state.Java.SpaceAroundAssignmentOperators)
	assert.True(t, state.Java.SpaceAroundEqualityOperators)
	assert.False(t, state.Java.SpaceAroundBitwiseOperators)
}

func TestNoWhitespaceBefore(t *testing.T) {
	settings := withState(func(s *codestyle.State) {
		s.Java.SpaceBeforeSemicolon = true
		s.Java.SpaceBeforeComma = true
	})
	state, _ := importModulesInto(t, settings, importer.NewModule("NoWhitespaceBefore"))
	assert.False(t, state.Java.SpaceBeforeSemicolon)
	assert.False(t, state.Java.SpaceBeforeComma)
}

func TestLeftCurly(t *testing.T) {
	settings := withState(func(s *codestyle.State) {
		s.Java.ClassBraceStyle = codestyle.BraceNextLineShifted
		s.Java.MethodBraceStyle = codestyle.BraceNextLineShifted
		s.Java.BraceStyle = codestyle.BraceNextLineShifted
	})
	state, capture := importModulesInto(t, settings,
		importer.NewModule("LeftCurly", "option", "nl", "tokens", "CLASS_DEF,INTERFACE_DEF"),
		importer.NewModule("LeftCurly", "option", "eol", "tokens", "METHOD_DEF,LITERAL_IF"),
	)
	assert.Equal(t, codestyle.BraceNextLine, state.Java.ClassBraceStyle)
	assert.Equal(t, codestyle.BraceEndOfLine, state.Java.MethodBraceStyle)
	assert.Equal(t, codestyle.BraceEndOfLine, state.Java.BraceStyle)
	assert.Zero(t, capture.Count(slog.LevelWarn))
}

func TestNeedBraces(t *testing.T) {
	state, _ := importModules(t, importer.NewModule("NeedBraces", "allowSingleLineStatement", "true"))
	assert.Equal(t, codestyle.ForceBracesIfMultiline, state.Java.DoWhileBraceForce)
	assert.Equal(t, codestyle.ForceBracesIfMultiline, state.Java.IfBraceForce)
	assert.Equal(t, codestyle.ForceBracesIfMultiline, state.Java.ForBraceForce)
	assert.Equal(t, codestyle.ForceBracesIfMultiline, state.Java.WhileBraceForce)

	state, _ = importModules(t, importer.NewModule("NeedBraces", "tokens", "LITERAL_IF"))
	assert.Equal(t, codestyle.ForceBracesAlways, state.Java.IfBraceForce)
	assert.Equal(t, codestyle.ForceBracesDoNotForce, state.Java.ForBraceForce)
}

func TestIndentation(t *testing.T) {
	settings := withState(func(s *codestyle.State) {
		s.Java.IndentCaseFromSwitch = false
		s.SetIndent(codestyle.LanguageJava, func(o *codestyle.IndentOptions) {
			o.IndentSize = 8
			o.ContinuationIndentSize = 8
		})
	})
	state, capture := importModulesInto(t, settings, importer.NewModule("Indentation",
		"basicOffset", "2",
		"braceAdjustment", "0",
		"caseIndent", "2",
		"throwsIndent", "4",
		"lineWrappingIndentation", "4",
		"arrayInitIndent", "2",
	))

	java := state.IndentFor(codestyle.LanguageJava)
	assert.Equal(t, 2, java.IndentSize)
	assert.Equal(t, 4, java.ContinuationIndentSize)
	assert.True(t, state.Java.IndentCaseFromSwitch)
	assert.Zero(t, capture.Count(slog.LevelWarn))
}

func TestAvoidStarImport(t *testing.T) {
	tests := []struct {
		name     string
		module   *importer.Module
		classes  int
		names    int
		onDemand []imports.PackageEntry
	}{
		{
			name:    "nothing allowed",
			module:  importer.NewModule("AvoidStarImport"),
			classes: OnDemandForbidden,
			names:   OnDemandForbidden,
		},
		{
			name:    "both allowed",
			module:  importer.NewModule("AvoidStarImport", "allowClassImports", "true", "allowStaticMemberImports", "true"),
			classes: OnDemandAllowed,
			names:   OnDemandAllowed,
		},
		{
			name:    "static members only",
			module:  importer.NewModule("AvoidStarImport", "allowStaticMemberImports", "true"),
			classes: OnDemandForbidden,
			names:   OnDemandAllowed,
		},
		{
			name:    "classes only",
			module:  importer.NewModule("AvoidStarImport", "allowClassImports", "true"),
			classes: OnDemandAllowed,
			names:   OnDemandForbidden,
		},
		{
			name:    "excludes",
			module:  importer.NewModule("AvoidStarImport", "excludes", "a.b.c,d.e.f"),
			classes: OnDemandForbidden,
			names:   OnDemandForbidden,
			onDemand: []imports.PackageEntry{
				imports.NewPackageEntry(false, "a.b.c", false),
				imports.NewPackageEntry(false, "d.e.f", false),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := withState(func(s *codestyle.State) {
				s.Imports.ClassCountToUseImportOnDemand = 1
				s.Imports.NamesCountToUseImportOnDemand = 1
				s.Imports.PackagesToUseImportOnDemand = imports.Table{}
			})
			state, _ := importModulesInto(t, settings, tt.module)
			assert.Equal(t, tt.classes, state.Imports.ClassCountToUseImportOnDemand)
			assert.Equal(t, tt.names, state.Imports.NamesCountToUseImportOnDemand)
			assert.Equal(t, tt.onDemand, state.Imports.PackagesToUseImportOnDemand.Entries())
		})
	}
}

func TestUnknownAttributesWarnWithoutEffect(t *testing.T) {
	for _, def := range importer.All() {
		t.Run(def.Name, func(t *testing.T) {
			imp := def.New()
			err := imp.HandleAttribute("notARealAttribute", "x")
			require.Error(t, err)
			assert.ErrorIs(t, err, importer.ErrUnknownAttribute)

			for _, key := range def.ConfigKeys {
				err := imp.HandleAttribute(key, "1")
				assert.NotErrorIs(t, err, importer.ErrUnknownAttribute, key)
			}
		})
	}
}

func TestFullConfiguration(t *testing.T) {
	state, capture := importModules(t,
		importer.NewModule("LineLength", "max", "100"),
		importer.NewModule("DeclarationOrder"),
		importer.NewModule("ImportOrder", "groups", "java,javax,*", "option", "top", "separated", "true"),
		importer.NewModule("JavadocMethod", "scope", "public"),
	)

	assert.Equal(t, 100, state.Java.RightMargin)
	assert.Len(t, state.Arrangement.Sections, 10)
	assert.Equal(t, []imports.PackageEntry{
		static, blank,
		imports.NewPackageEntry(false, "java", true), blank,
		imports.NewPackageEntry(false, "javax", true), blank,
		other,
	}, state.Imports.Layout.Table.Entries())
	assert.Zero(t, capture.Count(slog.LevelWarn))
}

func withState(setup func(*codestyle.State)) *codestyle.Settings {
	s := codestyle.NewSettings()
	s.Apply(setup)
	return s
}
