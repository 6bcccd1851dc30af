package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/stylebridge/internal/cli/output"
	"github.com/leapstack-labs/stylebridge/pkg/arrangement"
	"github.com/leapstack-labs/stylebridge/pkg/codestyle"
	"github.com/leapstack-labs/stylebridge/pkg/importer"
	"github.com/leapstack-labs/stylebridge/pkg/imports"
)

// CompileReport is the printable view of a compiled code style.
type CompileReport struct {
	Pass        *importer.Result  `json:"pass" yaml:"pass"`
	Imports     ImportsReport     `json:"imports" yaml:"imports"`
	Arrangement ArrangementReport `json:"arrangement" yaml:"arrangement"`
	Java        []Setting         `json:"java" yaml:"java"`
	Indent      []IndentReport    `json:"indent" yaml:"indent"`
}

// ImportsReport shows the import settings.
type ImportsReport struct {
	Layout           []string `json:"layout" yaml:"layout"`
	StaticSeparately bool     `json:"staticSeparately" yaml:"staticSeparately"`
	ClassCount       int      `json:"classCountToUseImportOnDemand" yaml:"classCountToUseImportOnDemand"`
	NamesCount       int      `json:"namesCountToUseImportOnDemand" yaml:"namesCountToUseImportOnDemand"`
	OnDemand         []string `json:"packagesToUseImportOnDemand" yaml:"packagesToUseImportOnDemand"`
}

// ArrangementReport shows the member arrangement rules and aliases.
type ArrangementReport struct {
	Rules   []string      `json:"rules" yaml:"rules"`
	Aliases []AliasReport `json:"aliases" yaml:"aliases"`
}

// AliasReport shows one rule alias.
type AliasReport struct {
	Name  string   `json:"name" yaml:"name"`
	Rules []string `json:"rules" yaml:"rules"`
}

// Setting is one named option value.
type Setting struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// IndentReport shows the indent options of one language.
type IndentReport struct {
	Language               string `json:"language" yaml:"language"`
	UseTabCharacter        bool   `json:"useTabCharacter" yaml:"useTabCharacter"`
	IndentSize             int    `json:"indentSize" yaml:"indentSize"`
	ContinuationIndentSize int    `json:"continuationIndentSize" yaml:"continuationIndentSize"`
	TabSize                int    `json:"tabSize" yaml:"tabSize"`
}

// NewCompileReport builds the report for a pass result and the installed state.
func NewCompileReport(result *importer.Result, state codestyle.State) CompileReport {
	rep := CompileReport{
		Pass: result,
		Imports: ImportsReport{
			Layout:           entryStrings(state.Imports.Layout.Table.Entries()),
			StaticSeparately: state.Imports.Layout.StaticSeparately,
			ClassCount:       state.Imports.ClassCountToUseImportOnDemand,
			NamesCount:       state.Imports.NamesCountToUseImportOnDemand,
			OnDemand:         entryStrings(state.Imports.PackagesToUseImportOnDemand.Entries()),
		},
		Arrangement: ArrangementReport{
			Rules:   ruleStrings(state.Arrangement.MatchRules()),
			Aliases: []AliasReport{},
		},
		Java: javaSettings(state.Java),
	}
	if state.Arrangement != nil {
		for _, a := range state.Arrangement.Aliases {
			rep.Arrangement.Aliases = append(rep.Arrangement.Aliases, AliasReport{
				Name:  a.Name,
				Rules: ruleStrings(a.Rules),
			})
		}
	}
	for _, lang := range codestyle.Languages {
		opts := state.IndentFor(lang)
		rep.Indent = append(rep.Indent, IndentReport{
			Language:               string(lang),
			UseTabCharacter:        opts.UseTabCharacter,
			IndentSize:             opts.IndentSize,
			ContinuationIndentSize: opts.ContinuationIndentSize,
			TabSize:                opts.TabSize,
		})
	}
	return rep
}

func entryStrings(entries []imports.PackageEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.String()
	}
	return out
}

func ruleStrings(rules []arrangement.MatchRule) []string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		if r.Condition == nil {
			continue
		}
		out = append(out, r.Condition.String())
	}
	return out
}

func javaSettings(j codestyle.JavaSettings) []Setting {
	b := strconv.FormatBool
	return []Setting{
		{"rightMargin", strconv.Itoa(j.RightMargin)},
		{"blankLinesAroundField", strconv.Itoa(j.BlankLinesAroundField)},
		{"blankLinesAroundMethod", strconv.Itoa(j.BlankLinesAroundMethod)},
		{"spaceAfterComma", b(j.SpaceAfterComma)},
		{"spaceAfterSemicolon", b(j.SpaceAfterSemicolon)},
		{"spaceAfterTypeCast", b(j.SpaceAfterTypeCast)},
		{"spaceBeforeComma", b(j.SpaceBeforeComma)},
		{"spaceBeforeSemicolon", b(j.SpaceBeforeSemicolon)},
		{"spaceAroundAssignmentOperators", b(j.SpaceAroundAssignmentOperators)},
		{"spaceAroundEqualityOperators", b(j.SpaceAroundEqualityOperators)},
		{"spaceAroundRelationalOperators", b(j.SpaceAroundRelationalOperators)},
		{"spaceAroundLogicalOperators", b(j.SpaceAroundLogicalOperators)},
		{"spaceAroundBitwiseOperators", b(j.SpaceAroundBitwiseOperators)},
		{"spaceAroundAdditiveOperators", b(j.SpaceAroundAdditiveOperators)},
		{"spaceAroundMultiplicativeOperators", b(j.SpaceAroundMultiplicativeOperators)},
		{"spaceAroundShiftOperators", b(j.SpaceAroundShiftOperators)},
		{"classBraceStyle", string(j.ClassBraceStyle)},
		{"methodBraceStyle", string(j.MethodBraceStyle)},
		{"braceStyle", string(j.BraceStyle)},
		{"ifBraceForce", string(j.IfBraceForce)},
		{"forBraceForce", string(j.ForBraceForce)},
		{"whileBraceForce", string(j.WhileBraceForce)},
		{"doWhileBraceForce", string(j.DoWhileBraceForce)},
		{"indentCaseFromSwitch", b(j.IndentCaseFromSwitch)},
	}
}

// Render writes the report in the renderer's effective mode.
func (rep CompileReport) Render(r *output.Renderer) error {
	if ok, err := r.Structured(rep); ok {
		return err
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		rep.renderMarkdown(r)
		return nil
	}
	rep.renderText(r)
	return nil
}

func (rep CompileReport) renderMarkdown(r *output.Renderer) {
	r.Println(output.FormatHeader(1, "Code Style"))
	r.Println("")
	if rep.Pass != nil {
		r.Println(output.FormatKeyValue("Pass", rep.Pass.ID))
		r.Println(output.FormatKeyValue("Applied", fmt.Sprint(len(rep.Pass.Applied))))
		r.Println(output.FormatKeyValue("Warnings", strconv.Itoa(rep.Pass.Warnings)))
		r.Println("")
	}

	r.Println(output.FormatHeader(2, "Import Layout"))
	r.Println("")
	for i, e := range rep.Imports.Layout {
		r.Printf("%d. `%s`\n", i+1, e)
	}
	r.Println("")
	r.Println(output.FormatKeyValue("Static separately", strconv.FormatBool(rep.Imports.StaticSeparately)))
	r.Println(output.FormatKeyValue("Class count to use import on demand", strconv.Itoa(rep.Imports.ClassCount)))
	r.Println(output.FormatKeyValue("Names count to use import on demand", strconv.Itoa(rep.Imports.NamesCount)))
	r.Println("")

	r.Println(output.FormatHeader(2, "Arrangement"))
	r.Println("")
	if len(rep.Arrangement.Rules) == 0 {
		r.Println("_No arrangement rules._")
	}
	for i, rule := range rep.Arrangement.Rules {
		r.Printf("%d. `%s`\n", i+1, rule)
	}
	for _, a := range rep.Arrangement.Aliases {
		r.Println("")
		r.Println(output.FormatHeader(3, "Alias "+a.Name))
		r.Println("")
		for _, rule := range a.Rules {
			r.Printf("- `%s`\n", rule)
		}
	}
	r.Println("")

	r.Println(output.FormatHeader(2, "Java"))
	r.Println("")
	r.Table([]string{"Option", "Value"}, settingRows(rep.Java))
	r.Println("")

	r.Println(output.FormatHeader(2, "Indentation"))
	r.Println("")
	r.Table(indentHeader, indentRows(rep.Indent))
}

func (rep CompileReport) renderText(r *output.Renderer) {
	styles := r.Styles()

	r.Println("")
	r.Header(1, "Code Style")
	if rep.Pass != nil {
		r.Println(styles.Muted.Render(fmt.Sprintf("pass %s: %d applied, %d warnings",
			rep.Pass.ID, len(rep.Pass.Applied), rep.Pass.Warnings)))
	}
	r.Println("")

	r.Header(2, "Import Layout")
	for _, e := range rep.Imports.Layout {
		r.Println("  " + e)
	}
	r.Printf("  %s %t\n", styles.Muted.Render("static separately:"), rep.Imports.StaticSeparately)
	r.Println("")

	r.Header(2, "Arrangement")
	if len(rep.Arrangement.Rules) == 0 {
		r.Println(styles.Muted.Render("  none"))
	}
	for i, rule := range rep.Arrangement.Rules {
		r.Printf("  %2d. %s\n", i+1, rule)
	}
	for _, a := range rep.Arrangement.Aliases {
		r.Printf("  %s %s\n", styles.Bold.Render("alias "+a.Name+":"), fmt.Sprint(a.Rules))
	}
	r.Println("")

	r.Header(2, "Java")
	r.Table([]string{"Option", "Value"}, settingRows(rep.Java))
	r.Println("")

	r.Header(2, "Indentation")
	r.Table(indentHeader, indentRows(rep.Indent))
	r.Println("")
}

var indentHeader = []string{"Language", "Tabs", "Indent", "Continuation", "Tab size"}

func settingRows(settings []Setting) [][]string {
	rows := make([][]string, len(settings))
	for i, s := range settings {
		rows[i] = []string{s.Name, s.Value}
	}
	return rows
}

func indentRows(indent []IndentReport) [][]string {
	rows := make([][]string, len(indent))
	for i, in := range indent {
		rows[i] = []string{
			in.Language,
			strconv.FormatBool(in.UseTabCharacter),
			strconv.Itoa(in.IndentSize),
			strconv.Itoa(in.ContinuationIndentSize),
			strconv.Itoa(in.TabSize),
		}
	}
	return rows
}
