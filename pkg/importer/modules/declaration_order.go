package modules

import (
	"github.com/leapstack-labs/stylebridge/pkg/arrangement"
	"github.com/leapstack-labs/stylebridge/pkg/codestyle"
	"github.com/leapstack-labs/stylebridge/pkg/importer"
)

func init() {
	importer.Register(DeclarationOrder)
}

// DeclarationOrder maps the member declaration order check to arrangement rules.
var DeclarationOrder = importer.Def{
	Name:        "DeclarationOrder",
	Group:       "declarations",
	Description: "Orders fields by staticness and visibility, then constructors, then methods.",
	ConfigKeys:  []string{"ignoreConstructors", "ignoreModifiers"},
	New:         func() importer.ModuleImporter { return &declarationOrder{} },
}

// VisibilityAlias is the name of the alias registered by CompileDeclarationOrder.
const VisibilityAlias = "visibility"

// visibilityOrder is the canonical visibility order, most visible first.
var visibilityOrder = []arrangement.Token{
	arrangement.Public,
	arrangement.Protected,
	arrangement.PackagePrivate,
	arrangement.Private,
}

// fieldPrefixes are the field rule prefixes: static fields come first.
var fieldPrefixes = [][]arrangement.Token{
	{arrangement.Field, arrangement.Static},
	{arrangement.Field},
}

// DeclarationOrderOptions are the flags of the declaration order check.
type DeclarationOrderOptions struct {
	IgnoreConstructors bool
	IgnoreModifiers    bool
}

// CompileDeclarationOrder builds the arrangement settings for opts.
// Every rule gets its own section; the visibility alias is always present.
func CompileDeclarationOrder(opts DeclarationOrderOptions) *arrangement.Settings {
	var rules []arrangement.MatchRule
	for _, prefix := range fieldPrefixes {
		if opts.IgnoreModifiers {
			rules = append(rules, arrangement.NewMatchRule(arrangement.MustCondition(prefix...)))
			continue
		}
		for _, vis := range visibilityOrder {
			tokens := append(append([]arrangement.Token(nil), prefix...), vis)
			rules = append(rules, arrangement.NewMatchRule(arrangement.MustCondition(tokens...)))
		}
	}
	if !opts.IgnoreConstructors {
		rules = append(rules, arrangement.NewMatchRule(arrangement.NewAtom(arrangement.Constructor)))
	}
	rules = append(rules, arrangement.NewMatchRule(arrangement.NewAtom(arrangement.Method)))

	aliases := arrangement.NewAliasRegistry()
	// A fresh registry cannot hold a duplicate.
	_ = aliases.Register(arrangement.NewRuleAlias(VisibilityAlias, visibilityOrder...))

	return arrangement.NewSettingsByMatchRules(nil, rules, aliases.All())
}

type declarationOrder struct {
	opts DeclarationOrderOptions
}

func (d *declarationOrder) HandleAttribute(name, value string) error {
	switch name {
	case "ignoreConstructors":
		d.opts.IgnoreConstructors = importer.ParseBool(value)
	case "ignoreModifiers":
		d.opts.IgnoreModifiers = importer.ParseBool(value)
	default:
		return importer.UnknownAttribute(DeclarationOrder.Name, name)
	}
	return nil
}

func (d *declarationOrder) Compile() codestyle.Change {
	settings := CompileDeclarationOrder(d.opts)
	return func(s *codestyle.State) {
		s.Arrangement = settings.Clone()
	}
}
