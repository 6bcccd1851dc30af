// Package arrangement models member arrangement settings for the formatting engine.
//
// # Conditions
//
// A match condition is either an Atom (one classifier token such as FIELD or
// PUBLIC) or a Composite (an ordered conjunction of atoms). Composites never
// nest and are never empty:
//
//	cond, err := arrangement.NewCondition(arrangement.Field, arrangement.Static, arrangement.Public)
//
// # Rules, sections and aliases
//
// A MatchRule pairs a condition with an order type. Rules are grouped into
// SectionRules; a RuleAlias binds a name to a reusable list of single-condition
// rules. The AliasRegistry resolves aliases by name once at compile time.
//
//	settings := arrangement.NewSettingsByMatchRules(nil, rules, registry.All())
package arrangement
