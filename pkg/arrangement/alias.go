package arrangement

import (
	"errors"
	"fmt"
)

// ErrDuplicateAlias is returned when an alias name is registered twice.
var ErrDuplicateAlias = errors.New("rule alias already registered")

// RuleAlias binds a name to an ordered list of single-condition match rules.
type RuleAlias struct {
	Name  string
	Rules []MatchRule
}

// NewRuleAlias creates an alias with one single-condition rule per token.
func NewRuleAlias(name string, tokens ...Token) RuleAlias {
	rules := make([]MatchRule, len(tokens))
	for i, t := range tokens {
		rules[i] = NewMatchRule(NewAtom(t))
	}
	return RuleAlias{Name: name, Rules: rules}
}

// Equal reports whether two aliases have the same name and rules.
func (a RuleAlias) Equal(other RuleAlias) bool {
	return a.Name == other.Name && rulesEqual(a.Rules, other.Rules)
}

func (a RuleAlias) clone() RuleAlias {
	rules := make([]MatchRule, len(a.Rules))
	copy(rules, a.Rules)
	return RuleAlias{Name: a.Name, Rules: rules}
}

// AliasRegistry maps alias names to their expanded rules.
// A registry belongs to a single compilation and is not safe for concurrent use.
type AliasRegistry struct {
	byName map[string]RuleAlias
	order  []string
}

// NewAliasRegistry creates an empty registry.
func NewAliasRegistry() *AliasRegistry {
	return &AliasRegistry{byName: make(map[string]RuleAlias)}
}

// Register adds an alias. Aliases are immutable once registered.
func (r *AliasRegistry) Register(alias RuleAlias) error {
	if _, ok := r.byName[alias.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAlias, alias.Name)
	}
	r.byName[alias.Name] = alias.clone()
	r.order = append(r.order, alias.Name)
	return nil
}

// Lookup returns the alias registered under name.
func (r *AliasRegistry) Lookup(name string) (RuleAlias, bool) {
	alias, ok := r.byName[name]
	if !ok {
		return RuleAlias{}, false
	}
	return alias.clone(), true
}

// All returns the aliases in registration order.
func (r *AliasRegistry) All() []RuleAlias {
	out := make([]RuleAlias, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name].clone())
	}
	return out
}

// Count returns the number of registered aliases.
func (r *AliasRegistry) Count() int {
	return len(r.order)
}
