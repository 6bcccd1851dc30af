package arrangement

// GroupingRule groups related entries (getters and setters, overridden methods).
// No importer produces groupings; the type exists so settings round-trip intact.
type GroupingRule struct {
	Type  string
	Order OrderType
}

// Settings is the complete arrangement configuration installed into the host.
type Settings struct {
	Groupings []GroupingRule
	Sections  []SectionRule
	Aliases   []RuleAlias
}

// NewSettingsByMatchRules wraps every rule in its own comment-free section.
func NewSettingsByMatchRules(groupings []GroupingRule, rules []MatchRule, aliases []RuleAlias) *Settings {
	s := &Settings{
		Groupings: append([]GroupingRule(nil), groupings...),
		Sections:  make([]SectionRule, 0, len(rules)),
		Aliases:   make([]RuleAlias, 0, len(aliases)),
	}
	for _, rule := range rules {
		s.Sections = append(s.Sections, NewSection(rule))
	}
	for _, alias := range aliases {
		s.Aliases = append(s.Aliases, alias.clone())
	}
	return s
}

// MatchRules flattens the sections into their rules, in order.
func (s *Settings) MatchRules() []MatchRule {
	if s == nil {
		return nil
	}
	var out []MatchRule
	for _, section := range s.Sections {
		out = append(out, section.Rules...)
	}
	return out
}

// Alias returns the alias with the given name.
func (s *Settings) Alias(name string) (RuleAlias, bool) {
	if s == nil {
		return RuleAlias{}, false
	}
	for _, a := range s.Aliases {
		if a.Name == name {
			return a.clone(), true
		}
	}
	return RuleAlias{}, false
}

// Clone returns a deep copy of the settings.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	out := &Settings{
		Groupings: append([]GroupingRule(nil), s.Groupings...),
		Sections:  make([]SectionRule, len(s.Sections)),
		Aliases:   make([]RuleAlias, len(s.Aliases)),
	}
	for i, section := range s.Sections {
		out.Sections[i] = SectionRule{
			StartComment: section.StartComment,
			EndComment:   section.EndComment,
			Rules:        append([]MatchRule(nil), section.Rules...),
		}
	}
	for i, a := range s.Aliases {
		out.Aliases[i] = a.clone()
	}
	return out
}

// Equal reports structural equality of two settings.
func (s *Settings) Equal(other *Settings) bool {
	if s == nil || other == nil {
		return s == nil && other == nil
	}
	if len(s.Groupings) != len(other.Groupings) ||
		len(s.Sections) != len(other.Sections) ||
		len(s.Aliases) != len(other.Aliases) {
		return false
	}
	for i := range s.Groupings {
		if s.Groupings[i] != other.Groupings[i] {
			return false
		}
	}
	for i := range s.Sections {
		if !s.Sections[i].Equal(other.Sections[i]) {
			return false
		}
	}
	for i := range s.Aliases {
		if !s.Aliases[i].Equal(other.Aliases[i]) {
			return false
		}
	}
	return true
}
