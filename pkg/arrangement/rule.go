package arrangement

// OrderType controls how entries matched by a rule are sorted among themselves.
type OrderType string

// Supported order types.
const (
	// OrderKeep preserves the original entry order.
	OrderKeep OrderType = "keep"
	// OrderByName sorts matched entries by name.
	OrderByName OrderType = "by_name"
)

// DefaultOrderType is the order type of rules created without an explicit one.
const DefaultOrderType = OrderKeep

// MatchRule is one condition plus its ordering behaviour.
type MatchRule struct {
	Condition Condition
	Order     OrderType
}

// NewMatchRule creates a rule with the default order type.
func NewMatchRule(c Condition) MatchRule {
	return MatchRule{Condition: c, Order: DefaultOrderType}
}

// NewRule builds a rule from tokens, mirroring NewCondition.
func NewRule(tokens ...Token) (MatchRule, error) {
	c, err := NewCondition(tokens...)
	if err != nil {
		return MatchRule{}, err
	}
	return NewMatchRule(c), nil
}

// Equal reports whether two rules have equal conditions and order types.
func (r MatchRule) Equal(other MatchRule) bool {
	if r.Order != other.Order {
		return false
	}
	if r.Condition == nil || other.Condition == nil {
		return r.Condition == nil && other.Condition == nil
	}
	return r.Condition.Equal(other.Condition)
}

// SectionRule is an ordered group of match rules with optional boundary comments.
type SectionRule struct {
	StartComment string
	EndComment   string
	Rules        []MatchRule
}

// NewSection creates a section without comments.
func NewSection(rules ...MatchRule) SectionRule {
	out := make([]MatchRule, len(rules))
	copy(out, rules)
	return SectionRule{Rules: out}
}

// Equal reports structural equality of two sections.
func (s SectionRule) Equal(other SectionRule) bool {
	if s.StartComment != other.StartComment || s.EndComment != other.EndComment {
		return false
	}
	return rulesEqual(s.Rules, other.Rules)
}

func rulesEqual(a, b []MatchRule) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
