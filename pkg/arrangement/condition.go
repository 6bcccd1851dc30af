package arrangement

import (
	"errors"
	"strings"
)

// ErrEmptyCondition is returned when a condition is built from no tokens.
var ErrEmptyCondition = errors.New("match condition requires at least one token")

// Condition is a match condition: either an Atom or a Composite.
type Condition interface {
	// Tokens returns the classifier tokens in operand order.
	Tokens() []Token

	// Equal reports structural, order-sensitive equality.
	Equal(other Condition) bool

	String() string

	isCondition()
}

// Atom is a condition holding a single classifier token.
type Atom struct {
	Token Token
}

// NewAtom creates an atomic condition.
func NewAtom(t Token) Atom {
	return Atom{Token: t}
}

// Tokens implements Condition.
func (a Atom) Tokens() []Token { return []Token{a.Token} }

// Equal implements Condition.
func (a Atom) Equal(other Condition) bool {
	o, ok := other.(Atom)
	return ok && o.Token == a.Token
}

func (a Atom) String() string { return a.Token.String() }

func (Atom) isCondition() {}

// Composite is a conjunction of atoms. Operand order is significant.
type Composite struct {
	operands []Atom
}

// NewComposite creates a composite from one or more tokens.
func NewComposite(tokens ...Token) (Composite, error) {
	if len(tokens) == 0 {
		return Composite{}, ErrEmptyCondition
	}
	operands := make([]Atom, len(tokens))
	for i, t := range tokens {
		operands[i] = NewAtom(t)
	}
	return Composite{operands: operands}, nil
}

// Operands returns a copy of the composite's atoms.
func (c Composite) Operands() []Atom {
	out := make([]Atom, len(c.operands))
	copy(out, c.operands)
	return out
}

// Tokens implements Condition.
func (c Composite) Tokens() []Token {
	out := make([]Token, len(c.operands))
	for i, a := range c.operands {
		out[i] = a.Token
	}
	return out
}

// Equal implements Condition.
func (c Composite) Equal(other Condition) bool {
	o, ok := other.(Composite)
	if !ok || len(o.operands) != len(c.operands) {
		return false
	}
	for i := range c.operands {
		if c.operands[i] != o.operands[i] {
			return false
		}
	}
	return true
}

func (c Composite) String() string {
	parts := make([]string, len(c.operands))
	for i, a := range c.operands {
		parts[i] = a.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (Composite) isCondition() {}

// NewCondition returns an Atom for a single token and a Composite otherwise.
func NewCondition(tokens ...Token) (Condition, error) {
	switch len(tokens) {
	case 0:
		return nil, ErrEmptyCondition
	case 1:
		return NewAtom(tokens[0]), nil
	default:
		return NewComposite(tokens...)
	}
}

// MustCondition is like NewCondition but panics on an empty token list.
// Intended for static rule tables.
func MustCondition(tokens ...Token) Condition {
	c, err := NewCondition(tokens...)
	if err != nil {
		panic(err)
	}
	return c
}
