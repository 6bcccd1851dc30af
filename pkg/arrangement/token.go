package arrangement

import "strings"

// Category groups classifier tokens.
type Category int

// Token categories.
const (
	CategoryUnknown Category = iota
	CategoryEntryType
	CategoryModifier
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryEntryType:
		return "entry_type"
	case CategoryModifier:
		return "modifier"
	default:
		return "unknown"
	}
}

// Token is a single classifier used by atomic match conditions.
type Token string

// Entry type tokens.
const (
	Field       Token = "FIELD"
	Method      Token = "METHOD"
	Constructor Token = "CONSTRUCTOR"
)

// Modifier tokens.
const (
	Static         Token = "STATIC"
	Public         Token = "PUBLIC"
	Protected      Token = "PROTECTED"
	PackagePrivate Token = "PACKAGE_PRIVATE"
	Private        Token = "PRIVATE"
)

var tokenCategories = map[Token]Category{
	Field:          CategoryEntryType,
	Method:         CategoryEntryType,
	Constructor:    CategoryEntryType,
	Static:         CategoryModifier,
	Public:         CategoryModifier,
	Protected:      CategoryModifier,
	PackagePrivate: CategoryModifier,
	Private:        CategoryModifier,
}

// Category returns the category of the token, CategoryUnknown for foreign tokens.
func (t Token) Category() Category {
	return tokenCategories[t]
}

// String returns the token identifier.
func (t Token) String() string {
	return string(t)
}

// ParseToken converts a case-insensitive identifier into a known token.
func ParseToken(s string) (Token, bool) {
	t := Token(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := tokenCategories[t]; !ok {
		return "", false
	}
	return t, true
}
