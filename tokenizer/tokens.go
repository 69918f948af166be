package tokenizer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TokenType identifies which variant of Token is populated.
type TokenType uint

const (
	CharacterToken TokenType = iota
	StartTagToken
	EndTagToken
	CommentToken
	DoctypeToken
	EndOfFileToken
)

var tokenTypeNames = [...]string{
	CharacterToken: "Character",
	StartTagToken:  "StartTag",
	EndTagToken:    "EndTag",
	CommentToken:   "Comment",
	DoctypeToken:   "DOCTYPE",
	EndOfFileToken: "EndOfFile",
}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", uint(t))
}

// Ident is a DOCTYPE name or identifier. The zero value is missing, which is
// not the same thing as present and empty.
type Ident struct {
	Value   string
	Present bool
}

// Some returns a present Ident.
func Some(v string) Ident {
	return Ident{Value: v, Present: true}
}

func (i Ident) String() string {
	if !i.Present {
		return "<missing>"
	}
	return fmt.Sprintf("%q", i.Value)
}

// Attribute is a name/value pair on a tag. Duplicate is set on every
// attribute whose name already appeared earlier on the same tag; those are
// kept for fidelity but don't contribute a value.
type Attribute struct {
	Name      string
	Value     string
	Duplicate bool
}

// Token is a concrete token that has been emitted.
type Token struct {
	Type TokenType

	// StartTag and EndTag
	TagName     string
	SelfClosing bool
	Attributes  []Attribute

	// Comment text, or the single code point of a Character token.
	Data string

	// DOCTYPE
	Name             Ident
	PublicIdentifier Ident
	SystemIdentifier Ident
	ForceQuirks      bool
}

// Attr returns the effective value of the named attribute: the value of its
// first occurrence.
func (t Token) Attr(name string) (string, bool) {
	for _, a := range t.Attributes {
		if a.Name == name && !a.Duplicate {
			return a.Value, true
		}
	}
	return "", false
}

// EffectiveAttributes returns the attributes with duplicates left out.
func (t Token) EffectiveAttributes() []Attribute {
	attrs := make([]Attribute, 0, len(t.Attributes))
	for _, a := range t.Attributes {
		if !a.Duplicate {
			attrs = append(attrs, a)
		}
	}
	return attrs
}

// Char returns the code point carried by a Character token.
func (t Token) Char() rune {
	r, _ := utf8.DecodeRuneInString(t.Data)
	return r
}

func (t Token) String() string {
	switch t.Type {
	case CharacterToken:
		return fmt.Sprintf("Character(%q)", t.Data)
	case StartTagToken, EndTagToken:
		var b strings.Builder
		fmt.Fprintf(&b, "%s(%s", t.Type, t.TagName)
		for _, a := range t.Attributes {
			fmt.Fprintf(&b, " %s=%q", a.Name, a.Value)
			if a.Duplicate {
				b.WriteString("(dup)")
			}
		}
		if t.SelfClosing {
			b.WriteString(" /")
		}
		b.WriteString(")")
		return b.String()
	case CommentToken:
		return fmt.Sprintf("Comment(%q)", t.Data)
	case DoctypeToken:
		return fmt.Sprintf("DOCTYPE(name=%s public=%s system=%s quirks=%t)",
			t.Name, t.PublicIdentifier, t.SystemIdentifier, t.ForceQuirks)
	case EndOfFileToken:
		return "EndOfFile"
	}
	return t.Type.String()
}
