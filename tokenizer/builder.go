package tokenizer

import (
	"strings"
)

type builderKind uint

const (
	noToken builderKind = iota
	startTagKind
	endTagKind
	commentKind
	doctypeKind
)

var builderKindNames = [...]string{
	noToken:      "none",
	startTagKind: "start tag",
	endTagKind:   "end tag",
	commentKind:  "comment",
	doctypeKind:  "DOCTYPE",
}

func (k builderKind) String() string {
	return builderKindNames[k]
}

// tokenBuilder holds the token currently under construction along with the
// temporary buffer and the character reference code. At most one token is
// pending at a time.
type tokenBuilder struct {
	kind builderKind

	name     strings.Builder
	data     strings.Builder
	publicID strings.Builder
	systemID strings.Builder
	// DOCTYPE name and identifiers start missing
	hasName, hasPublicID, hasSystemID bool

	selfClosing bool
	forceQuirks bool

	attrs          []Attribute
	inAttr         bool
	attrName       strings.Builder
	attrValue      strings.Builder
	attrDuplicate  bool
	attrNameClosed bool

	tempBuffer             strings.Builder
	characterReferenceCode int
}

func newTokenBuilder() *tokenBuilder {
	return &tokenBuilder{}
}

func (b *tokenBuilder) pending() bool {
	return b.kind != noToken
}

func (b *tokenBuilder) begin(kind builderKind) {
	if b.kind != noToken {
		fault("starting a %s while a %s is pending", kind, b.kind)
	}
	b.kind = kind
	b.name.Reset()
	b.data.Reset()
	b.publicID.Reset()
	b.systemID.Reset()
	b.hasName, b.hasPublicID, b.hasSystemID = false, false, false
	b.selfClosing = false
	b.forceQuirks = false
	b.attrs = nil
	b.resetAttribute()
	b.inAttr = false
}

func (b *tokenBuilder) startTag() { b.begin(startTagKind) }
func (b *tokenBuilder) endTag()   { b.begin(endTagKind) }
func (b *tokenBuilder) comment()  { b.begin(commentKind) }
func (b *tokenBuilder) doctype()  { b.begin(doctypeKind) }

// discard drops the pending token without emitting it.
func (b *tokenBuilder) discard() {
	b.kind = noToken
	b.attrs = nil
	b.inAttr = false
}

func (b *tokenBuilder) expectTag(op string) {
	if b.kind != startTagKind && b.kind != endTagKind {
		fault("%s on a %s", op, b.kind)
	}
}

func (b *tokenBuilder) expect(kind builderKind, op string) {
	if b.kind != kind {
		fault("%s on a %s", op, b.kind)
	}
}

// writeName appends to a tag name or a DOCTYPE name.
func (b *tokenBuilder) writeName(r rune) {
	switch b.kind {
	case startTagKind, endTagKind:
	case doctypeKind:
		b.hasName = true
	default:
		fault("writing a name on a %s", b.kind)
	}
	b.name.WriteRune(r)
}

// tagName is the name written so far.
func (b *tokenBuilder) tagName() string {
	return b.name.String()
}

func (b *tokenBuilder) writeData(r rune) {
	b.expect(commentKind, "writing comment data")
	b.data.WriteRune(r)
}

func (b *tokenBuilder) writeDataString(s string) {
	b.expect(commentKind, "writing comment data")
	b.data.WriteString(s)
}

func (b *tokenBuilder) setSelfClosing() {
	b.expectTag("setting self-closing")
	b.selfClosing = true
}

func (b *tokenBuilder) setForceQuirks() {
	b.expect(doctypeKind, "setting force-quirks")
	b.forceQuirks = true
}

// setPublicIdentifier marks the public identifier present and empty.
func (b *tokenBuilder) setPublicIdentifier() {
	b.expect(doctypeKind, "setting the public identifier")
	b.publicID.Reset()
	b.hasPublicID = true
}

func (b *tokenBuilder) writePublicIdentifier(r rune) {
	b.expect(doctypeKind, "writing the public identifier")
	b.hasPublicID = true
	b.publicID.WriteRune(r)
}

// setSystemIdentifier marks the system identifier present and empty.
func (b *tokenBuilder) setSystemIdentifier() {
	b.expect(doctypeKind, "setting the system identifier")
	b.systemID.Reset()
	b.hasSystemID = true
}

func (b *tokenBuilder) writeSystemIdentifier(r rune) {
	b.expect(doctypeKind, "writing the system identifier")
	b.hasSystemID = true
	b.systemID.WriteRune(r)
}

func (b *tokenBuilder) resetAttribute() {
	b.attrName.Reset()
	b.attrValue.Reset()
	b.attrDuplicate = false
	b.attrNameClosed = false
}

// beginAttribute commits the attribute in progress, if any, and starts a new
// one with an empty name and value.
func (b *tokenBuilder) beginAttribute() {
	b.expectTag("starting an attribute")
	b.commitAttribute()
	b.inAttr = true
}

func (b *tokenBuilder) writeAttributeName(r rune) {
	b.expectTag("writing an attribute name")
	if !b.inAttr {
		fault("writing an attribute name with no attribute started")
	}
	b.attrName.WriteRune(r)
}

// finishAttributeName is called on leaving the attribute name state. It
// reports whether the name was already used on this tag.
func (b *tokenBuilder) finishAttributeName() (duplicate bool) {
	b.expectTag("finishing an attribute name")
	if !b.inAttr || b.attrNameClosed {
		return false
	}
	b.attrNameClosed = true
	name := b.attrName.String()
	for _, a := range b.attrs {
		if a.Name == name {
			b.attrDuplicate = true
			return true
		}
	}
	return false
}

func (b *tokenBuilder) writeAttributeValue(r rune) {
	b.expectTag("writing an attribute value")
	if !b.inAttr {
		fault("writing an attribute value with no attribute started")
	}
	b.attrValue.WriteRune(r)
}

func (b *tokenBuilder) writeAttributeValueString(s string) {
	for _, r := range s {
		b.writeAttributeValue(r)
	}
}

func (b *tokenBuilder) commitAttribute() {
	if !b.inAttr {
		return
	}
	b.attrs = append(b.attrs, Attribute{
		Name:      b.attrName.String(),
		Value:     b.attrValue.String(),
		Duplicate: b.attrDuplicate,
	})
	b.inAttr = false
	b.resetAttribute()
}

// take finishes the pending token and hands it over. The builder is empty
// afterwards.
func (b *tokenBuilder) take() Token {
	var t Token
	switch b.kind {
	case startTagKind, endTagKind:
		b.commitAttribute()
		t.Type = StartTagToken
		if b.kind == endTagKind {
			t.Type = EndTagToken
		}
		t.TagName = b.name.String()
		t.SelfClosing = b.selfClosing
		t.Attributes = b.attrs
	case commentKind:
		t.Type = CommentToken
		t.Data = b.data.String()
	case doctypeKind:
		t.Type = DoctypeToken
		t.Name = Ident{Value: b.name.String(), Present: b.hasName}
		t.PublicIdentifier = Ident{Value: b.publicID.String(), Present: b.hasPublicID}
		t.SystemIdentifier = Ident{Value: b.systemID.String(), Present: b.hasSystemID}
		t.ForceQuirks = b.forceQuirks
	default:
		fault("taking a token when none is pending")
	}
	b.kind = noToken
	b.attrs = nil
	return t
}

func (b *tokenBuilder) writeTempBuffer(r rune) {
	b.tempBuffer.WriteRune(r)
}

func (b *tokenBuilder) writeTempBufferString(s string) {
	b.tempBuffer.WriteString(s)
}

func (b *tokenBuilder) resetTempBuffer() {
	b.tempBuffer.Reset()
}

func (b *tokenBuilder) tempBufferString() string {
	return b.tempBuffer.String()
}

func (b *tokenBuilder) setCharRef(i int) {
	b.characterReferenceCode = i
}

func (b *tokenBuilder) charRef() int {
	return b.characterReferenceCode
}
