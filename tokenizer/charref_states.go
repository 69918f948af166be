package tokenizer

import (
	"github.com/heathj/gobrowse-tokenizer/tokenizer/charref"
)

func (t *Tokenizer) characterReferenceStateParser(r rune, eof bool) (bool, State) {
	t.builder.resetTempBuffer()
	t.builder.writeTempBuffer('&')
	switch {
	case !eof && isASCIIAlphanumeric(r):
		return true, NamedCharacterReferenceState
	case !eof && r == '#':
		t.builder.writeTempBuffer(r)
		return false, NumericCharacterReferenceState
	default:
		t.flushCodePointsConsumedAsCharacterReference()
		return true, t.returnState
	}
}

// namedCharacterReferenceStateParser is entered with r being the first
// alphanumeric after the ampersand. The longest identifier in the table
// starting at r wins; the rest of it is consumed here.
func (t *Tokenizer) namedCharacterReferenceStateParser(r rune, eof bool) (bool, State) {
	if eof {
		t.flushCodePointsConsumedAsCharacterReference()
		return true, t.returnState
	}

	candidate := string(r) + t.cursor.lookahead(charref.MaxNameLength-1)
	name, value, ok := t.resolver.Longest(candidate)
	if !ok {
		t.flushCodePointsConsumedAsCharacterReference()
		return true, AmbiguousAmpersandState
	}

	// identifiers are ASCII, so bytes and code points agree
	t.cursor.skip(len(name) - 1)
	t.builder.writeTempBufferString(name)
	terminated := name[len(name)-1] == ';'

	// In attribute values "&amp=" and "&ampx" stay as written for
	// compatibility with old content.
	if !terminated && isAttributeValueState(t.returnState) {
		if next, ok := t.cursor.peek(0); ok && (next == '=' || isASCIIAlphanumeric(next)) {
			t.flushCodePointsConsumedAsCharacterReference()
			return false, t.returnState
		}
	}
	if !terminated {
		t.parseError(MissingSemicolonAfterCharacterReference)
	}
	t.builder.resetTempBuffer()
	t.builder.writeTempBufferString(value)
	t.flushCodePointsConsumedAsCharacterReference()
	return false, t.returnState
}

func (t *Tokenizer) ambiguousAmpersandStateParser(r rune, eof bool) (bool, State) {
	switch {
	case !eof && isASCIIAlphanumeric(r):
		if isAttributeValueState(t.returnState) {
			t.builder.writeAttributeValue(r)
		} else {
			t.emitChar(r)
		}
		return false, AmbiguousAmpersandState
	case !eof && r == ';':
		t.parseError(UnknownNamedCharacterReference)
		return true, t.returnState
	default:
		return true, t.returnState
	}
}

func (t *Tokenizer) numericCharacterReferenceStateParser(r rune, eof bool) (bool, State) {
	t.builder.setCharRef(0)
	if !eof && (r == 'x' || r == 'X') {
		t.builder.writeTempBuffer(r)
		return false, HexadecimalCharacterReferenceStartState
	}
	return true, DecimalCharacterReferenceStartState
}

// absenceOfDigits gives back "&#" or "&#x" as text.
func (t *Tokenizer) absenceOfDigits() (bool, State) {
	t.parseError(AbsenceOfDigitsInNumericCharacterReference)
	t.flushCodePointsConsumedAsCharacterReference()
	return true, t.returnState
}

func (t *Tokenizer) hexadecimalCharacterReferenceStartStateParser(r rune, eof bool) (bool, State) {
	if _, ok := hexValue(r); ok && !eof {
		return true, HexadecimalCharacterReferenceState
	}
	return t.absenceOfDigits()
}

func (t *Tokenizer) decimalCharacterReferenceStartStateParser(r rune, eof bool) (bool, State) {
	if !eof && isASCIIDigit(r) {
		return true, DecimalCharacterReferenceState
	}
	return t.absenceOfDigits()
}

func (t *Tokenizer) hexadecimalCharacterReferenceStateParser(r rune, eof bool) (bool, State) {
	if !eof {
		if v, ok := hexValue(r); ok {
			t.builder.setCharRef(charref.CapCode(t.builder.charRef()*16 + v))
			return false, HexadecimalCharacterReferenceState
		}
		if r == ';' {
			return false, NumericCharacterReferenceEndState
		}
	}
	t.parseError(MissingSemicolonAfterCharacterReference)
	return true, NumericCharacterReferenceEndState
}

func (t *Tokenizer) decimalCharacterReferenceStateParser(r rune, eof bool) (bool, State) {
	if !eof {
		if isASCIIDigit(r) {
			t.builder.setCharRef(charref.CapCode(t.builder.charRef()*10 + int(r-'0')))
			return false, DecimalCharacterReferenceState
		}
		if r == ';' {
			return false, NumericCharacterReferenceEndState
		}
	}
	t.parseError(MissingSemicolonAfterCharacterReference)
	return true, NumericCharacterReferenceEndState
}

// numericCharacterReferenceEndStateParser consumes nothing: r is handed on
// to the return state once the reference has been flushed.
func (t *Tokenizer) numericCharacterReferenceEndStateParser(r rune, eof bool) (bool, State) {
	c, problem := charref.Numeric(t.builder.charRef())
	if problem != charref.NoProblem {
		t.parseError(ErrorCode(problem.String()))
	}
	t.builder.resetTempBuffer()
	t.builder.writeTempBuffer(c)
	t.flushCodePointsConsumedAsCharacterReference()
	return true, t.returnState
}
