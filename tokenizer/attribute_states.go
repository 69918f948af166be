package tokenizer

func (t *Tokenizer) beforeAttributeNameStateParser(r rune, eof bool) (bool, State) {
	switch {
	case eof || r == '/' || r == '>':
		return true, AfterAttributeNameState
	case isWhitespace(r):
		return false, BeforeAttributeNameState
	case r == '=':
		t.parseError(UnexpectedEqualsSignBeforeAttributeName)
		t.builder.beginAttribute()
		t.builder.writeAttributeName(r)
		return false, AttributeNameState
	default:
		t.builder.beginAttribute()
		return true, AttributeNameState
	}
}

// leaveAttributeName runs the duplicate check when the attribute name is
// complete.
func (t *Tokenizer) leaveAttributeName() {
	if t.builder.finishAttributeName() {
		t.parseError(DuplicateAttribute)
	}
}

func (t *Tokenizer) attributeNameStateParser(r rune, eof bool) (bool, State) {
	switch {
	case eof || isWhitespace(r) || r == '/' || r == '>':
		t.leaveAttributeName()
		return true, AfterAttributeNameState
	case r == '=':
		t.leaveAttributeName()
		return false, BeforeAttributeValueState
	case r == '\u0000':
		t.parseError(UnexpectedNullCharacter)
		t.builder.writeAttributeName('\uFFFD')
	case r == '"' || r == '\'' || r == '<':
		t.parseError(UnexpectedCharacterInAttributeName)
		t.builder.writeAttributeName(r)
	default:
		t.builder.writeAttributeName(toLower(r))
	}
	return false, AttributeNameState
}

func (t *Tokenizer) afterAttributeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInTag()
	}
	switch {
	case isWhitespace(r):
		return false, AfterAttributeNameState
	case r == '/':
		return false, SelfClosingStartTagState
	case r == '=':
		return false, BeforeAttributeValueState
	case r == '>':
		return false, t.emitCurrentTag()
	default:
		t.builder.beginAttribute()
		return true, AttributeNameState
	}
}

func (t *Tokenizer) beforeAttributeValueStateParser(r rune, eof bool) (bool, State) {
	switch {
	case eof:
		return true, AttributeValueUnquotedState
	case isWhitespace(r):
		return false, BeforeAttributeValueState
	case r == '"':
		return false, AttributeValueDoubleQuotedState
	case r == '\'':
		return false, AttributeValueSingleQuotedState
	case r == '>':
		t.parseError(MissingAttributeValue)
		return false, t.emitCurrentTag()
	default:
		return true, AttributeValueUnquotedState
	}
}

func (t *Tokenizer) quotedAttributeValue(r rune, eof bool, quote rune, self State) (bool, State) {
	if eof {
		return t.eofInTag()
	}
	switch r {
	case quote:
		return false, AfterAttributeValueQuotedState
	case '&':
		t.returnState = self
		return false, CharacterReferenceState
	case '\u0000':
		t.parseError(UnexpectedNullCharacter)
		t.builder.writeAttributeValue('\uFFFD')
	default:
		t.builder.writeAttributeValue(r)
	}
	return false, self
}

func (t *Tokenizer) attributeValueDoubleQuotedStateParser(r rune, eof bool) (bool, State) {
	return t.quotedAttributeValue(r, eof, '"', AttributeValueDoubleQuotedState)
}

func (t *Tokenizer) attributeValueSingleQuotedStateParser(r rune, eof bool) (bool, State) {
	return t.quotedAttributeValue(r, eof, '\'', AttributeValueSingleQuotedState)
}

func (t *Tokenizer) attributeValueUnquotedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInTag()
	}
	switch {
	case isWhitespace(r):
		return false, BeforeAttributeNameState
	case r == '&':
		t.returnState = AttributeValueUnquotedState
		return false, CharacterReferenceState
	case r == '>':
		return false, t.emitCurrentTag()
	case r == '\u0000':
		t.parseError(UnexpectedNullCharacter)
		t.builder.writeAttributeValue('\uFFFD')
	case r == '"' || r == '\'' || r == '<' || r == '=' || r == '`':
		t.parseError(UnexpectedCharacterInUnquotedAttributeValue)
		t.builder.writeAttributeValue(r)
	default:
		t.builder.writeAttributeValue(r)
	}
	return false, AttributeValueUnquotedState
}

func (t *Tokenizer) afterAttributeValueQuotedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInTag()
	}
	switch {
	case isWhitespace(r):
		return false, BeforeAttributeNameState
	case r == '/':
		return false, SelfClosingStartTagState
	case r == '>':
		return false, t.emitCurrentTag()
	default:
		t.parseError(MissingWhitespaceBetweenAttributes)
		return true, BeforeAttributeNameState
	}
}

func (t *Tokenizer) selfClosingStartTagStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInTag()
	}
	if r == '>' {
		t.builder.setSelfClosing()
		return false, t.emitCurrentTag()
	}
	t.parseError(UnexpectedSolidusInTag)
	return true, BeforeAttributeNameState
}
