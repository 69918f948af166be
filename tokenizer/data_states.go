package tokenizer

func (t *Tokenizer) dataStateParser(r rune, eof bool) (bool, State) {
	if eof {
		t.emitEOF()
		return false, DataState
	}
	switch r {
	case '&':
		t.returnState = DataState
		return false, CharacterReferenceState
	case '<':
		return false, TagOpenState
	case '\u0000':
		t.parseError(UnexpectedNullCharacter)
		t.emitChar(r)
		return false, DataState
	default:
		t.emitChar(r)
		return false, DataState
	}
}

func (t *Tokenizer) rcdataStateParser(r rune, eof bool) (bool, State) {
	if eof {
		t.emitEOF()
		return false, DataState
	}
	switch r {
	case '&':
		t.returnState = RCDATAState
		return false, CharacterReferenceState
	case '<':
		return false, RCDATALessThanSignState
	case '\u0000':
		t.parseError(UnexpectedNullCharacter)
		t.emitChar('\uFFFD')
		return false, RCDATAState
	default:
		t.emitChar(r)
		return false, RCDATAState
	}
}

func (t *Tokenizer) rawtextStateParser(r rune, eof bool) (bool, State) {
	if eof {
		t.emitEOF()
		return false, DataState
	}
	switch r {
	case '<':
		return false, RAWTEXTLessThanSignState
	case '\u0000':
		t.parseError(UnexpectedNullCharacter)
		t.emitChar('\uFFFD')
		return false, RAWTEXTState
	default:
		t.emitChar(r)
		return false, RAWTEXTState
	}
}

func (t *Tokenizer) scriptDataStateParser(r rune, eof bool) (bool, State) {
	if eof {
		t.emitEOF()
		return false, DataState
	}
	switch r {
	case '<':
		return false, ScriptDataLessThanSignState
	case '\u0000':
		t.parseError(UnexpectedNullCharacter)
		t.emitChar('\uFFFD')
		return false, ScriptDataState
	default:
		t.emitChar(r)
		return false, ScriptDataState
	}
}

func (t *Tokenizer) plaintextStateParser(r rune, eof bool) (bool, State) {
	if eof {
		t.emitEOF()
		return false, DataState
	}
	switch r {
	case '\u0000':
		t.parseError(UnexpectedNullCharacter)
		t.emitChar('\uFFFD')
		return false, PLAINTEXTState
	default:
		t.emitChar(r)
		return false, PLAINTEXTState
	}
}

func (t *Tokenizer) tagOpenStateParser(r rune, eof bool) (bool, State) {
	if eof {
		t.parseError(EOFBeforeTagName)
		t.emitChar('<')
		t.emitEOF()
		return false, DataState
	}
	switch {
	case r == '!':
		return false, MarkupDeclarationOpenState
	case r == '/':
		return false, EndTagOpenState
	case isASCIIAlpha(r):
		t.builder.startTag()
		return true, TagNameState
	case r == '?':
		t.parseError(UnexpectedQuestionMarkInsteadOfTagName)
		t.builder.comment()
		return true, BogusCommentState
	default:
		t.parseError(InvalidFirstCharacterOfTagName)
		t.emitChar('<')
		return true, DataState
	}
}

func (t *Tokenizer) endTagOpenStateParser(r rune, eof bool) (bool, State) {
	if eof {
		t.parseError(EOFBeforeTagName)
		t.emitString("</")
		t.emitEOF()
		return false, DataState
	}
	switch {
	case isASCIIAlpha(r):
		t.builder.endTag()
		return true, TagNameState
	case r == '>':
		t.parseError(MissingEndTagName)
		return false, DataState
	default:
		t.parseError(InvalidFirstCharacterOfTagName)
		t.builder.comment()
		return true, BogusCommentState
	}
}

func (t *Tokenizer) tagNameStateParser(r rune, eof bool) (bool, State) {
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
	case r == '\u0000':
		t.parseError(UnexpectedNullCharacter)
		t.builder.writeName('\uFFFD')
		return false, TagNameState
	default:
		t.builder.writeName(toLower(r))
		return false, TagNameState
	}
}

// lessThanSignInContent handles a '<' seen in RCDATA or RAWTEXT: only an end
// tag can follow.
func (t *Tokenizer) lessThanSignInContent(r rune, eof bool, endTagOpen, content State) (bool, State) {
	if !eof && r == '/' {
		t.builder.resetTempBuffer()
		return false, endTagOpen
	}
	t.emitChar('<')
	return true, content
}

func (t *Tokenizer) endTagOpenInContent(r rune, eof bool, endTagName, content State) (bool, State) {
	if !eof && isASCIIAlpha(r) {
		t.builder.endTag()
		return true, endTagName
	}
	t.emitString("</")
	return true, content
}

// endTagNameInContent builds a tentative end tag inside element contents.
// Unless it turns out to be the appropriate end tag it is dropped and
// everything consumed since the '<' goes out as text.
func (t *Tokenizer) endTagNameInContent(r rune, eof bool, self, content State) (bool, State) {
	if !eof {
		switch {
		case isWhitespace(r):
			if t.isAppropriateEndTag() {
				return false, BeforeAttributeNameState
			}
		case r == '/':
			if t.isAppropriateEndTag() {
				return false, SelfClosingStartTagState
			}
		case r == '>':
			if t.isAppropriateEndTag() {
				return false, t.emitCurrentTag()
			}
		case isASCIIAlpha(r):
			t.builder.writeName(toLower(r))
			t.builder.writeTempBuffer(r)
			return false, self
		}
	}
	t.builder.discard()
	t.emitString("</")
	t.emitString(t.builder.tempBufferString())
	return true, content
}

func (t *Tokenizer) rcdataLessThanSignStateParser(r rune, eof bool) (bool, State) {
	return t.lessThanSignInContent(r, eof, RCDATAEndTagOpenState, RCDATAState)
}

func (t *Tokenizer) rcdataEndTagOpenStateParser(r rune, eof bool) (bool, State) {
	return t.endTagOpenInContent(r, eof, RCDATAEndTagNameState, RCDATAState)
}

func (t *Tokenizer) rcdataEndTagNameStateParser(r rune, eof bool) (bool, State) {
	return t.endTagNameInContent(r, eof, RCDATAEndTagNameState, RCDATAState)
}

func (t *Tokenizer) rawtextLessThanSignStateParser(r rune, eof bool) (bool, State) {
	return t.lessThanSignInContent(r, eof, RAWTEXTEndTagOpenState, RAWTEXTState)
}

func (t *Tokenizer) rawtextEndTagOpenStateParser(r rune, eof bool) (bool, State) {
	return t.endTagOpenInContent(r, eof, RAWTEXTEndTagNameState, RAWTEXTState)
}

func (t *Tokenizer) rawtextEndTagNameStateParser(r rune, eof bool) (bool, State) {
	return t.endTagNameInContent(r, eof, RAWTEXTEndTagNameState, RAWTEXTState)
}

func (t *Tokenizer) scriptDataLessThanSignStateParser(r rune, eof bool) (bool, State) {
	if !eof {
		switch r {
		case '/':
			t.builder.resetTempBuffer()
			return false, ScriptDataEndTagOpenState
		case '!':
			t.emitString("<!")
			return false, ScriptDataEscapeStartState
		}
	}
	t.emitChar('<')
	return true, ScriptDataState
}

func (t *Tokenizer) scriptDataEndTagOpenStateParser(r rune, eof bool) (bool, State) {
	return t.endTagOpenInContent(r, eof, ScriptDataEndTagNameState, ScriptDataState)
}

func (t *Tokenizer) scriptDataEndTagNameStateParser(r rune, eof bool) (bool, State) {
	return t.endTagNameInContent(r, eof, ScriptDataEndTagNameState, ScriptDataState)
}

func (t *Tokenizer) scriptDataEscapeStartStateParser(r rune, eof bool) (bool, State) {
	if !eof && r == '-' {
		t.emitChar('-')
		return false, ScriptDataEscapeStartDashState
	}
	return true, ScriptDataState
}

func (t *Tokenizer) scriptDataEscapeStartDashStateParser(r rune, eof bool) (bool, State) {
	if !eof && r == '-' {
		t.emitChar('-')
		return false, ScriptDataEscapedDashDashState
	}
	return true, ScriptDataState
}

func (t *Tokenizer) eofInScriptComment() (bool, State) {
	t.parseError(EOFInScriptHTMLCommentLikeText)
	t.emitEOF()
	return false, DataState
}

func (t *Tokenizer) scriptDataEscapedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInScriptComment()
	}
	switch r {
	case '-':
		t.emitChar('-')
		return false, ScriptDataEscapedDashState
	case '<':
		return false, ScriptDataEscapedLessThanSignState
	case '\u0000':
		t.parseError(UnexpectedNullCharacter)
		t.emitChar('\uFFFD')
		return false, ScriptDataEscapedState
	default:
		t.emitChar(r)
		return false, ScriptDataEscapedState
	}
}

func (t *Tokenizer) scriptDataEscapedDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInScriptComment()
	}
	switch r {
	case '-':
		t.emitChar('-')
		return false, ScriptDataEscapedDashDashState
	case '<':
		return false, ScriptDataEscapedLessThanSignState
	case '\u0000':
		t.parseError(UnexpectedNullCharacter)
		t.emitChar('\uFFFD')
		return false, ScriptDataEscapedState
	default:
		t.emitChar(r)
		return false, ScriptDataEscapedState
	}
}

func (t *Tokenizer) scriptDataEscapedDashDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInScriptComment()
	}
	switch r {
	case '-':
		t.emitChar('-')
		return false, ScriptDataEscapedDashDashState
	case '<':
		return false, ScriptDataEscapedLessThanSignState
	case '>':
		t.emitChar('>')
		return false, ScriptDataState
	case '\u0000':
		t.parseError(UnexpectedNullCharacter)
		t.emitChar('\uFFFD')
		return false, ScriptDataEscapedState
	default:
		t.emitChar(r)
		return false, ScriptDataEscapedState
	}
}

func (t *Tokenizer) scriptDataEscapedLessThanSignStateParser(r rune, eof bool) (bool, State) {
	switch {
	case !eof && r == '/':
		t.builder.resetTempBuffer()
		return false, ScriptDataEscapedEndTagOpenState
	case !eof && isASCIIAlpha(r):
		t.builder.resetTempBuffer()
		t.emitChar('<')
		return true, ScriptDataDoubleEscapeStartState
	default:
		t.emitChar('<')
		return true, ScriptDataEscapedState
	}
}

func (t *Tokenizer) scriptDataEscapedEndTagOpenStateParser(r rune, eof bool) (bool, State) {
	return t.endTagOpenInContent(r, eof, ScriptDataEscapedEndTagNameState, ScriptDataEscapedState)
}

func (t *Tokenizer) scriptDataEscapedEndTagNameStateParser(r rune, eof bool) (bool, State) {
	return t.endTagNameInContent(r, eof, ScriptDataEscapedEndTagNameState, ScriptDataEscapedState)
}

// doubleEscapeBoundary handles the states that watch for the word "script"
// to enter or leave double escaping. matched is where to go if the word
// was script, otherwise is where to go if it wasn't.
func (t *Tokenizer) doubleEscapeBoundary(r rune, eof bool, self, matched, otherwise State) (bool, State) {
	switch {
	case eof:
		return true, otherwise
	case isWhitespace(r) || r == '/' || r == '>':
		t.emitChar(r)
		if t.builder.tempBufferString() == "script" {
			return false, matched
		}
		return false, otherwise
	case isASCIIAlpha(r):
		t.builder.writeTempBuffer(toLower(r))
		t.emitChar(r)
		return false, self
	default:
		return true, otherwise
	}
}

func (t *Tokenizer) scriptDataDoubleEscapeStartStateParser(r rune, eof bool) (bool, State) {
	return t.doubleEscapeBoundary(r, eof, ScriptDataDoubleEscapeStartState, ScriptDataDoubleEscapedState, ScriptDataEscapedState)
}

func (t *Tokenizer) scriptDataDoubleEscapedStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInScriptComment()
	}
	switch r {
	case '-':
		t.emitChar('-')
		return false, ScriptDataDoubleEscapedDashState
	case '<':
		t.emitChar('<')
		return false, ScriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		t.parseError(UnexpectedNullCharacter)
		t.emitChar('\uFFFD')
		return false, ScriptDataDoubleEscapedState
	default:
		t.emitChar(r)
		return false, ScriptDataDoubleEscapedState
	}
}

func (t *Tokenizer) scriptDataDoubleEscapedDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInScriptComment()
	}
	switch r {
	case '-':
		t.emitChar('-')
		return false, ScriptDataDoubleEscapedDashDashState
	case '<':
		t.emitChar('<')
		return false, ScriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		t.parseError(UnexpectedNullCharacter)
		t.emitChar('\uFFFD')
		return false, ScriptDataDoubleEscapedState
	default:
		t.emitChar(r)
		return false, ScriptDataDoubleEscapedState
	}
}

func (t *Tokenizer) scriptDataDoubleEscapedDashDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInScriptComment()
	}
	switch r {
	case '-':
		t.emitChar('-')
		return false, ScriptDataDoubleEscapedDashDashState
	case '<':
		t.emitChar('<')
		return false, ScriptDataDoubleEscapedLessThanSignState
	case '>':
		t.emitChar('>')
		return false, ScriptDataState
	case '\u0000':
		t.parseError(UnexpectedNullCharacter)
		t.emitChar('\uFFFD')
		return false, ScriptDataDoubleEscapedState
	default:
		t.emitChar(r)
		return false, ScriptDataDoubleEscapedState
	}
}

func (t *Tokenizer) scriptDataDoubleEscapedLessThanSignStateParser(r rune, eof bool) (bool, State) {
	if !eof && r == '/' {
		t.builder.resetTempBuffer()
		t.emitChar('/')
		return false, ScriptDataDoubleEscapeEndState
	}
	return true, ScriptDataDoubleEscapedState
}

func (t *Tokenizer) scriptDataDoubleEscapeEndStateParser(r rune, eof bool) (bool, State) {
	return t.doubleEscapeBoundary(r, eof, ScriptDataDoubleEscapeEndState, ScriptDataEscapedState, ScriptDataDoubleEscapedState)
}
