package tokenizer

// eofInDoctype emits the DOCTYPE built so far, in quirks mode, followed by
// EndOfFile.
func (t *Tokenizer) eofInDoctype() (bool, State) {
	t.parseError(EOFInDoctype)
	t.builder.setForceQuirks()
	t.emitCurrent()
	t.emitEOF()
	return false, DataState
}

// bogusDoctype gives up on the DOCTYPE grammar: the token is emitted in
// quirks mode when the next '>' arrives.
func (t *Tokenizer) bogusDoctype(code ErrorCode) (bool, State) {
	t.parseError(code)
	t.builder.setForceQuirks()
	return true, BogusDoctypeState
}

func (t *Tokenizer) doctypeStateParser(r rune, eof bool) (bool, State) {
	switch {
	case eof:
		t.builder.doctype()
		return t.eofInDoctype()
	case isWhitespace(r):
		return false, BeforeDoctypeNameState
	case r == '>':
		return true, BeforeDoctypeNameState
	default:
		t.parseError(MissingWhitespaceBeforeDoctypeName)
		return true, BeforeDoctypeNameState
	}
}

func (t *Tokenizer) beforeDoctypeNameStateParser(r rune, eof bool) (bool, State) {
	switch {
	case eof:
		t.builder.doctype()
		return t.eofInDoctype()
	case isWhitespace(r):
		return false, BeforeDoctypeNameState
	case r == '\u0000':
		t.parseError(UnexpectedNullCharacter)
		t.builder.doctype()
		t.builder.writeName('\uFFFD')
		return false, DoctypeNameState
	case r == '>':
		t.parseError(MissingDoctypeName)
		t.builder.doctype()
		t.builder.setForceQuirks()
		t.emitCurrent()
		return false, DataState
	default:
		t.builder.doctype()
		t.builder.writeName(toLower(r))
		return false, DoctypeNameState
	}
}

func (t *Tokenizer) doctypeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInDoctype()
	}
	switch {
	case isWhitespace(r):
		return false, AfterDoctypeNameState
	case r == '>':
		t.emitCurrent()
		return false, DataState
	case r == '\u0000':
		t.parseError(UnexpectedNullCharacter)
		t.builder.writeName('\uFFFD')
	default:
		t.builder.writeName(toLower(r))
	}
	return false, DoctypeNameState
}

// afterDoctypeNameStateParser looks at r and the characters after it for
// the PUBLIC or SYSTEM keyword, in any case.
func (t *Tokenizer) afterDoctypeNameStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInDoctype()
	}
	switch {
	case isWhitespace(r):
		return false, AfterDoctypeNameState
	case r == '>':
		t.emitCurrent()
		return false, DataState
	case toLower(r) == 'p' && t.cursor.matchesAheadFold("ublic"):
		t.cursor.skip(len("ublic"))
		return false, AfterDoctypePublicKeywordState
	case toLower(r) == 's' && t.cursor.matchesAheadFold("ystem"):
		t.cursor.skip(len("ystem"))
		return false, AfterDoctypeSystemKeywordState
	default:
		return t.bogusDoctype(InvalidCharacterSequenceAfterDoctypeName)
	}
}

// openIdentifier starts a quoted public or system identifier.
func (t *Tokenizer) openIdentifier(quote rune, public bool) State {
	if public {
		t.builder.setPublicIdentifier()
		if quote == '"' {
			return DoctypePublicIdentifierDoubleQuotedState
		}
		return DoctypePublicIdentifierSingleQuotedState
	}
	t.builder.setSystemIdentifier()
	if quote == '"' {
		return DoctypeSystemIdentifierDoubleQuotedState
	}
	return DoctypeSystemIdentifierSingleQuotedState
}

// afterKeyword handles the character right after PUBLIC or SYSTEM.
func (t *Tokenizer) afterKeyword(r rune, eof bool, public bool) (bool, State) {
	if eof {
		return t.eofInDoctype()
	}
	missingWhitespace, missingID, missingQuote := MissingWhitespaceAfterDoctypeSystemKeyword, MissingDoctypeSystemIdentifier, MissingQuoteBeforeDoctypeSystemIdentifier
	before := BeforeDoctypeSystemIdentifierState
	if public {
		missingWhitespace, missingID, missingQuote = MissingWhitespaceAfterDoctypePublicKeyword, MissingDoctypePublicIdentifier, MissingQuoteBeforeDoctypePublicIdentifier
		before = BeforeDoctypePublicIdentifierState
	}
	switch {
	case isWhitespace(r):
		return false, before
	case r == '"' || r == '\'':
		t.parseError(missingWhitespace)
		return false, t.openIdentifier(r, public)
	case r == '>':
		t.parseError(missingID)
		t.builder.setForceQuirks()
		t.emitCurrent()
		return false, DataState
	default:
		return t.bogusDoctype(missingQuote)
	}
}

// beforeIdentifier skips whitespace up to the opening quote of an
// identifier.
func (t *Tokenizer) beforeIdentifier(r rune, eof bool, public bool, self State) (bool, State) {
	if eof {
		return t.eofInDoctype()
	}
	missingID, missingQuote := MissingDoctypeSystemIdentifier, MissingQuoteBeforeDoctypeSystemIdentifier
	if public {
		missingID, missingQuote = MissingDoctypePublicIdentifier, MissingQuoteBeforeDoctypePublicIdentifier
	}
	switch {
	case isWhitespace(r):
		return false, self
	case r == '"' || r == '\'':
		return false, t.openIdentifier(r, public)
	case r == '>':
		t.parseError(missingID)
		t.builder.setForceQuirks()
		t.emitCurrent()
		return false, DataState
	default:
		return t.bogusDoctype(missingQuote)
	}
}

// quotedIdentifier accumulates a public or system identifier up to its
// closing quote.
func (t *Tokenizer) quotedIdentifier(r rune, eof bool, quote rune, public bool, self, after State) (bool, State) {
	if eof {
		return t.eofInDoctype()
	}
	write, abrupt := t.builder.writeSystemIdentifier, AbruptDoctypeSystemIdentifier
	if public {
		write, abrupt = t.builder.writePublicIdentifier, AbruptDoctypePublicIdentifier
	}
	switch r {
	case quote:
		return false, after
	case '\u0000':
		t.parseError(UnexpectedNullCharacter)
		write('\uFFFD')
	case '>':
		t.parseError(abrupt)
		t.builder.setForceQuirks()
		t.emitCurrent()
		return false, DataState
	default:
		write(r)
	}
	return false, self
}

func (t *Tokenizer) afterDoctypePublicKeywordStateParser(r rune, eof bool) (bool, State) {
	return t.afterKeyword(r, eof, true)
}

func (t *Tokenizer) beforeDoctypePublicIdentifierStateParser(r rune, eof bool) (bool, State) {
	return t.beforeIdentifier(r, eof, true, BeforeDoctypePublicIdentifierState)
}

func (t *Tokenizer) doctypePublicIdentifierDoubleQuotedStateParser(r rune, eof bool) (bool, State) {
	return t.quotedIdentifier(r, eof, '"', true, DoctypePublicIdentifierDoubleQuotedState, AfterDoctypePublicIdentifierState)
}

func (t *Tokenizer) doctypePublicIdentifierSingleQuotedStateParser(r rune, eof bool) (bool, State) {
	return t.quotedIdentifier(r, eof, '\'', true, DoctypePublicIdentifierSingleQuotedState, AfterDoctypePublicIdentifierState)
}

func (t *Tokenizer) afterDoctypePublicIdentifierStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInDoctype()
	}
	switch {
	case isWhitespace(r):
		return false, BetweenDoctypePublicAndSystemIdentifiersState
	case r == '>':
		t.emitCurrent()
		return false, DataState
	case r == '"' || r == '\'':
		t.parseError(MissingWhitespaceBetweenDoctypePublicAndSystemIDs)
		return false, t.openIdentifier(r, false)
	default:
		return t.bogusDoctype(MissingQuoteBeforeDoctypeSystemIdentifier)
	}
}

func (t *Tokenizer) betweenDoctypePublicAndSystemIdentifiersStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInDoctype()
	}
	switch {
	case isWhitespace(r):
		return false, BetweenDoctypePublicAndSystemIdentifiersState
	case r == '>':
		t.emitCurrent()
		return false, DataState
	case r == '"' || r == '\'':
		return false, t.openIdentifier(r, false)
	default:
		return t.bogusDoctype(MissingQuoteBeforeDoctypeSystemIdentifier)
	}
}

func (t *Tokenizer) afterDoctypeSystemKeywordStateParser(r rune, eof bool) (bool, State) {
	return t.afterKeyword(r, eof, false)
}

func (t *Tokenizer) beforeDoctypeSystemIdentifierStateParser(r rune, eof bool) (bool, State) {
	return t.beforeIdentifier(r, eof, false, BeforeDoctypeSystemIdentifierState)
}

func (t *Tokenizer) doctypeSystemIdentifierDoubleQuotedStateParser(r rune, eof bool) (bool, State) {
	return t.quotedIdentifier(r, eof, '"', false, DoctypeSystemIdentifierDoubleQuotedState, AfterDoctypeSystemIdentifierState)
}

func (t *Tokenizer) doctypeSystemIdentifierSingleQuotedStateParser(r rune, eof bool) (bool, State) {
	return t.quotedIdentifier(r, eof, '\'', false, DoctypeSystemIdentifierSingleQuotedState, AfterDoctypeSystemIdentifierState)
}

// afterDoctypeSystemIdentifierStateParser only allows whitespace before the
// closing '>'. Anything else is ignored up to it without forcing quirks.
func (t *Tokenizer) afterDoctypeSystemIdentifierStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInDoctype()
	}
	switch {
	case isWhitespace(r):
		return false, AfterDoctypeSystemIdentifierState
	case r == '>':
		t.emitCurrent()
		return false, DataState
	default:
		t.parseError(UnexpectedCharacterAfterDoctypeSystemIdentifier)
		return true, BogusDoctypeState
	}
}

func (t *Tokenizer) bogusDoctypeStateParser(r rune, eof bool) (bool, State) {
	if eof {
		t.emitCurrent()
		t.emitEOF()
		return false, DataState
	}
	switch r {
	case '>':
		t.emitCurrent()
		return false, DataState
	case '\u0000':
		t.parseError(UnexpectedNullCharacter)
	}
	return false, BogusDoctypeState
}
