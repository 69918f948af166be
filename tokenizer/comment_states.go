package tokenizer

// eofInComment emits the comment built so far followed by EndOfFile.
func (t *Tokenizer) eofInComment() (bool, State) {
	t.parseError(EOFInComment)
	t.emitCurrent()
	t.emitEOF()
	return false, DataState
}

func (t *Tokenizer) bogusCommentStateParser(r rune, eof bool) (bool, State) {
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
		t.builder.writeData('\uFFFD')
	default:
		t.builder.writeData(r)
	}
	return false, BogusCommentState
}

// markupDeclarationOpenStateParser looks at r and the characters after it
// for "--", "DOCTYPE" or "[CDATA[".
func (t *Tokenizer) markupDeclarationOpenStateParser(r rune, eof bool) (bool, State) {
	switch {
	case eof:
	case r == '-' && t.cursor.matchesAhead("-"):
		t.cursor.skip(1)
		t.builder.comment()
		return false, CommentStartState
	case toLower(r) == 'd' && t.cursor.matchesAheadFold("octype"):
		t.cursor.skip(len("octype"))
		return false, DoctypeState
	case r == '[' && t.cursor.matchesAhead("CDATA["):
		t.cursor.skip(len("CDATA["))
		if t.allowCDATA {
			return false, CDATASectionState
		}
		t.parseError(CDATAInHTMLContent)
		t.builder.comment()
		t.builder.writeDataString("[CDATA[")
		return false, BogusCommentState
	}
	t.parseError(IncorrectlyOpenedComment)
	t.builder.comment()
	return true, BogusCommentState
}

func (t *Tokenizer) commentStartStateParser(r rune, eof bool) (bool, State) {
	switch {
	case eof:
		return true, CommentState
	case r == '-':
		return false, CommentStartDashState
	case r == '>':
		t.parseError(AbruptClosingOfEmptyComment)
		t.emitCurrent()
		return false, DataState
	default:
		return true, CommentState
	}
}

func (t *Tokenizer) commentStartDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInComment()
	}
	switch r {
	case '-':
		return false, CommentEndState
	case '>':
		t.parseError(AbruptClosingOfEmptyComment)
		t.emitCurrent()
		return false, DataState
	default:
		t.builder.writeData('-')
		return true, CommentState
	}
}

func (t *Tokenizer) commentStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInComment()
	}
	switch r {
	case '<':
		t.builder.writeData(r)
		return false, CommentLessThanSignState
	case '-':
		return false, CommentEndDashState
	case '\u0000':
		t.parseError(UnexpectedNullCharacter)
		t.builder.writeData('\uFFFD')
	default:
		t.builder.writeData(r)
	}
	return false, CommentState
}

func (t *Tokenizer) commentLessThanSignStateParser(r rune, eof bool) (bool, State) {
	switch {
	case eof:
		return true, CommentState
	case r == '!':
		t.builder.writeData(r)
		return false, CommentLessThanSignBangState
	case r == '<':
		t.builder.writeData(r)
		return false, CommentLessThanSignState
	default:
		return true, CommentState
	}
}

func (t *Tokenizer) commentLessThanSignBangStateParser(r rune, eof bool) (bool, State) {
	if !eof && r == '-' {
		return false, CommentLessThanSignBangDashState
	}
	return true, CommentState
}

func (t *Tokenizer) commentLessThanSignBangDashStateParser(r rune, eof bool) (bool, State) {
	if !eof && r == '-' {
		return false, CommentLessThanSignBangDashDashState
	}
	return true, CommentEndDashState
}

// commentLessThanSignBangDashDashStateParser has seen "<!--" inside a
// comment.
func (t *Tokenizer) commentLessThanSignBangDashDashStateParser(r rune, eof bool) (bool, State) {
	if !eof && r != '>' {
		t.parseError(NestedComment)
	}
	return true, CommentEndState
}

func (t *Tokenizer) commentEndDashStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInComment()
	}
	if r == '-' {
		return false, CommentEndState
	}
	t.builder.writeData('-')
	return true, CommentState
}

func (t *Tokenizer) commentEndStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInComment()
	}
	switch r {
	case '>':
		t.emitCurrent()
		return false, DataState
	case '!':
		return false, CommentEndBangState
	case '-':
		t.builder.writeData('-')
		return false, CommentEndState
	default:
		t.builder.writeDataString("--")
		return true, CommentState
	}
}

// commentEndBangStateParser handles "--!". Followed by '>' it still closes
// the comment; otherwise the dashes and the bang are comment text.
func (t *Tokenizer) commentEndBangStateParser(r rune, eof bool) (bool, State) {
	if eof {
		return t.eofInComment()
	}
	switch r {
	case '-':
		t.builder.writeDataString("--!")
		return false, CommentEndDashState
	case '>':
		t.parseError(IncorrectlyClosedComment)
		t.emitCurrent()
		return false, DataState
	default:
		t.builder.writeDataString("--!")
		return true, CommentState
	}
}

func (t *Tokenizer) cdataSectionStateParser(r rune, eof bool) (bool, State) {
	if eof {
		t.parseError(EOFInCDATA)
		t.emitEOF()
		return false, DataState
	}
	if r == ']' {
		return false, CDATASectionBracketState
	}
	t.emitChar(r)
	return false, CDATASectionState
}

func (t *Tokenizer) cdataSectionBracketStateParser(r rune, eof bool) (bool, State) {
	if !eof && r == ']' {
		return false, CDATASectionEndState
	}
	t.emitChar(']')
	return true, CDATASectionState
}

func (t *Tokenizer) cdataSectionEndStateParser(r rune, eof bool) (bool, State) {
	switch {
	case eof:
	case r == ']':
		t.emitChar(']')
		return false, CDATASectionEndState
	case r == '>':
		return false, DataState
	}
	t.emitString("]]")
	return true, CDATASectionState
}
