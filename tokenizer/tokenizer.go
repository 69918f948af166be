package tokenizer

import (
	"strings"

	"github.com/heathj/gobrowse-tokenizer/tokenizer/charref"
	"github.com/heathj/gobrowse-tokenizer/tokenizer/input"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Tokenizer holds state for the various states of the tokenizer. It is not
// safe for concurrent use; separate Tokenizers share nothing.
type Tokenizer struct {
	done                      bool
	returnState, currentState State
	cursor                    *cursor
	builder                   *tokenBuilder
	lastStartTagName          string
	allowCDATA                bool

	sink     Sink
	errors   ErrorHandler
	resolver *charref.Resolver
	log      logrus.FieldLogger
	debug    bool
}

// NewTokenizer creates a tokenizer over input, which must already be
// newline normalized (see package input). Tokens go to sink.
func NewTokenizer(in []rune, sink Sink, config Config) (*Tokenizer, error) {
	if sink == nil {
		return nil, errors.New("tokenizer needs a sink")
	}
	if !isContentState(config.InitialState) {
		return nil, errors.Wrapf(ErrInvalidState, "initial state %s", config.InitialState)
	}
	config = config.withDefaults()
	return &Tokenizer{
		currentState:     config.InitialState,
		cursor:           newCursor(in),
		builder:          newTokenBuilder(),
		lastStartTagName: config.LastStartTag,
		allowCDATA:       config.AllowCDATA,
		sink:             sink,
		errors:           config.Errors,
		resolver:         config.Resolver,
		log:              config.Logger,
		debug:            config.Debug,
	}, nil
}

// NewTokenizerString normalizes s and creates a tokenizer over it.
func NewTokenizerString(s string, sink Sink, config Config) (*Tokenizer, error) {
	return NewTokenizer(input.String(s), sink, config)
}

// Tokenize runs a tokenizer over s with the default configuration and
// returns every token it emitted.
func Tokenize(s string) []Token {
	var c Collector
	t, err := NewTokenizerString(s, &c, Config{})
	if err != nil {
		// only possible with a bad configuration
		panic(err)
	}
	t.Run()
	return c.Tokens
}

// Run steps the tokenizer until the EndOfFile token has been emitted.
func (t *Tokenizer) Run() {
	for t.Step() {
	}
}

// Step consumes one code point, or the end of input, and runs state
// handlers until one of them doesn't reconsume it. It returns false once
// the tokenizer is done.
func (t *Tokenizer) Step() bool {
	if t.done {
		return false
	}
	r, eof := t.cursor.next()
	t.processRune(r, eof)
	if eof && !t.done {
		fault("end of input left %s without emitting EndOfFile", t.currentState)
	}
	return !t.done
}

func (t *Tokenizer) processRune(r rune, eof bool) {
	reconsume := true
	for reconsume && !t.done {
		from := t.currentState
		reconsume, t.currentState = t.stateToParser(from)(r, eof)
		if t.debug {
			t.trace(from, r, eof, reconsume)
		}
	}
}

func (t *Tokenizer) trace(from State, r rune, eof, reconsume bool) {
	in := string(r)
	if eof {
		in = "EOF"
	}
	t.log.WithFields(logrus.Fields{
		"state":     from.String(),
		"next":      t.currentState.String(),
		"rune":      in,
		"reconsume": reconsume,
	}).Debug("tokenizer transition")
}

// Done reports whether the EndOfFile token has been emitted.
func (t *Tokenizer) Done() bool {
	return t.done
}

// State returns the state the next code point will be processed in.
func (t *Tokenizer) State() State {
	return t.currentState
}

// SetState switches to a content state. Tree construction does this after
// some start tags, e.g. to ScriptData after <script>. It fails while a
// token is being built.
func (t *Tokenizer) SetState(s State) error {
	if !isContentState(s) {
		return errors.Wrapf(ErrInvalidState, "switching to %s", s)
	}
	if t.builder.pending() {
		return errors.Wrapf(ErrInvalidState, "switching to %s while a %s is pending", s, t.builder.kind)
	}
	t.currentState = s
	return nil
}

// LastStartTagName is the name of the last start tag emitted or set.
func (t *Tokenizer) LastStartTagName() string {
	return t.lastStartTagName
}

// SetLastStartTagName sets the name appropriate end tags are matched
// against.
func (t *Tokenizer) SetLastStartTagName(name string) {
	t.lastStartTagName = strings.ToLower(name)
}

// SetAllowCDATA tells the tokenizer whether the adjusted current node is in
// foreign content, where <![CDATA[ opens a CDATA section.
func (t *Tokenizer) SetAllowCDATA(allow bool) {
	t.allowCDATA = allow
}

func (t *Tokenizer) emit(token Token) {
	if t.done {
		fault("emitting %s after EndOfFile", token.Type)
	}
	switch token.Type {
	case StartTagToken:
		t.lastStartTagName = token.TagName
	case EndTagToken:
		if len(token.Attributes) > 0 {
			t.parseError(EndTagWithAttributes)
		}
		if token.SelfClosing {
			t.parseError(EndTagWithTrailingSolidus)
		}
	case EndOfFileToken:
		t.done = true
	}
	t.sink.Accept(token)
}

func (t *Tokenizer) emitChar(r rune) {
	t.emit(Token{Type: CharacterToken, Data: string(r)})
}

func (t *Tokenizer) emitString(s string) {
	for _, r := range s {
		t.emitChar(r)
	}
}

func (t *Tokenizer) emitEOF() {
	t.emit(Token{Type: EndOfFileToken})
}

// emitCurrent emits the token under construction.
func (t *Tokenizer) emitCurrent() {
	t.emit(t.builder.take())
}

// emitCurrentTag emits the tag under construction and returns to Data.
func (t *Tokenizer) emitCurrentTag() State {
	t.emitCurrent()
	return DataState
}

// eofInTag drops the tag under construction and ends the token stream.
func (t *Tokenizer) eofInTag() (bool, State) {
	t.parseError(EOFInTag)
	t.builder.discard()
	t.emitEOF()
	return false, DataState
}

func (t *Tokenizer) parseError(code ErrorCode) {
	line, col := t.cursor.position()
	e := ParseError{
		Code:   code,
		Offset: t.cursor.offset(),
		Line:   line,
		Column: col,
	}
	t.log.WithFields(logrus.Fields{
		"code":  string(code),
		"state": t.currentState.String(),
		"line":  line,
		"col":   col,
	}).Debug("parse error")
	if t.errors != nil {
		t.errors.ParseError(e)
	}
}

// isAppropriateEndTag reports whether the end tag under construction closes
// the element whose contents are being tokenized. There is none before a
// start tag has been seen.
func (t *Tokenizer) isAppropriateEndTag() bool {
	return t.lastStartTagName != "" && t.builder.tagName() == t.lastStartTagName
}

func (t *Tokenizer) flushCodePointsConsumedAsCharacterReference() {
	if isAttributeValueState(t.returnState) {
		t.builder.writeAttributeValueString(t.builder.tempBufferString())
		return
	}
	t.emitString(t.builder.tempBufferString())
}

func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', ' ':
		return true
	}
	return false
}

func isASCIIUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isASCIILower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isASCIIAlpha(r rune) bool {
	return isASCIIUpper(r) || isASCIILower(r)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIIAlphanumeric(r rune) bool {
	return isASCIIAlpha(r) || isASCIIDigit(r)
}

func hexValue(r rune) (int, bool) {
	switch {
	case isASCIIDigit(r):
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}

func toLower(r rune) rune {
	if isASCIIUpper(r) {
		return r + 0x20
	}
	return r
}
