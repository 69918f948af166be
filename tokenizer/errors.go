package tokenizer

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvariant marks a driver logic fault, e.g. appending to an
	// attribute when no tag is being built. It is raised with panic and
	// never caused by malformed markup.
	ErrInvariant = errors.New("tokenizer invariant violated")
	// ErrEndOfInput is returned when reading past the end of the input.
	ErrEndOfInput = errors.New("end of input")
	// ErrDone is returned by Reader once the end-of-file token was taken.
	ErrDone = errors.New("tokenizer is done")
	// ErrInvalidState is returned when asked to switch to a state that
	// isn't a content state.
	ErrInvalidState = errors.New("not a content state")
)

func fault(format string, args ...interface{}) {
	panic(errors.Wrapf(ErrInvariant, format, args...))
}

// ErrorCode is the WHATWG name of a tokenization parse error.
type ErrorCode string

const (
	AbruptClosingOfEmptyComment                       ErrorCode = "abrupt-closing-of-empty-comment"
	AbruptDoctypePublicIdentifier                     ErrorCode = "abrupt-doctype-public-identifier"
	AbruptDoctypeSystemIdentifier                     ErrorCode = "abrupt-doctype-system-identifier"
	AbsenceOfDigitsInNumericCharacterReference        ErrorCode = "absence-of-digits-in-numeric-character-reference"
	CDATAInHTMLContent                                ErrorCode = "cdata-in-html-content"
	CharacterReferenceOutsideUnicodeRange             ErrorCode = "character-reference-outside-unicode-range"
	ControlCharacterReference                         ErrorCode = "control-character-reference"
	DuplicateAttribute                                ErrorCode = "duplicate-attribute"
	EndTagWithAttributes                              ErrorCode = "end-tag-with-attributes"
	EndTagWithTrailingSolidus                         ErrorCode = "end-tag-with-trailing-solidus"
	EOFBeforeTagName                                  ErrorCode = "eof-before-tag-name"
	EOFInCDATA                                        ErrorCode = "eof-in-cdata"
	EOFInComment                                      ErrorCode = "eof-in-comment"
	EOFInDoctype                                      ErrorCode = "eof-in-doctype"
	EOFInScriptHTMLCommentLikeText                    ErrorCode = "eof-in-script-html-comment-like-text"
	EOFInTag                                          ErrorCode = "eof-in-tag"
	IncorrectlyClosedComment                          ErrorCode = "incorrectly-closed-comment"
	IncorrectlyOpenedComment                          ErrorCode = "incorrectly-opened-comment"
	InvalidCharacterSequenceAfterDoctypeName          ErrorCode = "invalid-character-sequence-after-doctype-name"
	InvalidFirstCharacterOfTagName                    ErrorCode = "invalid-first-character-of-tag-name"
	MissingAttributeValue                             ErrorCode = "missing-attribute-value"
	MissingDoctypeName                                ErrorCode = "missing-doctype-name"
	MissingDoctypePublicIdentifier                    ErrorCode = "missing-doctype-public-identifier"
	MissingDoctypeSystemIdentifier                    ErrorCode = "missing-doctype-system-identifier"
	MissingEndTagName                                 ErrorCode = "missing-end-tag-name"
	MissingQuoteBeforeDoctypePublicIdentifier         ErrorCode = "missing-quote-before-doctype-public-identifier"
	MissingQuoteBeforeDoctypeSystemIdentifier         ErrorCode = "missing-quote-before-doctype-system-identifier"
	MissingSemicolonAfterCharacterReference           ErrorCode = "missing-semicolon-after-character-reference"
	MissingWhitespaceAfterDoctypePublicKeyword        ErrorCode = "missing-whitespace-after-doctype-public-keyword"
	MissingWhitespaceAfterDoctypeSystemKeyword        ErrorCode = "missing-whitespace-after-doctype-system-keyword"
	MissingWhitespaceBeforeDoctypeName                ErrorCode = "missing-whitespace-before-doctype-name"
	MissingWhitespaceBetweenAttributes                ErrorCode = "missing-whitespace-between-attributes"
	MissingWhitespaceBetweenDoctypePublicAndSystemIDs ErrorCode = "missing-whitespace-between-doctype-public-and-system-identifiers"
	NestedComment                                     ErrorCode = "nested-comment"
	NoncharacterCharacterReference                    ErrorCode = "noncharacter-character-reference"
	NullCharacterReference                            ErrorCode = "null-character-reference"
	SurrogateCharacterReference                       ErrorCode = "surrogate-character-reference"
	UnexpectedCharacterAfterDoctypeSystemIdentifier   ErrorCode = "unexpected-character-after-doctype-system-identifier"
	UnexpectedCharacterInAttributeName                ErrorCode = "unexpected-character-in-attribute-name"
	UnexpectedCharacterInUnquotedAttributeValue       ErrorCode = "unexpected-character-in-unquoted-attribute-value"
	UnexpectedEqualsSignBeforeAttributeName           ErrorCode = "unexpected-equals-sign-before-attribute-name"
	UnexpectedNullCharacter                           ErrorCode = "unexpected-null-character"
	UnexpectedQuestionMarkInsteadOfTagName            ErrorCode = "unexpected-question-mark-instead-of-tag-name"
	UnexpectedSolidusInTag                            ErrorCode = "unexpected-solidus-in-tag"
	UnknownNamedCharacterReference                    ErrorCode = "unknown-named-character-reference"
)

// ParseError is a recoverable error found in the markup. Tokenization
// always continues past it.
type ParseError struct {
	Code ErrorCode
	// Offset is the index of the offending code point in the input.
	Offset int
	// Line and Column are 1-based.
	Line   int
	Column int
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Code)
}

// ErrorHandler receives parse errors as they are found.
type ErrorHandler interface {
	ParseError(ParseError)
}

// ErrorHandlerFunc adapts a function to ErrorHandler.
type ErrorHandlerFunc func(ParseError)

// ParseError implements ErrorHandler.
func (f ErrorHandlerFunc) ParseError(e ParseError) {
	f(e)
}

// ErrorCollector keeps every parse error it is given.
type ErrorCollector struct {
	Errors []ParseError
}

// ParseError implements ErrorHandler.
func (c *ErrorCollector) ParseError(e ParseError) {
	c.Errors = append(c.Errors, e)
}

// Codes lists the codes of the collected errors in order.
func (c *ErrorCollector) Codes() []ErrorCode {
	codes := make([]ErrorCode, 0, len(c.Errors))
	for _, e := range c.Errors {
		codes = append(codes, e.Code)
	}
	return codes
}
