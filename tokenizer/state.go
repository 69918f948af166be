package tokenizer

import "fmt"

// State is one of the tokenizer's states. The first five, together with
// CDATASection, are the content states a tree builder may switch to.
type State uint

const (
	DataState State = iota
	RCDATAState
	RAWTEXTState
	ScriptDataState
	PLAINTEXTState
	TagOpenState
	EndTagOpenState
	TagNameState
	RCDATALessThanSignState
	RCDATAEndTagOpenState
	RCDATAEndTagNameState
	RAWTEXTLessThanSignState
	RAWTEXTEndTagOpenState
	RAWTEXTEndTagNameState
	ScriptDataLessThanSignState
	ScriptDataEndTagOpenState
	ScriptDataEndTagNameState
	ScriptDataEscapeStartState
	ScriptDataEscapeStartDashState
	ScriptDataEscapedState
	ScriptDataEscapedDashState
	ScriptDataEscapedDashDashState
	ScriptDataEscapedLessThanSignState
	ScriptDataEscapedEndTagOpenState
	ScriptDataEscapedEndTagNameState
	ScriptDataDoubleEscapeStartState
	ScriptDataDoubleEscapedState
	ScriptDataDoubleEscapedDashState
	ScriptDataDoubleEscapedDashDashState
	ScriptDataDoubleEscapedLessThanSignState
	ScriptDataDoubleEscapeEndState
	BeforeAttributeNameState
	AttributeNameState
	AfterAttributeNameState
	BeforeAttributeValueState
	AttributeValueDoubleQuotedState
	AttributeValueSingleQuotedState
	AttributeValueUnquotedState
	AfterAttributeValueQuotedState
	SelfClosingStartTagState
	BogusCommentState
	MarkupDeclarationOpenState
	CommentStartState
	CommentStartDashState
	CommentState
	CommentLessThanSignState
	CommentLessThanSignBangState
	CommentLessThanSignBangDashState
	CommentLessThanSignBangDashDashState
	CommentEndDashState
	CommentEndState
	CommentEndBangState
	DoctypeState
	BeforeDoctypeNameState
	DoctypeNameState
	AfterDoctypeNameState
	AfterDoctypePublicKeywordState
	BeforeDoctypePublicIdentifierState
	DoctypePublicIdentifierDoubleQuotedState
	DoctypePublicIdentifierSingleQuotedState
	AfterDoctypePublicIdentifierState
	BetweenDoctypePublicAndSystemIdentifiersState
	AfterDoctypeSystemKeywordState
	BeforeDoctypeSystemIdentifierState
	DoctypeSystemIdentifierDoubleQuotedState
	DoctypeSystemIdentifierSingleQuotedState
	AfterDoctypeSystemIdentifierState
	BogusDoctypeState
	CDATASectionState
	CDATASectionBracketState
	CDATASectionEndState
	CharacterReferenceState
	NamedCharacterReferenceState
	AmbiguousAmpersandState
	NumericCharacterReferenceState
	HexadecimalCharacterReferenceStartState
	DecimalCharacterReferenceStartState
	HexadecimalCharacterReferenceState
	DecimalCharacterReferenceState
	NumericCharacterReferenceEndState
)

var stateNames = [...]string{
	DataState:                                     "Data",
	RCDATAState:                                   "RCDATA",
	RAWTEXTState:                                  "RAWTEXT",
	ScriptDataState:                               "ScriptData",
	PLAINTEXTState:                                "PLAINTEXT",
	TagOpenState:                                  "TagOpen",
	EndTagOpenState:                               "EndTagOpen",
	TagNameState:                                  "TagName",
	RCDATALessThanSignState:                       "RCDATALessThanSign",
	RCDATAEndTagOpenState:                         "RCDATAEndTagOpen",
	RCDATAEndTagNameState:                         "RCDATAEndTagName",
	RAWTEXTLessThanSignState:                      "RAWTEXTLessThanSign",
	RAWTEXTEndTagOpenState:                        "RAWTEXTEndTagOpen",
	RAWTEXTEndTagNameState:                        "RAWTEXTEndTagName",
	ScriptDataLessThanSignState:                   "ScriptDataLessThanSign",
	ScriptDataEndTagOpenState:                     "ScriptDataEndTagOpen",
	ScriptDataEndTagNameState:                     "ScriptDataEndTagName",
	ScriptDataEscapeStartState:                    "ScriptDataEscapeStart",
	ScriptDataEscapeStartDashState:                "ScriptDataEscapeStartDash",
	ScriptDataEscapedState:                        "ScriptDataEscaped",
	ScriptDataEscapedDashState:                    "ScriptDataEscapedDash",
	ScriptDataEscapedDashDashState:                "ScriptDataEscapedDashDash",
	ScriptDataEscapedLessThanSignState:            "ScriptDataEscapedLessThanSign",
	ScriptDataEscapedEndTagOpenState:              "ScriptDataEscapedEndTagOpen",
	ScriptDataEscapedEndTagNameState:              "ScriptDataEscapedEndTagName",
	ScriptDataDoubleEscapeStartState:              "ScriptDataDoubleEscapeStart",
	ScriptDataDoubleEscapedState:                  "ScriptDataDoubleEscaped",
	ScriptDataDoubleEscapedDashState:              "ScriptDataDoubleEscapedDash",
	ScriptDataDoubleEscapedDashDashState:          "ScriptDataDoubleEscapedDashDash",
	ScriptDataDoubleEscapedLessThanSignState:      "ScriptDataDoubleEscapedLessThanSign",
	ScriptDataDoubleEscapeEndState:                "ScriptDataDoubleEscapeEnd",
	BeforeAttributeNameState:                      "BeforeAttributeName",
	AttributeNameState:                            "AttributeName",
	AfterAttributeNameState:                       "AfterAttributeName",
	BeforeAttributeValueState:                     "BeforeAttributeValue",
	AttributeValueDoubleQuotedState:               "AttributeValueDoubleQuoted",
	AttributeValueSingleQuotedState:               "AttributeValueSingleQuoted",
	AttributeValueUnquotedState:                   "AttributeValueUnquoted",
	AfterAttributeValueQuotedState:                "AfterAttributeValueQuoted",
	SelfClosingStartTagState:                      "SelfClosingStartTag",
	BogusCommentState:                             "BogusComment",
	MarkupDeclarationOpenState:                    "MarkupDeclarationOpen",
	CommentStartState:                             "CommentStart",
	CommentStartDashState:                         "CommentStartDash",
	CommentState:                                  "Comment",
	CommentLessThanSignState:                      "CommentLessThanSign",
	CommentLessThanSignBangState:                  "CommentLessThanSignBang",
	CommentLessThanSignBangDashState:              "CommentLessThanSignBangDash",
	CommentLessThanSignBangDashDashState:          "CommentLessThanSignBangDashDash",
	CommentEndDashState:                           "CommentEndDash",
	CommentEndState:                               "CommentEnd",
	CommentEndBangState:                           "CommentEndBang",
	DoctypeState:                                  "DOCTYPE",
	BeforeDoctypeNameState:                        "BeforeDOCTYPEName",
	DoctypeNameState:                              "DOCTYPEName",
	AfterDoctypeNameState:                         "AfterDOCTYPEName",
	AfterDoctypePublicKeywordState:                "AfterDOCTYPEPublicKeyword",
	BeforeDoctypePublicIdentifierState:            "BeforeDOCTYPEPublicIdentifier",
	DoctypePublicIdentifierDoubleQuotedState:      "DOCTYPEPublicIdentifierDoubleQuoted",
	DoctypePublicIdentifierSingleQuotedState:      "DOCTYPEPublicIdentifierSingleQuoted",
	AfterDoctypePublicIdentifierState:             "AfterDOCTYPEPublicIdentifier",
	BetweenDoctypePublicAndSystemIdentifiersState: "BetweenDOCTYPEPublicAndSystemIdentifiers",
	AfterDoctypeSystemKeywordState:                "AfterDOCTYPESystemKeyword",
	BeforeDoctypeSystemIdentifierState:            "BeforeDOCTYPESystemIdentifier",
	DoctypeSystemIdentifierDoubleQuotedState:      "DOCTYPESystemIdentifierDoubleQuoted",
	DoctypeSystemIdentifierSingleQuotedState:      "DOCTYPESystemIdentifierSingleQuoted",
	AfterDoctypeSystemIdentifierState:             "AfterDOCTYPESystemIdentifier",
	BogusDoctypeState:                             "BogusDOCTYPE",
	CDATASectionState:                             "CDATASection",
	CDATASectionBracketState:                      "CDATASectionBracket",
	CDATASectionEndState:                          "CDATASectionEnd",
	CharacterReferenceState:                       "CharacterReference",
	NamedCharacterReferenceState:                  "NamedCharacterReference",
	AmbiguousAmpersandState:                       "AmbiguousAmpersand",
	NumericCharacterReferenceState:                "NumericCharacterReference",
	HexadecimalCharacterReferenceStartState:       "HexadecimalCharacterReferenceStart",
	DecimalCharacterReferenceStartState:           "DecimalCharacterReferenceStart",
	HexadecimalCharacterReferenceState:            "HexadecimalCharacterReference",
	DecimalCharacterReferenceState:                "DecimalCharacterReference",
	NumericCharacterReferenceEndState:             "NumericCharacterReferenceEnd",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint(s))
}

// isContentState reports whether s may be set from outside.
func isContentState(s State) bool {
	switch s {
	case DataState, RCDATAState, RAWTEXTState, ScriptDataState, PLAINTEXTState, CDATASectionState:
		return true
	}
	return false
}

// isAttributeValueState reports whether a character reference started in s
// belongs to an attribute value.
func isAttributeValueState(s State) bool {
	switch s {
	case AttributeValueDoubleQuotedState, AttributeValueSingleQuotedState, AttributeValueUnquotedState:
		return true
	}
	return false
}

// stateHandler processes one code point, or the end of input when eof is
// set, and returns the next state. When reconsume is set the same input is
// processed again in the next state.
type stateHandler func(r rune, eof bool) (reconsume bool, next State)

func (t *Tokenizer) stateToParser(s State) stateHandler {
	switch s {
	case DataState:
		return t.dataStateParser
	case RCDATAState:
		return t.rcdataStateParser
	case RAWTEXTState:
		return t.rawtextStateParser
	case ScriptDataState:
		return t.scriptDataStateParser
	case PLAINTEXTState:
		return t.plaintextStateParser
	case TagOpenState:
		return t.tagOpenStateParser
	case EndTagOpenState:
		return t.endTagOpenStateParser
	case TagNameState:
		return t.tagNameStateParser
	case RCDATALessThanSignState:
		return t.rcdataLessThanSignStateParser
	case RCDATAEndTagOpenState:
		return t.rcdataEndTagOpenStateParser
	case RCDATAEndTagNameState:
		return t.rcdataEndTagNameStateParser
	case RAWTEXTLessThanSignState:
		return t.rawtextLessThanSignStateParser
	case RAWTEXTEndTagOpenState:
		return t.rawtextEndTagOpenStateParser
	case RAWTEXTEndTagNameState:
		return t.rawtextEndTagNameStateParser
	case ScriptDataLessThanSignState:
		return t.scriptDataLessThanSignStateParser
	case ScriptDataEndTagOpenState:
		return t.scriptDataEndTagOpenStateParser
	case ScriptDataEndTagNameState:
		return t.scriptDataEndTagNameStateParser
	case ScriptDataEscapeStartState:
		return t.scriptDataEscapeStartStateParser
	case ScriptDataEscapeStartDashState:
		return t.scriptDataEscapeStartDashStateParser
	case ScriptDataEscapedState:
		return t.scriptDataEscapedStateParser
	case ScriptDataEscapedDashState:
		return t.scriptDataEscapedDashStateParser
	case ScriptDataEscapedDashDashState:
		return t.scriptDataEscapedDashDashStateParser
	case ScriptDataEscapedLessThanSignState:
		return t.scriptDataEscapedLessThanSignStateParser
	case ScriptDataEscapedEndTagOpenState:
		return t.scriptDataEscapedEndTagOpenStateParser
	case ScriptDataEscapedEndTagNameState:
		return t.scriptDataEscapedEndTagNameStateParser
	case ScriptDataDoubleEscapeStartState:
		return t.scriptDataDoubleEscapeStartStateParser
	case ScriptDataDoubleEscapedState:
		return t.scriptDataDoubleEscapedStateParser
	case ScriptDataDoubleEscapedDashState:
		return t.scriptDataDoubleEscapedDashStateParser
	case ScriptDataDoubleEscapedDashDashState:
		return t.scriptDataDoubleEscapedDashDashStateParser
	case ScriptDataDoubleEscapedLessThanSignState:
		return t.scriptDataDoubleEscapedLessThanSignStateParser
	case ScriptDataDoubleEscapeEndState:
		return t.scriptDataDoubleEscapeEndStateParser
	case BeforeAttributeNameState:
		return t.beforeAttributeNameStateParser
	case AttributeNameState:
		return t.attributeNameStateParser
	case AfterAttributeNameState:
		return t.afterAttributeNameStateParser
	case BeforeAttributeValueState:
		return t.beforeAttributeValueStateParser
	case AttributeValueDoubleQuotedState:
		return t.attributeValueDoubleQuotedStateParser
	case AttributeValueSingleQuotedState:
		return t.attributeValueSingleQuotedStateParser
	case AttributeValueUnquotedState:
		return t.attributeValueUnquotedStateParser
	case AfterAttributeValueQuotedState:
		return t.afterAttributeValueQuotedStateParser
	case SelfClosingStartTagState:
		return t.selfClosingStartTagStateParser
	case BogusCommentState:
		return t.bogusCommentStateParser
	case MarkupDeclarationOpenState:
		return t.markupDeclarationOpenStateParser
	case CommentStartState:
		return t.commentStartStateParser
	case CommentStartDashState:
		return t.commentStartDashStateParser
	case CommentState:
		return t.commentStateParser
	case CommentLessThanSignState:
		return t.commentLessThanSignStateParser
	case CommentLessThanSignBangState:
		return t.commentLessThanSignBangStateParser
	case CommentLessThanSignBangDashState:
		return t.commentLessThanSignBangDashStateParser
	case CommentLessThanSignBangDashDashState:
		return t.commentLessThanSignBangDashDashStateParser
	case CommentEndDashState:
		return t.commentEndDashStateParser
	case CommentEndState:
		return t.commentEndStateParser
	case CommentEndBangState:
		return t.commentEndBangStateParser
	case DoctypeState:
		return t.doctypeStateParser
	case BeforeDoctypeNameState:
		return t.beforeDoctypeNameStateParser
	case DoctypeNameState:
		return t.doctypeNameStateParser
	case AfterDoctypeNameState:
		return t.afterDoctypeNameStateParser
	case AfterDoctypePublicKeywordState:
		return t.afterDoctypePublicKeywordStateParser
	case BeforeDoctypePublicIdentifierState:
		return t.beforeDoctypePublicIdentifierStateParser
	case DoctypePublicIdentifierDoubleQuotedState:
		return t.doctypePublicIdentifierDoubleQuotedStateParser
	case DoctypePublicIdentifierSingleQuotedState:
		return t.doctypePublicIdentifierSingleQuotedStateParser
	case AfterDoctypePublicIdentifierState:
		return t.afterDoctypePublicIdentifierStateParser
	case BetweenDoctypePublicAndSystemIdentifiersState:
		return t.betweenDoctypePublicAndSystemIdentifiersStateParser
	case AfterDoctypeSystemKeywordState:
		return t.afterDoctypeSystemKeywordStateParser
	case BeforeDoctypeSystemIdentifierState:
		return t.beforeDoctypeSystemIdentifierStateParser
	case DoctypeSystemIdentifierDoubleQuotedState:
		return t.doctypeSystemIdentifierDoubleQuotedStateParser
	case DoctypeSystemIdentifierSingleQuotedState:
		return t.doctypeSystemIdentifierSingleQuotedStateParser
	case AfterDoctypeSystemIdentifierState:
		return t.afterDoctypeSystemIdentifierStateParser
	case BogusDoctypeState:
		return t.bogusDoctypeStateParser
	case CDATASectionState:
		return t.cdataSectionStateParser
	case CDATASectionBracketState:
		return t.cdataSectionBracketStateParser
	case CDATASectionEndState:
		return t.cdataSectionEndStateParser
	case CharacterReferenceState:
		return t.characterReferenceStateParser
	case NamedCharacterReferenceState:
		return t.namedCharacterReferenceStateParser
	case AmbiguousAmpersandState:
		return t.ambiguousAmpersandStateParser
	case NumericCharacterReferenceState:
		return t.numericCharacterReferenceStateParser
	case HexadecimalCharacterReferenceStartState:
		return t.hexadecimalCharacterReferenceStartStateParser
	case DecimalCharacterReferenceStartState:
		return t.decimalCharacterReferenceStartStateParser
	case HexadecimalCharacterReferenceState:
		return t.hexadecimalCharacterReferenceStateParser
	case DecimalCharacterReferenceState:
		return t.decimalCharacterReferenceStateParser
	case NumericCharacterReferenceEndState:
		return t.numericCharacterReferenceEndStateParser
	}

	fault("no handler for state %s", s)
	return nil
}
