package charref

// Problem describes what was wrong with a numeric character reference. The
// string form is the WHATWG parse error code.
type Problem uint

const (
	NoProblem Problem = iota
	NullReference
	OutsideUnicodeRange
	SurrogateReference
	NoncharacterReference
	ControlReference
)

var problemNames = [...]string{
	NoProblem:             "",
	NullReference:         "null-character-reference",
	OutsideUnicodeRange:   "character-reference-outside-unicode-range",
	SurrogateReference:    "surrogate-character-reference",
	NoncharacterReference: "noncharacter-character-reference",
	ControlReference:      "control-character-reference",
}

func (p Problem) String() string {
	if int(p) < len(problemNames) {
		return problemNames[p]
	}
	return "unknown"
}

// MaxCode is the largest Unicode scalar value.
const MaxCode = 0x10FFFF

// CapCode keeps a reference code that is being accumulated from digits
// from overflowing. Anything past MaxCode is already out of range, so it
// saturates just above it.
func CapCode(code int) int {
	if code > MaxCode {
		return MaxCode + 1
	}
	return code
}

// windows1252 maps the C1 control range to the characters legacy content
// meant by them.
var windows1252 = map[int]rune{
	0x80: 0x20AC,
	0x82: 0x201A,
	0x83: 0x0192,
	0x84: 0x201E,
	0x85: 0x2026,
	0x86: 0x2020,
	0x87: 0x2021,
	0x88: 0x02C6,
	0x89: 0x2030,
	0x8A: 0x0160,
	0x8B: 0x2039,
	0x8C: 0x0152,
	0x8E: 0x017D,
	0x91: 0x2018,
	0x92: 0x2019,
	0x93: 0x201C,
	0x94: 0x201D,
	0x95: 0x2022,
	0x96: 0x2013,
	0x97: 0x2014,
	0x98: 0x02DC,
	0x99: 0x2122,
	0x9A: 0x0161,
	0x9B: 0x203A,
	0x9C: 0x0153,
	0x9E: 0x017E,
	0x9F: 0x0178,
}

// Numeric turns the code of a numeric character reference into the
// character it stands for, reporting the problem the code had if any.
func Numeric(code int) (rune, Problem) {
	switch {
	case code == 0:
		return '\uFFFD', NullReference
	case code > MaxCode:
		return '\uFFFD', OutsideUnicodeRange
	case isSurrogate(code):
		return '\uFFFD', SurrogateReference
	case isNoncharacter(code):
		return rune(code), NoncharacterReference
	case code == 0x0D || (isControl(code) && !isASCIIWhitespace(code)):
		if r, ok := windows1252[code]; ok {
			return r, ControlReference
		}
		return rune(code), ControlReference
	}
	return rune(code), NoProblem
}

func isNoncharacter(code int) bool {
	if code >= 0xFDD0 && code <= 0xFDEF {
		return true
	}
	// the last two code points of every plane
	return code&0xFFFE == 0xFFFE && code <= MaxCode
}

func isC0Control(code int) bool {
	return code >= 0x00 && code <= 0x1F
}

func isControl(code int) bool {
	return isC0Control(code) || (code >= 0x7F && code <= 0x9F)
}

func isASCIIWhitespace(code int) bool {
	switch code {
	case 0x09, 0x0A, 0x0C, 0x0D, 0x20:
		return true
	default:
		return false
	}
}

func isSurrogate(code int) bool {
	return code >= 0xD800 && code <= 0xDFFF
}
