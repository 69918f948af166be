// Package input prepares decoded text for the tokenizer: newlines are
// normalized and the text is split into Unicode scalar values.
package input

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"golang.org/x/text/transform"
)

// Normalizer is a transform.Transformer that replaces every CR LF pair and
// every lone CR with a single LF.
type Normalizer struct{}

var _ transform.Transformer = Normalizer{}

// Transform implements transform.Transformer.
func (Normalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c != '\r' {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}

		// a CR at the end of the chunk might be the first half of a CR LF
		if nSrc+1 == len(src) && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = '\n'
		nDst++
		nSrc++
		if nSrc < len(src) && src[nSrc] == '\n' {
			nSrc++
		}
	}
	return nDst, nSrc, nil
}

// Reset implements transform.Transformer.
func (Normalizer) Reset() {}

// String normalizes s and returns its scalar values. Invalid UTF-8 becomes
// U+FFFD.
func String(s string) []rune {
	out, _, err := transform.String(Normalizer{}, s)
	if err != nil {
		// Normalizer never fails on a complete input.
		return []rune(s)
	}
	return []rune(out)
}

// Bytes is String for a byte slice.
func Bytes(b []byte) []rune {
	out, _, err := transform.Bytes(Normalizer{}, b)
	if err != nil {
		return []rune(string(b))
	}
	return []rune(string(out))
}

// Read reads r to the end and returns its normalized scalar values.
func Read(r io.Reader) ([]rune, error) {
	b, err := ioutil.ReadAll(transform.NewReader(r, Normalizer{}))
	if err != nil {
		return nil, errors.Wrap(err, "reading tokenizer input")
	}
	return []rune(string(b)), nil
}
