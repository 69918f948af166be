// Package charref holds the tables behind HTML character references: the
// named reference table with longest-prefix matching, and the checks and
// remapping applied to numeric references.
package charref

import (
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// MaxNameLength is the length of the longest named reference identifier,
// "CounterClockwiseContourIntegral;".
const MaxNameLength = 32

// maxLegacyLength is the length of the longest identifier that is allowed
// to appear without a trailing semicolon ("middot", "frac12", ...).
const maxLegacyLength = 6

const defaultCacheSize = 1024

// unlisted holds the identifiers that x/net/html leaves out of its table.
var unlisted = map[string]string{
	"nGt;": "\u226B\u20D2",
	"nLt;": "\u226A\u20D2",
}

// Default is the resolver used when a tokenizer isn't given one.
var Default = mustNewResolver(defaultCacheSize)

// Resolver answers named reference lookups against the WHATWG named
// character reference table. Lookups are memoized, and a Resolver is safe
// to share between tokenizers running on different goroutines.
type Resolver struct {
	cache *lru.Cache
}

type lookup struct {
	value string
	ok    bool
}

// NewResolver creates a Resolver that remembers up to size identifiers.
func NewResolver(size int) (*Resolver, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "creating named reference cache")
	}
	return &Resolver{cache: cache}, nil
}

func mustNewResolver(size int) *Resolver {
	r, err := NewResolver(size)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the replacement text of the identifier name. The
// identifier is given without the leading ampersand and including the
// semicolon when it has one, e.g. "amp;" or the legacy "amp".
func (r *Resolver) Lookup(name string) (string, bool) {
	if name == "" || len(name) > MaxNameLength {
		return "", false
	}
	if v, ok := r.cache.Get(name); ok {
		l := v.(lookup)
		return l.value, l.ok
	}

	value, ok := resolve(name)
	r.cache.Add(name, lookup{value: value, ok: ok})
	return value, ok
}

// Longest returns the longest prefix of candidate that is an identifier in
// the table, along with its replacement text. candidate is the text that
// follows an ampersand; only its leading run of ASCII alphanumerics and an
// optional semicolon can take part in a match.
func (r *Resolver) Longest(candidate string) (name, value string, ok bool) {
	candidate = Candidate(candidate)
	for n := len(candidate); n > 0; n-- {
		prefix := candidate[:n]
		if prefix[n-1] != ';' && n > maxLegacyLength {
			continue
		}
		if v, found := r.Lookup(prefix); found {
			return prefix, v, true
		}
	}
	return "", "", false
}

// Candidate trims s to the part that could form an identifier: ASCII
// alphanumerics followed by at most one semicolon, no longer than
// MaxNameLength.
func Candidate(s string) string {
	i := 0
	for i < len(s) && i < MaxNameLength && isAlphanumeric(s[i]) {
		i++
	}
	if i < len(s) && i < MaxNameLength && s[i] == ';' && i > 0 {
		i++
	}
	return s[:i]
}

// resolve asks the x/net/html unescaper about exactly one identifier. The
// unescaper falls back to a shorter legacy identifier when the whole name
// isn't known, which leaves the unmatched tail of the name in its output;
// only a replacement that consumed the whole name counts as a match.
func resolve(name string) (string, bool) {
	if v, ok := unlisted[name]; ok {
		return v, true
	}
	in := "&" + name
	out := html.UnescapeString(in)
	if out == in {
		return "", false
	}

	runes := []rune(out)
	switch len(runes) {
	case 1:
		return out, true
	case 2:
		// two code point replacements never end in the identifier's
		// last character, a fallback with a one character tail always does.
		if !strings.HasSuffix(name, string(runes[1])) {
			return out, true
		}
	}
	return "", false
}

func isAlphanumeric(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}
