package tokenizer

import (
	"io"

	"github.com/heathj/gobrowse-tokenizer/tokenizer/input"
	"github.com/pkg/errors"
)

// Progress carries what tree construction learned from the last token back
// to the tokenizer before the next one is produced.
type Progress struct {
	// State, if set, switches the tokenizer to a content state.
	State *State
	// LastStartTag, if not empty, replaces the name appropriate end tags
	// are matched against.
	LastStartTag string
	// AllowCDATA is set while the adjusted current node is in foreign
	// content.
	AllowCDATA bool
}

// MakeProgress returns a Progress that switches to state, which may be nil.
func MakeProgress(state *State, allowCDATA bool) *Progress {
	return &Progress{
		State:      state,
		AllowCDATA: allowCDATA,
	}
}

// Reader pulls tokens out of a Tokenizer one at a time, so that the caller
// can adjust the tokenizer between tokens.
type Reader struct {
	tokenizer *Tokenizer
	queue     []Token
	done      bool
}

// NewReader reads all of r, normalizes it, and returns a Reader over it.
func NewReader(r io.Reader, config Config) (*Reader, error) {
	in, err := input.Read(r)
	if err != nil {
		return nil, err
	}
	return NewReaderRunes(in, config)
}

// NewReaderString returns a Reader over s.
func NewReaderString(s string, config Config) (*Reader, error) {
	return NewReaderRunes(input.String(s), config)
}

// NewReaderRunes returns a Reader over already normalized input.
func NewReaderRunes(in []rune, config Config) (*Reader, error) {
	r := &Reader{}
	t, err := NewTokenizer(in, SinkFunc(r.push), config)
	if err != nil {
		return nil, err
	}
	r.tokenizer = t
	return r, nil
}

func (r *Reader) push(t Token) {
	r.queue = append(r.queue, t)
}

// Tokenizer returns the underlying tokenizer.
func (r *Reader) Tokenizer() *Tokenizer {
	return r.tokenizer
}

// Next reports whether there are tokens left, the EndOfFile token included.
func (r *Reader) Next() bool {
	return !r.done
}

// Token applies progress, which may be nil, and returns the next token.
func (r *Reader) Token(progress *Progress) (Token, error) {
	if r.done {
		return Token{}, ErrDone
	}
	if progress != nil {
		if err := r.apply(progress); err != nil {
			return Token{}, err
		}
	}

	// some states emit more than one token at a time and sometimes none.
	// step until at least one is queued.
	for len(r.queue) == 0 {
		if !r.tokenizer.Step() && len(r.queue) == 0 {
			return Token{}, errors.Wrap(ErrDone, "tokenizer finished with nothing queued")
		}
	}

	t := r.queue[0]
	r.queue = r.queue[1:]
	if t.Type == EndOfFileToken {
		r.done = true
	}
	return t, nil
}

func (r *Reader) apply(progress *Progress) error {
	if progress.State != nil {
		if len(r.queue) > 0 {
			return errors.Wrapf(ErrInvalidState, "switching to %s with %d tokens already queued", *progress.State, len(r.queue))
		}
		if err := r.tokenizer.SetState(*progress.State); err != nil {
			return err
		}
	}
	if progress.LastStartTag != "" {
		r.tokenizer.SetLastStartTagName(progress.LastStartTag)
	}
	r.tokenizer.SetAllowCDATA(progress.AllowCDATA)
	return nil
}

// All drains the reader without giving any feedback.
func (r *Reader) All() ([]Token, error) {
	var tokens []Token
	for r.Next() {
		t, err := r.Token(nil)
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}
