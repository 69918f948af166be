package tokenizer

import (
	"strings"
)

// Sink receives tokens in emission order. The last token it gets is always
// the single EndOfFile token.
type Sink interface {
	Accept(Token)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Token)

// Accept implements Sink.
func (f SinkFunc) Accept(t Token) {
	f(t)
}

// Collector is a Sink that keeps everything it is given.
type Collector struct {
	Tokens []Token
}

// Accept implements Sink.
func (c *Collector) Accept(t Token) {
	c.Tokens = append(c.Tokens, t)
}

// Text concatenates the data of all collected Character tokens.
func (c *Collector) Text() string {
	var b strings.Builder
	for _, t := range c.Tokens {
		if t.Type == CharacterToken {
			b.WriteString(t.Data)
		}
	}
	return b.String()
}

// Coalesce returns the collected tokens with each run of Character tokens
// merged into one token carrying the whole run.
func (c *Collector) Coalesce() []Token {
	return Coalesce(c.Tokens)
}

// Coalesce merges runs of adjacent Character tokens.
func Coalesce(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if n := len(out); n > 0 && t.Type == CharacterToken && out[n-1].Type == CharacterToken {
			out[n-1].Data += t.Data
			continue
		}
		out = append(out, t)
	}
	return out
}

// ChanSink sends each token on a channel. A full channel blocks the
// tokenizer until the receiver catches up. The channel is closed after the
// EndOfFile token.
type ChanSink chan<- Token

// Accept implements Sink.
func (c ChanSink) Accept(t Token) {
	c <- t
	if t.Type == EndOfFileToken {
		close(c)
	}
}
