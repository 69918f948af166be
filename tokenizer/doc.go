// Package tokenizer implements the tokenization stage of the WHATWG HTML
// parsing algorithm.
//
// A Tokenizer walks a sequence of Unicode scalar values through the
// tokenizer state machine and hands every token it emits to a Sink: one
// Character token per code point, start and end tags with their attribute
// lists, comments, DOCTYPEs and finally a single EndOfFile token. Malformed
// markup never stops tokenization; it is reported through an optional
// ErrorHandler and recovered from as the standard prescribes.
//
// Tree construction is not part of this package. The hooks it needs to
// steer the tokenizer (SetState, SetLastStartTagName and SetAllowCDATA)
// are exported, and Reader offers a pull interface that applies them
// between tokens:
//
//	r, err := tokenizer.NewReaderString("<script>if (a<b) {}</script>", tokenizer.Config{})
//	if err != nil {
//		return err
//	}
//	for r.Next() {
//		tok, err := r.Token(progress)
//		...
//	}
package tokenizer
