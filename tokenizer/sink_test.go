package tokenizer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalesce(t *testing.T) {
	in := tokens(chars("ab"), startTag("p"), chars("c"), comment("x"), chars("de"), eofToken)
	want := []Token{
		{Type: CharacterToken, Data: "ab"},
		startTag("p"),
		{Type: CharacterToken, Data: "c"},
		comment("x"),
		{Type: CharacterToken, Data: "de"},
		eofToken,
	}
	if diff := cmp.Diff(want, Coalesce(in)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	// the input is left alone
	assert.Equal(t, "a", in[0].Data)
}

func TestTokenizeHelper(t *testing.T) {
	got := Coalesce(Tokenize("<p>hi"))
	want := []Token{startTag("p"), {Type: CharacterToken, Data: "hi"}, eofToken}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestChanSink(t *testing.T) {
	ch := make(chan Token)
	tok, err := NewTokenizerString("<a>b", ChanSink(ch), Config{})
	require.NoError(t, err)
	go tok.Run()

	var got []Token
	for tk := range ch {
		got = append(got, tk)
	}
	assert.Equal(t, tokens(startTag("a"), chars("b"), eofToken), got)
}

func TestSinkFunc(t *testing.T) {
	var types []TokenType
	tok, err := NewTokenizerString("<!--c-->", SinkFunc(func(tk Token) {
		types = append(types, tk.Type)
	}), Config{})
	require.NoError(t, err)
	tok.Run()
	assert.Equal(t, []TokenType{CommentToken, EndOfFileToken}, types)
}

func TestTokenStrings(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{chars("a")[0], `Character("a")`},
		{Token{Type: StartTagToken, TagName: "a", SelfClosing: true, Attributes: []Attribute{
			{Name: "href", Value: "x"},
			{Name: "href", Value: "y", Duplicate: true},
		}}, `StartTag(a href="x" href="y"(dup) /)`},
		{endTag("p"), "EndTag(p)"},
		{comment("c"), `Comment("c")`},
		{Token{Type: DoctypeToken, Name: Some("html"), ForceQuirks: true}, `DOCTYPE(name="html" public=<missing> system=<missing> quirks=true)`},
		{eofToken, "EndOfFile"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tok.String())
	}
	assert.Equal(t, 'a', chars("a")[0].Char())
	assert.Equal(t, "TokenType(42)", TokenType(42).String())
	assert.Equal(t, "ScriptDataEscaped", ScriptDataEscapedState.String())
	assert.Equal(t, "State(200)", State(200).String())
}
