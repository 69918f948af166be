package input

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"a\r\nb", "a\nb"},
		{"a\rb", "a\nb"},
		{"a\r\r\nb", "a\n\nb"},
		{"a\n\rb", "a\n\nb"},
		{"\r", "\n"},
		{"\r\n", "\n"},
		{"<p>\r\n</p>\r", "<p>\n</p>\n"},
		{"héllo\r\n", "héllo\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, []rune(tt.want), String(tt.in))
			assert.Equal(t, []rune(tt.want), Bytes([]byte(tt.in)))
		})
	}
}

func TestInvalidUTF8BecomesReplacement(t *testing.T) {
	assert.Equal(t, []rune{'a', '\uFFFD', 'b'}, String("a\xffb"))
}

// CR LF split across reads must still collapse to one LF.
func TestReadAcrossChunks(t *testing.T) {
	in := strings.Repeat("x\r\n", 3000) + "\r"
	got, err := Read(iotest.OneByteReader(strings.NewReader(in)))
	require.NoError(t, err)
	assert.Equal(t, []rune(strings.Repeat("x\n", 3000)+"\n"), got)
}

func TestReadError(t *testing.T) {
	_, err := Read(iotest.ErrReader(io.ErrUnexpectedEOF))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading tokenizer input")
}

func TestTransformShortDst(t *testing.T) {
	dst := make([]byte, 2)
	nDst, nSrc, err := Normalizer{}.Transform(dst, []byte("a\r\nbc"), true)
	assert.Equal(t, transform.ErrShortDst, err)
	assert.Equal(t, 2, nDst)
	assert.Equal(t, 3, nSrc)
	assert.True(t, bytes.Equal([]byte("a\n"), dst))
}
