package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountNonBlankLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"single line no newline", "local x = 1", 1},
		{"trailing newline", "a\nb\n", 2},
		{"blank lines", "a\n\n\nb\n\n", 2},
		{"whitespace only lines", "a\n   \n\t\t\nb", 2},
		{"crlf", "a\r\n\r\nb\r\n", 2},
		{"lone carriage returns", "a\r\r\n\r\nb", 2},
		{"comments still count", "// comment\n-- lua comment\n/* block */", 3},
		{"indented code", "    int main() {\n        return 0;\n    }\n", 3},
		{"unicode whitespace", "a\n  \nb", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countNonBlankLines(tt.content))
		})
	}
}

func TestDecodeText(t *testing.T) {
	t.Run("utf8", func(t *testing.T) {
		text, err := decodeText([]byte("print(\"привет\")\n"))
		require.NoError(t, err)
		assert.Equal(t, "print(\"привет\")\n", text)
	})

	t.Run("ascii", func(t *testing.T) {
		text, err := decodeText([]byte("int x;\n"))
		require.NoError(t, err)
		assert.Equal(t, "int x;\n", text)
	})

	t.Run("latin1 falls back to windows-1252", func(t *testing.T) {
		text, err := decodeText([]byte{'c', 'a', 'f', 0xe9, '\n'})
		require.NoError(t, err)
		assert.Equal(t, "café\n", text)
	})

	t.Run("nul byte is binary", func(t *testing.T) {
		_, err := decodeText([]byte{0x7f, 'E', 'L', 'F', 0x00, 0x01})
		assert.ErrorIs(t, err, ErrBinaryFile)
	})

	t.Run("nul byte past sniff window is not checked", func(t *testing.T) {
		content := make([]byte, binarySniffLen+2)
		for i := range content {
			content[i] = 'a'
		}
		content[binarySniffLen+1] = 0
		_, err := decodeText(content)
		assert.NoError(t, err)
	})
}
