package iocli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStdio(t *testing.T) {
	assert.NotNil(t, NewStdio())
}

func TestStdio_Output(t *testing.T) {
	var out bytes.Buffer
	s := newStdio(strings.NewReader(""), &out, -1)

	s.Println("hello", "world")
	s.Printf("test %d %s\n", 1, "abc")
	n, err := s.Write([]byte("raw"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, "hello world\ntest 1 abc\nraw", out.String())
}

func TestStdio_ReadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "single line", input: "user input\n", want: []string{"user input"}},
		{name: "trims spaces", input: "  山田 太郎 \r\n", want: []string{"山田 太郎"}},
		{name: "several lines", input: "a\nb\n", want: []string{"a", "b"}},
		{name: "no trailing newline", input: "last", want: []string{"last"}},
		{name: "empty input", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			s := newStdio(strings.NewReader(tt.input), &out, -1)

			for _, want := range tt.want {
				got, err := s.ReadInput("Prompt: ")
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}

			_, err := s.ReadInput("Prompt: ")
			assert.ErrorIs(t, err, io.EOF)
			assert.True(t, strings.HasPrefix(out.String(), "Prompt: "))
		})
	}
}

func TestStdio_ReadPassword_NotTerminal(t *testing.T) {
	var out bytes.Buffer
	s := newStdio(strings.NewReader("s3cr3t\n"), &out, -1)

	got, err := s.ReadPassword("API key: ")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", got)
	assert.Equal(t, "API key: ", out.String())
}
