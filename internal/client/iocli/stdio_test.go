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

func TestPrint(t *testing.T) {
	var out bytes.Buffer
	s := NewStreams(strings.NewReader(""), &out)

	s.Println("hello", "world")
	s.Printf("test %d %s\n", 1, "abc")
	n, err := s.Write([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, "hello world\ntest 1 abc\n{}", out.String())
}

func TestReadInput(t *testing.T) {
	var out bytes.Buffer
	s := NewStreams(strings.NewReader("  user input \nsecond"), &out)

	first, err := s.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", first)

	// последняя строка без \n
	second, err := s.ReadInput("Again: ")
	require.NoError(t, err)
	assert.Equal(t, "second", second)

	_, err = s.ReadInput("Empty: ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "Prompt: Again: Empty: ", out.String())
}

// Вне терминала секрет читается как обычная строка
func TestReadPasswordNotTerminal(t *testing.T) {
	var out bytes.Buffer
	s := NewStreams(strings.NewReader("s3cret\n"), &out)

	got, err := s.ReadPassword("Token: ")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.Equal(t, "Token: ", out.String())
}
