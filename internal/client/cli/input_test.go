package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  hello world  \n"))
	var out bytes.Buffer

	text, err := GetSimpleText(reader, "Say something", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", text)
	require.Contains(t, out.String(), "Say something")
}

func TestGetSimpleTextEOFWithPartialLine(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("partial"))
	var out bytes.Buffer

	text, err := GetSimpleText(reader, "Prompt", &out)
	require.NoError(t, err)
	require.Equal(t, "partial", text)
}

func TestGetFloat(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("80.4\nnot-a-number\n"))
	var out bytes.Buffer

	v, err := GetFloat(reader, "Weight", &out)
	require.NoError(t, err)
	require.Equal(t, 80.4, v)

	_, err = GetFloat(reader, "Weight", &out)
	require.Error(t, err)
}

func TestGetInt(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("42\n"))
	var out bytes.Buffer

	v, err := GetInt(reader, "Calories", &out)
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestGetPasswordUsesSeam(t *testing.T) {
	saved := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	defer func() { readPassword = saved }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, []byte("s3cret"), pw)
	require.Contains(t, out.String(), "Enter password")
}
