package console

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFile is a buffer pretending to be an os.File that is not a terminal.
type fakeFile struct {
	bytes.Buffer
}

func (f *fakeFile) Fd() uintptr { return ^uintptr(0) }

func TestConsoleWriterTTYErasesLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := &consoleWriter{&buf, true, &sync.Mutex{}}

	n, err := w.Write([]byte("one\ntwo\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, "one\x1b[0K\ntwo\x1b[0K\n", buf.String())
}

func TestConsoleWriterNonTTYPassthrough(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := &consoleWriter{&buf, false, &sync.Mutex{}}

	_, err := w.Write([]byte("plain\n"))
	require.NoError(t, err)
	assert.Equal(t, "plain\n", buf.String())
}

func TestConsoleNonTTY(t *testing.T) {
	t.Parallel()

	out, errOut := &fakeFile{}, &fakeFile{}
	c := New(out, errOut, true, "xterm-256color")

	assert.False(t, c.IsTTY)

	// themes stay off outside a TTY even when colors are requested
	assert.Equal(t, "text", c.ApplyTheme("text"))

	width, err := c.TermWidth()
	require.NoError(t, err)
	assert.Equal(t, defaultTermWidth, width)
}

func TestConsolePrint(t *testing.T) {
	t.Parallel()

	out, errOut := &fakeFile{}, &fakeFile{}
	c := New(out, errOut, false, "dumb")

	c.Print("hello")
	c.Printf(" %s", "world")
	assert.Equal(t, "hello world", out.String())
	assert.Empty(t, errOut.String())
}

func TestConsoleLogger(t *testing.T) {
	t.Parallel()

	out, errOut := &fakeFile{}, &fakeFile{}
	c := New(out, errOut, false, "dumb")

	c.GetLogger().Info("something happened")
	assert.Contains(t, errOut.String(), "something happened")
	assert.Empty(t, out.String())
}
