package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func run(t *testing.T, input string, opts ...Option) (ed *Editor, stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	opts = append([]Option{
		WithStdin(strings.NewReader(input)),
		WithStdout(&out),
		WithStderr(&errOut),
	}, opts...)
	ed = NewEditor(opts...)
	err = ed.Run()
	return ed, out.String(), errOut.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		opts   []Option
		stdout string
		stderr string
		buf    []string
	}{
		{
			name:   "print",
			input:  "2,4p\n",
			stdout: "L2\nL3\nL4\n",
			buf:    []string{"L1", "L2", "L3", "L4", "L5"},
		},
		{
			name:   "terse error",
			input:  "x\n9p\n1p\n",
			stdout: "L1\n",
			stderr: "?\n?\n",
			buf:    []string{"L1", "L2", "L3", "L4", "L5"},
		},
		{
			name:   "verbose error",
			input:  "1,2i\n9p\n",
			opts:   []Option{WithVerbose(true)},
			stderr: "at character 4: unknown command, expected one of \"a\", \"c\", \"m\", \"p\"\n1,2i\n   ^\ninvalid address\n",
			buf:    []string{"L1", "L2", "L3", "L4", "L5"},
		},
		{
			name:   "insert mode",
			input:  "1a\n1p\n.\n1,3p\n",
			stdout: "L1\n1p\nL2\n",
			buf:    []string{"L1", "1p", "L2", "L3", "L4", "L5"},
		},
		{
			name:   "prompt",
			input:  "1p\na\nX\n.\n",
			opts:   []Option{WithPrompt("*")},
			stdout: "*L1\n**",
			buf:    []string{"L1", "X", "L2", "L3", "L4", "L5"},
		},
		{
			name:  "unterminated insert",
			input: "$a\nX",
			buf:   []string{"L1", "L2", "L3", "L4", "L5", "X"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithLines("L1", "L2", "L3", "L4", "L5")}, tt.opts...)
			ed, stdout, stderr, err := run(t, tt.input, opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.stdout, stdout, "stdout")
			assert.Equal(t, tt.stderr, stderr, "stderr")
			assert.Equal(t, tt.buf, ed.Lines(), "buffer")
		})
	}
}

func TestRunScript(t *testing.T) {
	var out, errOut bytes.Buffer
	ed := NewEditor(
		WithStdin(strings.NewReader("1p\nx\n2p\n")),
		WithStdout(&out),
		WithStderr(&errOut),
		WithVerbose(true),
		WithLines("L1", "L2"),
	)
	ed.script = true
	err := ed.Run()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "script, line: 2: at character 1: unknown command"), err.Error())
	assert.Equal(t, "L1\n", out.String(), "execution stops at the failing line")
	assert.Empty(t, errOut.String())

	// without verbose mode a script only reports "?" and carries on
	out.Reset()
	ed = NewEditor(
		WithStdin(strings.NewReader("1p\nx\n2p\n")),
		WithStdout(&out),
		WithStderr(&errOut),
		WithLines("L1", "L2"),
	)
	ed.script = true
	require.NoError(t, ed.Run())
	assert.Equal(t, "L1\nL2\n", out.String())
	assert.Equal(t, "?\n", errOut.String())
}

func TestRunErrorState(t *testing.T) {
	ed := NewEditor(
		WithStdin(strings.NewReader("x\n")),
		WithStdout(io.Discard),
		WithStderr(io.Discard),
	)
	require.NoError(t, ed.Run())
	assert.ErrorIs(t, ed.err, ErrUnknownCmd)

	ed = NewEditor(
		WithStdin(strings.NewReader("x\na\n.\n")),
		WithStdout(io.Discard),
		WithStderr(io.Discard),
	)
	require.NoError(t, ed.Run())
	assert.NoError(t, ed.err, "a successful command clears the last error")
}

func TestWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644))

	ed, stdout, stderr, err := run(t, "p\n", WithFile(path))
	require.NoError(t, err)
	assert.Equal(t, "14\none\ntwo\nthree\n", stdout)
	assert.Empty(t, stderr)
	assert.Equal(t, []string{"one", "two", "three"}, ed.Lines())
	assert.Equal(t, path, ed.file.path)

	_, stdout, _, err = run(t, ".p\n", WithSilent(true), WithFile(path))
	require.NoError(t, err)
	assert.Equal(t, "three\n", stdout, "silent mode hides the byte count")

	ed, stdout, stderr, err = run(t, "", WithFile(filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Equal(t, "?\n", stderr)
	assert.Empty(t, ed.Lines())
	assert.ErrorIs(t, ed.err, ErrCannotReadFile)
}

func TestWithLines(t *testing.T) {
	lines := []string{"A", "B"}
	ed := NewEditor(WithStdin(strings.NewReader("")), WithLines(lines...))
	lines[0] = "Z"
	assert.Equal(t, []string{"A", "B"}, ed.Lines())
	assert.Equal(t, 2, ed.Dot())
	assert.Equal(t, ModeNormal, ed.Mode())

	ed = NewEditor(WithStdin(strings.NewReader("")), WithLines())
	assert.Equal(t, 1, ed.Dot())
}
