package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Ed is limited to displaying these error messages with the exception
// of parse diagnostics in verbose mode.
var (
	ErrDefault            = errors.New("?") // descriptive error message, don't you think?
	ErrCannotReadFile     = errors.New("cannot read input file")
	ErrInsertMode         = errors.New("command issued in insert mode")
	ErrInterrupt          = errors.New("interrupt")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrInvalidCmdSuffix   = errors.New("invalid command suffix")
	ErrInvalidDestination = errors.New("invalid destination")
	ErrNumberOutOfRange   = errors.New("number out of range")
	ErrUnknownCmd         = errors.New("unknown command")
)

// cursor holds the current line and the bounds resolved by the last
// command.
type cursor struct {
	first  int
	second int
	dot    int // current address
}

type Editor struct {
	file
	cursor

	mode Mode  // normal or collecting text
	err  error // previous error

	prompt  string         // user prompt
	verbose bool           // toggle verbose errors
	silent  bool           // suppress diagnostics
	script  bool           // stdin is not a terminal
	lc      int            // line count (script mode)
	sigch   chan os.Signal // signal handlers

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type Option func(*Editor)

func WithStdin(stdin io.Reader) Option {
	return func(ed *Editor) { ed.stdin = stdin }
}

func WithStdout(stdout io.Writer) Option {
	return func(ed *Editor) { ed.stdout = stdout }
}

func WithStderr(stderr io.Writer) Option {
	return func(ed *Editor) { ed.stderr = stderr }
}

func WithSilent(t bool) Option {
	return func(ed *Editor) { ed.silent = t }
}

func WithVerbose(t bool) Option {
	return func(ed *Editor) { ed.verbose = t }
}

func WithPrompt(prompt string) Option {
	return func(ed *Editor) { ed.prompt = prompt }
}

// WithLines starts the editor on a copy of lines with the cursor on
// the last line.
func WithLines(lines ...string) Option {
	return func(ed *Editor) {
		ed.file = file{lines: append([]string(nil), lines...)}
		ed.dot = max(len(lines), 1)
	}
}

// WithFile loads path into the buffer. A failure is reported like any
// other command error and leaves the buffer empty.
func WithFile(path string) Option {
	return func(ed *Editor) {
		if err := ed.read(path); err != nil {
			ed.errorln(err)
		}
	}
}

func NewEditor(opts ...Option) *Editor {
	ed := &Editor{
		cursor: cursor{dot: 1},
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		sigch:  make(chan os.Signal, 1),
	}
	for _, opt := range opts {
		opt(ed)
	}
	if f, ok := ed.stdin.(*os.File); ok {
		ed.script = !term.IsTerminal(int(f.Fd()))
	}
	return ed
}

// Mode reports whether the editor expects commands or text.
func (ed *Editor) Mode() Mode { return ed.mode }

// Lines returns a copy of the buffer.
func (ed *Editor) Lines() []string { return ed.file.slice(1, ed.file.len()) }

// Dot returns the current line.
func (ed *Editor) Dot() int { return ed.dot }

func (ed *Editor) read(path string) error {
	size, err := ed.file.read(path)
	if err != nil {
		return err
	}
	ed.dot = max(ed.file.len(), 1)
	ed.first, ed.second = ed.dot, ed.dot
	if !ed.silent {
		fmt.Fprintln(ed.stdout, size)
	}
	return nil
}

func (ed *Editor) doPrompt() {
	if ed.prompt != "" && ed.mode == ModeNormal {
		fmt.Fprint(ed.stdout, ed.prompt)
	}
}

// errorln reports err on stderr: a bare "?" unless verbose mode is on.
// In script mode a verbose error is fatal and errorln returns it
// annotated with the script line.
func (ed *Editor) errorln(err error) error {
	ed.err = err
	if !ed.verbose {
		fmt.Fprintln(ed.stderr, ErrDefault)
		return nil
	}
	msg := err.Error()
	var perr *ParseError
	if errors.As(err, &perr) {
		msg = perr.Verbose()
	}
	if ed.script {
		return fmt.Errorf("script, line: %d: %s", ed.lc, msg)
	}
	fmt.Fprintln(ed.stderr, msg)
	return nil
}

// do handles one line of input: text while in insert mode, a command
// otherwise.
func (ed *Editor) do(line string) error {
	if ed.mode == ModeInsert {
		ed.FeedInsertLine(line)
		return nil
	}
	c, err := ParseCommand(line)
	if err != nil {
		return err
	}
	out, err := ed.Execute(c)
	if err != nil {
		return err
	}
	for _, ln := range out.Lines {
		fmt.Fprintln(ed.stdout, ln)
	}
	return nil
}

// readLines feeds stdin to the returned channel one line at a time and
// closes it at end of input.
func (ed *Editor) readLines() <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		s := bufio.NewScanner(ed.stdin)
		for s.Scan() {
			ch <- s.Text()
		}
	}()
	return ch
}

// Run reads and executes input until end of input or a hangup. The
// editor state is only touched from this goroutine; signals arrive on
// the same select as input lines.
func (ed *Editor) Run() error {
	defer ed.notifySignals()()
	lines := ed.readLines()
	for {
		ed.doPrompt()
		select {
		case sig := <-ed.sigch:
			if ed.handleSignal(sig) {
				return nil
			}
		case ln, ok := <-lines:
			if !ok {
				return nil
			}
			ed.lc++
			if err := ed.do(ln); err != nil {
				if err := ed.errorln(err); err != nil {
					return err
				}
				continue
			}
			ed.err = nil
		}
	}
}
