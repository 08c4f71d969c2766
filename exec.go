package main

import (
	"log"
)

// Mode is the interpreter state: reading commands or collecting text.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
)

func (m Mode) String() string {
	if m == ModeInsert {
		return "insert"
	}
	return "normal"
}

// Outcome is the result of executing a command: the lines it printed
// and the mode the editor is left in.
type Outcome struct {
	Lines []string
	Mode  Mode
}

type cmd func(ed *Editor, c Command) ([]string, error)

var cmds map[rune]cmd

func init() {
	cmds = map[rune]cmd{
		'a': cmdAppend,
		'c': cmdChange,
		'i': cmdInsert,
		'm': cmdMove,
		'p': cmdPrint,
	}
}

// Execute applies c to the buffer. Errors leave the buffer and the
// current line untouched.
func (ed *Editor) Execute(c Command) (Outcome, error) {
	if ed.mode != ModeNormal {
		return Outcome{Mode: ed.mode}, ErrInsertMode
	}
	f, ok := cmds[c.Letter()]
	if !ok {
		return Outcome{Mode: ed.mode}, ErrUnknownCmd
	}
	lines, err := f(ed, c)
	return Outcome{Lines: lines, Mode: ed.mode}, err
}

// FeedInsertLine adds text at the insertion point while in insert mode.
// A lone "." ends insert mode and is not stored.
func (ed *Editor) FeedInsertLine(text string) Mode {
	if ed.mode != ModeInsert {
		return ed.mode
	}
	if text == "." {
		ed.mode = ModeNormal
		return ed.mode
	}
	ed.file.append(ed.dot-1, text)
	ed.dot++
	return ed.mode
}

// resolve resolves addr against the current state and records the
// bounds.
func (ed *Editor) resolve(addr, def Address) (int, int) {
	first, second := resolveRange(addr, def, ed.dot, ed.file.len())
	log.Printf("resolve %q: first=%d second=%d dot=%d lines=%d\n", addr, first, second, ed.dot, ed.file.len())
	ed.first, ed.second = first, second
	return first, second
}

// insertAt enters insert mode with the next line becoming line n.
func (ed *Editor) insertAt(n int) {
	ed.dot = n
	ed.mode = ModeInsert
}

func cmdAppend(ed *Editor, c Command) ([]string, error) {
	a, ok := c.(AppendCmd)
	if !ok {
		return nil, ErrUnknownCmd
	}
	first, second := ed.resolve(a.Addr, defaultDot)
	// The cursor may sit one past the end, so that is a valid target
	// and appends at the end.
	if first < 0 || first > second || second > ed.file.len()+1 {
		return nil, ErrInvalidAddress
	}
	ed.insertAt(min(second, ed.file.len()) + 1)
	return nil, nil
}

func cmdInsert(ed *Editor, c Command) ([]string, error) {
	i, ok := c.(InsertCmd)
	if !ok {
		return nil, ErrUnknownCmd
	}
	n, _ := ed.resolve(Singular(i.Addr), defaultDot)
	if n < 0 || n > ed.file.len()+1 {
		return nil, ErrInvalidAddress
	}
	ed.insertAt(max(n, 1))
	return nil, nil
}

func cmdChange(ed *Editor, c Command) ([]string, error) {
	ch, ok := c.(ChangeCmd)
	if !ok {
		return nil, ErrUnknownCmd
	}
	first, second := ed.resolve(ch.Addr, defaultDot)
	if first < 1 || first > second {
		return nil, ErrInvalidAddress
	}
	ed.file.delete(first, second)
	ed.insertAt(min(first, ed.file.len()+1))
	return nil, nil
}

func cmdPrint(ed *Editor, c Command) ([]string, error) {
	p, ok := c.(PrintCmd)
	if !ok {
		return nil, ErrUnknownCmd
	}
	first, second := ed.resolve(p.Addr, defaultWhole)
	second = min(second, ed.file.len())
	if first < 1 || first > second {
		return nil, ErrInvalidAddress
	}
	ed.dot = second
	return ed.file.slice(first, second), nil
}

func cmdMove(ed *Editor, c Command) ([]string, error) {
	m, ok := c.(MoveCmd)
	if !ok {
		return nil, ErrUnknownCmd
	}
	first, second := ed.resolve(m.Src, defaultDot)
	if first < 1 || first > second || second > ed.file.len() {
		return nil, ErrInvalidAddress
	}
	dest := resolveSingular(m.Dest.or(SingularAddress{Position: Current()}), ed.dot, ed.file.len())
	if dest < 0 || dest > ed.file.len() {
		return nil, ErrInvalidAddress
	}
	if first <= dest && dest < second {
		return nil, ErrInvalidDestination
	}
	ed.dot = ed.file.move(first, second, dest)
	return nil, nil
}
