package main

import (
	"strings"
	"unicode/utf8"
)

const EOF rune = -1

// input is a rune cursor over a single command line.
type input struct {
	buf string
	pos int
}

func (i *input) match(s string) bool { return !i.eof() && strings.ContainsRune(s, i.token()) }

func (i *input) doInput(s string) { i.buf, i.pos = s, 0 }

func (i *input) eof() bool { return i.pos >= len(i.buf) }

func (i *input) consume() {
	if i.eof() {
		return
	}
	_, n := utf8.DecodeRuneInString(i.buf[i.pos:])
	i.pos += n
}

func (i *input) token() rune {
	if i.eof() {
		return EOF
	}
	tok, _ := utf8.DecodeRuneInString(i.buf[i.pos:])
	return tok
}

// column returns the 1-based rune column of the cursor.
func (i *input) column() int { return utf8.RuneCountInString(i.buf[:i.pos]) + 1 }
