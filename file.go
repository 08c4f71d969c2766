package main

import (
	"os"
	"slices"
	"strings"
)

// file is the line buffer. Line numbers are 1-indexed at every method
// boundary; the translation to slice indices happens here only.
type file struct {
	lines []string // file content
	path  string   // full file path to the file
}

func (f *file) len() int { return len(f.lines) }

// slice returns a copy of lines start through end, clipped to the
// buffer.
func (f *file) slice(start, end int) []string {
	start, end = max(start, 1), min(end, len(f.lines))
	if start > end {
		return nil
	}
	return slices.Clone(f.lines[start-1 : end])
}

// append inserts lines after line dest; dest 0 inserts at the top.
func (f *file) append(dest int, lines ...string) {
	f.lines = slices.Insert(f.lines, dest, lines...)
}

// delete removes lines start through end, skipping line numbers past
// the end of the buffer. It returns the number of lines removed.
func (f *file) delete(start, end int) int {
	start, end = max(start, 1), min(end, len(f.lines))
	if start > end {
		return 0
	}
	f.lines = slices.Delete(f.lines, start-1, end)
	return end - start + 1
}

// move relocates lines start through end after line dest and returns
// the new number of the last moved line.
func (f *file) move(start, end, dest int) int {
	buf := f.slice(start, end)
	f.lines = slices.Delete(f.lines, start-1, end)
	if dest >= end {
		dest -= len(buf)
	}
	f.lines = slices.Insert(f.lines, dest, buf...)
	return dest + len(buf)
}

// read replaces the buffer with the contents of path and returns the
// size in bytes.
func (f *file) read(path string) (int, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return 0, ErrCannotReadFile
	}
	f.lines = nil
	if s := strings.TrimSuffix(string(buf), "\n"); len(buf) > 0 {
		f.lines = strings.Split(s, "\n")
	}
	f.path = path
	return len(buf), nil
}
