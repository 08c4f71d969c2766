package main

// Command is a parsed command line. The concrete types are AppendCmd,
// InsertCmd, ChangeCmd, PrintCmd and MoveCmd.
type Command interface {
	// Letter is the command character, used to dispatch.
	Letter() rune
	// String renders the command in canonical form.
	String() string
}

// AppendCmd collects text after the addressed line: (.)a
type AppendCmd struct{ Addr Address }

// InsertCmd collects text before the addressed line: (.)i
type InsertCmd struct{ Addr Endpoint }

// ChangeCmd replaces the addressed lines with collected text: (.,.)c
type ChangeCmd struct{ Addr Address }

// PrintCmd writes the addressed lines: (1,$)p
type PrintCmd struct{ Addr Address }

// MoveCmd relocates the addressed lines after Dest: (.,.)m(.)
type MoveCmd struct {
	Src  Address
	Dest Endpoint
}

func (c AppendCmd) Letter() rune { return 'a' }
func (c InsertCmd) Letter() rune { return 'i' }
func (c ChangeCmd) Letter() rune { return 'c' }
func (c PrintCmd) Letter() rune  { return 'p' }
func (c MoveCmd) Letter() rune   { return 'm' }

func (c AppendCmd) String() string { return c.Addr.String() + "a" }
func (c InsertCmd) String() string { return c.Addr.String() + "i" }
func (c ChangeCmd) String() string { return c.Addr.String() + "c" }
func (c PrintCmd) String() string  { return c.Addr.String() + "p" }
func (c MoveCmd) String() string   { return c.Src.String() + "m" + c.Dest.String() }
