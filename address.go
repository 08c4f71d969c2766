package main

import (
	"strconv"
	"strings"
)

// PositionKind selects the anchor of a singular address.
type PositionKind int

const (
	PositionDefault PositionKind = iota // not given, the command decides
	PositionCurrent                     // .
	PositionLast                        // $
	PositionLine                        // n
)

func (k PositionKind) String() string {
	switch k {
	case PositionDefault:
		return "default"
	case PositionCurrent:
		return "current"
	case PositionLast:
		return "last"
	case PositionLine:
		return "line"
	default:
		return "?"
	}
}

// Position is the anchor of a singular address. Line is only
// meaningful when Kind is PositionLine.
type Position struct {
	Kind PositionKind
	Line int
}

func Current() Position { return Position{Kind: PositionCurrent} }

func Last() Position { return Position{Kind: PositionLast} }

func Line(n int) Position { return Position{Kind: PositionLine, Line: n} }

func (p Position) String() string {
	switch p.Kind {
	case PositionCurrent:
		return "."
	case PositionLast:
		return "$"
	case PositionLine:
		return strconv.Itoa(p.Line)
	}
	return ""
}

// SingularAddress is an anchor followed by a signed line offset.
type SingularAddress struct {
	Position Position
	Offset   int
}

func (a SingularAddress) String() string {
	var sb strings.Builder
	sb.WriteString(a.Position.String())
	switch {
	case a.Offset > 0:
		sb.WriteByte('+')
		sb.WriteString(strconv.Itoa(a.Offset))
	case a.Offset < 0:
		sb.WriteString(strconv.Itoa(a.Offset))
	case a.Position.Kind == PositionDefault:
		// "+0" keeps an explicit but empty address distinguishable
		// from an omitted one.
		sb.WriteString("+0")
	}
	return sb.String()
}

// Endpoint is a singular address the user may have left out.
type Endpoint struct {
	Addr    SingularAddress
	Present bool
}

// Omitted is the endpoint of an address that was not typed.
func Omitted() Endpoint { return Endpoint{} }

// Specified wraps a typed singular address.
func Specified(a SingularAddress) Endpoint { return Endpoint{Addr: a, Present: true} }

// At is shorthand for a specified endpoint without an offset.
func At(p Position) Endpoint { return Specified(SingularAddress{Position: p}) }

func (e Endpoint) String() string {
	if !e.Present {
		return ""
	}
	return e.Addr.String()
}

// AddressKind tells how the endpoints of an Address combine.
type AddressKind int

const (
	AddressSingular AddressKind = iota // a
	AddressAbsolute                    // a,b
	AddressRelative                    // a;b
)

// Address is a parsed, unresolved reference to one line or a pair of
// lines. Second is unused for AddressSingular.
type Address struct {
	Kind   AddressKind
	First  Endpoint
	Second Endpoint
}

// Singular returns a one-line address.
func Singular(e Endpoint) Address { return Address{Kind: AddressSingular, First: e} }

// Absolute returns the range a,b.
func Absolute(first, second Endpoint) Address {
	return Address{Kind: AddressAbsolute, First: first, Second: second}
}

// Relative returns the range a;b.
func Relative(first, second Endpoint) Address {
	return Address{Kind: AddressRelative, First: first, Second: second}
}

// String renders the address in the form the parser reads back.
func (a Address) String() string {
	switch a.Kind {
	case AddressAbsolute:
		return a.First.String() + "," + a.Second.String()
	case AddressRelative:
		return a.First.String() + ";" + a.Second.String()
	}
	return a.First.String()
}
