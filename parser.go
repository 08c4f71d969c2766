package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseError reports where and why a command line failed to parse.
type ParseError struct {
	Input    string
	Col      int      // 1-based rune column of the failure
	Expected []string // tokens that would have been accepted at Col
	Err      error    // ErrUnknownCmd, ErrInvalidCmdSuffix or ErrNumberOutOfRange
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("at character %d: %s", e.Col, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Verbose renders the full diagnostic: the message, the expected
// tokens and the input with a caret under the failing column.
func (e *ParseError) Verbose() string {
	var sb strings.Builder
	sb.WriteString(e.Error())
	if len(e.Expected) > 0 {
		quoted := make([]string, len(e.Expected))
		for i, s := range e.Expected {
			quoted[i] = strconv.Quote(s)
		}
		fmt.Fprintf(&sb, ", expected one of %s", strings.Join(quoted, ", "))
	}
	fmt.Fprintf(&sb, "\n%s\n%s^", e.Input, strings.Repeat(" ", e.Col-1))
	return sb.String()
}

var (
	offsetTokens  = []string{"+", "-"}
	rangeTokens   = []string{",", ";"}
	commandTokens = []string{"a", "c", "i", "m", "p"}
)

type parser struct {
	input
}

// ParseCommand parses one command line. It has no access to editor
// state; the returned addresses are resolved by Execute.
func ParseCommand(line string) (Command, error) {
	var p parser
	p.doInput(line)
	return p.command()
}

// command := address ('a' | 'c' | 'p') | singular 'i' | address 'm' singular
func (p *parser) command() (Command, error) {
	addr, err := p.address()
	if err != nil {
		return nil, err
	}
	var cmd Command
	switch p.token() {
	case 'a':
		cmd = AppendCmd{Addr: addr}
	case 'c':
		cmd = ChangeCmd{Addr: addr}
	case 'p':
		cmd = PrintCmd{Addr: addr}
	case 'i':
		if addr.Kind != AddressSingular {
			return nil, p.fail(ErrUnknownCmd, "a", "c", "m", "p")
		}
		cmd = InsertCmd{Addr: addr.First}
	case 'm':
		p.consume()
		dest, err := p.singular()
		if err != nil {
			return nil, err
		}
		if !p.eof() {
			return nil, p.fail(ErrInvalidCmdSuffix, p.followSingular(dest)...)
		}
		return MoveCmd{Src: addr, Dest: dest}, nil
	default:
		return nil, p.fail(ErrUnknownCmd, p.followAddress(addr)...)
	}
	p.consume()
	if !p.eof() {
		return nil, p.fail(ErrInvalidCmdSuffix)
	}
	return cmd, nil
}

// address := singular ',' singular | singular ';' singular | singular
//
// The range forms are tried first. Since every range starts with a
// singular, the alternation is factored: parse one singular and only
// fall back to the bare form when no separator follows it.
func (p *parser) address() (Address, error) {
	first, err := p.singular()
	if err != nil {
		return Address{}, err
	}
	kind := AddressSingular
	switch p.token() {
	case ',':
		kind = AddressAbsolute
	case ';':
		kind = AddressRelative
	default:
		return Singular(first), nil
	}
	p.consume()
	second, err := p.singular()
	if err != nil {
		return Address{}, err
	}
	return Address{Kind: kind, First: first, Second: second}, nil
}

// singular := position? offset*
//
// An empty singular is an omitted endpoint. Offsets may be chained and
// are summed: 10+2+3 is line 10 with offset 5.
func (p *parser) singular() (Endpoint, error) {
	var (
		addr    SingularAddress
		present bool
	)
	switch r := p.token(); {
	case r == '.':
		p.consume()
		addr.Position, present = Current(), true
	case r == '$':
		p.consume()
		addr.Position, present = Last(), true
	case isDigit(r):
		n, err := p.decimal()
		if err != nil {
			return Endpoint{}, err
		}
		addr.Position, present = Line(n), true
	}
	for p.match("+-") {
		col := p.pos
		sign := p.token()
		p.consume()
		n := 1
		if isDigit(p.token()) {
			var err error
			if n, err = p.decimal(); err != nil {
				return Endpoint{}, err
			}
		}
		if sign == '-' {
			n = -n
		}
		sum, ok := addOffset(addr.Offset, n)
		if !ok {
			p.pos = col
			return Endpoint{}, p.fail(ErrNumberOutOfRange)
		}
		addr.Offset, present = sum, true
	}
	if !present {
		return Omitted(), nil
	}
	return Specified(addr), nil
}

// decimal := digit+ with '_' allowed after any digit.
func (p *parser) decimal() (int, error) {
	start := p.pos
	var digits strings.Builder
	for isDigit(p.token()) {
		digits.WriteRune(p.token())
		p.consume()
		for p.token() == '_' {
			p.consume()
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		p.pos = start
		return 0, p.fail(ErrNumberOutOfRange)
	}
	return n, nil
}

// followSingular lists what may come after a singular in final
// position, such as a move destination.
func (p *parser) followSingular(e Endpoint) []string {
	if !e.Present {
		return []string{".", "$", "0-9", "+", "-"}
	}
	return append([]string(nil), offsetTokens...)
}

// followAddress lists what may come after addr when the command
// letter is missing or unknown.
func (p *parser) followAddress(addr Address) []string {
	var exp []string
	last := addr.First
	if addr.Kind != AddressSingular {
		last = addr.Second
	}
	if !last.Present {
		exp = append(exp, ".", "$", "0-9")
	}
	exp = append(exp, offsetTokens...)
	if addr.Kind == AddressSingular {
		exp = append(exp, rangeTokens...)
		return append(exp, commandTokens...)
	}
	return append(exp, "a", "c", "m", "p")
}

func (p *parser) fail(err error, expected ...string) *ParseError {
	return &ParseError{
		Input:    p.buf,
		Col:      p.column(),
		Expected: expected,
		Err:      err,
	}
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func addOffset(a, b int) (int, bool) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, false
	}
	return a + b, true
}
