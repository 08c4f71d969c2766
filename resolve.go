package main

// Default addresses. Each command supplies both halves explicitly so
// that an omitted endpoint inherits the matching half.
var (
	defaultDot   = Absolute(At(Current()), At(Current()))
	defaultWhole = Absolute(At(Line(1)), At(Last()))
)

// halves returns the two default endpoints of a default address. A
// singular default serves as both halves.
func (a Address) halves() (SingularAddress, SingularAddress) {
	if a.Kind == AddressSingular || !a.Second.Present {
		return a.First.Addr, a.First.Addr
	}
	return a.First.Addr, a.Second.Addr
}

// or substitutes def for an omitted endpoint. A typed endpoint that
// only carries an offset is anchored at def's position.
func (e Endpoint) or(def SingularAddress) SingularAddress {
	if !e.Present {
		return def
	}
	if e.Addr.Position.Kind != PositionDefault {
		return e.Addr
	}
	return SingularAddress{Position: def.Position, Offset: def.Offset + e.Addr.Offset}
}

// resolveSingular turns a into a line number against the current line
// dot and the last line last. No clamping is done. A Default anchor
// counts as 0 so that a bare offset is a plain displacement; callers
// substitute the contextual default before resolving an absolute
// position.
func resolveSingular(a SingularAddress, dot, last int) int {
	var n int
	switch a.Position.Kind {
	case PositionCurrent:
		n = dot
	case PositionLast:
		n = last
	case PositionLine:
		n = a.Position.Line
	}
	return n + a.Offset
}

// resolveRange turns addr into a pair of line numbers, using def for
// omitted endpoints. The bounds are returned in the order given.
func resolveRange(addr, def Address, dot, last int) (int, int) {
	defFirst, defSecond := def.halves()
	switch addr.Kind {
	case AddressAbsolute:
		return resolveSingular(addr.First.or(defFirst), dot, last),
			resolveSingular(addr.Second.or(defSecond), dot, last)
	case AddressRelative:
		first := resolveSingular(addr.First.or(defFirst), dot, last)
		// The second endpoint is a displacement from the first, so it
		// falls back to the first default half and a bare offset is
		// not anchored.
		second := defFirst
		if addr.Second.Present {
			second = addr.Second.Addr
		}
		return first, first + resolveSingular(second, dot, last)
	}
	// No address at all takes the whole default.
	if !addr.First.Present {
		return resolveSingular(defFirst, dot, last), resolveSingular(defSecond, dot, last)
	}
	n := resolveSingular(addr.First.or(defFirst), dot, last)
	return n, n
}
