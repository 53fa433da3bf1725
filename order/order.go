// Package order parses free-form move orders for a Diplomacy-style strategy
// game into structured values. Province names are free multi-word phrases
// with no reserved delimiter, so the boundary between a name and the keyword
// that follows it cannot be found by lookahead; each rule discovers it by
// trial, shortest candidate first, and commits to the first interpretation
// that consumes the whole line.
//
// Parsed province names are raw substrings of the input; resolving them
// against the board is the caller's job (see package board).
package order

// Unit is the kind of unit named at the front of an order.
type Unit int

const (
	NoUnit Unit = iota // the order named no unit
	Army
	Fleet
)

func (u Unit) String() string {
	switch u {
	case Army:
		return "army"
	case Fleet:
		return "fleet"
	default:
		return "none"
	}
}

// Order is one parsed player instruction for one unit in one turn.
type Order interface {
	// Province returns the location of the unit the order applies to.
	Province() string
}

// Hold keeps a unit in place.
type Hold struct {
	Unit  Unit
	Place string
}

// Move sends a unit from Source to Dest.
type Move struct {
	Unit   Unit
	Source string
	Dest   string
}

// Support lends strength to another unit's hold or move. A supported hold
// is recorded with Target.Source == Target.Dest.
type Support struct {
	Unit   Unit
	Place  string
	Target Move
}

// Convoy carries another unit's move across sea provinces. Only moves can
// be convoyed.
type Convoy struct {
	Unit   Unit
	Place  string
	Target Move
}

func (h Hold) Province() string    { return h.Place }
func (m Move) Province() string    { return m.Source }
func (s Support) Province() string { return s.Place }
func (c Convoy) Province() string  { return c.Place }
