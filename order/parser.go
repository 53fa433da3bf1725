package order

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nstehr/despatch/combinator"
)

// ErrUnparseable reports that no interpretation of a line matches a rule.
// There is exactly one failure kind; a failed rule leaves its input
// untouched, so callers can hand the same line to the next rule.
var ErrUnparseable = errors.New("no order interpretation matches")

func unparseable(line string) error {
	return fmt.Errorf("%w: %q", ErrUnparseable, line)
}

// Keyword matchers, longest literal first so "holds" is never read as "h"
// followed by stray text. Built from the combinator layer; the surrounding
// backtracking stays in plain recursive functions.
var (
	holdKeyword    = keyword("holds", "hold", "h")
	moveSeparator  = keyword("-", "to")
	supportKeyword = keyword("supports", "support", "s")
	convoyKeyword  = keyword("convoys", "convoy", "c")
)

// keyword matches any of the given literals, tried in the order given.
func keyword(tags ...string) combinator.Parser[string] {
	p := combinator.Never[string]()
	for i := len(tags) - 1; i >= 0; i-- {
		alt := combinator.Either(combinator.Literal(tags[i]), p)
		p = combinator.Map(alt, func(a combinator.Alt[string, string]) string {
			if a.IsLeft {
				return a.Left
			}
			return a.Right
		})
	}
	return p
}

// parseUnit recognizes a unit designation at the head of s. Long forms are
// tried before the single letters so "army" is not read as "a" + "rmy".
func parseUnit(s string) (Unit, string, bool) {
	switch {
	case strings.HasPrefix(s, "army"):
		return Army, s[len("army"):], true
	case strings.HasPrefix(s, "fleet"):
		return Fleet, s[len("fleet"):], true
	case strings.HasPrefix(s, "a"):
		return Army, s[1:], true
	case strings.HasPrefix(s, "f"):
		return Fleet, s[1:], true
	}
	return NoUnit, s, false
}

func skipSpace(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// requireSpace consumes at least one whitespace rune or fails. The grammar
// uses it wherever a token boundary is mandatory, most importantly right
// after a recognized unit token.
func requireSpace(s string) (string, bool) {
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsSpace(r) {
		return s, false
	}
	return skipSpace(s), true
}

// leadUnit handles the optional unit designation shared by every rule. A
// recognized token must be followed by whitespace; otherwise the whole rule
// fails with no fallback to "no unit", which keeps province names starting
// with "a" or "f" (armenia, finland) from being misread as unit orders.
// When no token is recognized, leading whitespace is merely trimmed.
func leadUnit(s string) (Unit, string, bool) {
	if unit, rest, ok := parseUnit(s); ok {
		rest, ok = requireSpace(rest)
		if !ok {
			return NoUnit, s, false
		}
		return unit, rest, true
	}
	return NoUnit, skipSpace(s), true
}

// isNameRune reports whether r can appear in a province name.
func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || r == '.' || r == '(' || r == ')'
}

// provinces yields every syntactically valid province-name prefix of s,
// shortest first, paired with the text that follows it. One candidate is
// produced per word boundary; the final candidate consumes all of s. If no
// name rune occurs before the end of input the sequence is empty.
func provinces(s string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		i := 0
		for {
			// Skip delimiters to the start of the next word.
			sawName := false
			for i < len(s) {
				r, n := utf8.DecodeRuneInString(s[i:])
				i += n
				if isNameRune(r) {
					sawName = true
					break
				}
			}
			if !sawName {
				return
			}

			// Extend through the word and emit at its boundary.
			atBoundary := false
			for i < len(s) {
				r, n := utf8.DecodeRuneInString(s[i:])
				if !isNameRune(r) {
					if !yield(s[:i], s[i:]) {
						return
					}
					i += n
					atBoundary = true
					break
				}
				i += n
			}
			if !atBoundary {
				// Ran off the end mid-word: the whole text is the
				// last candidate.
				yield(s, "")
				return
			}
		}
	}
}

// ParseHold parses "[unit] province (holds|hold|h)". The keyword must end
// the line; the first province candidate achieving that wins.
func ParseHold(line string) (Hold, error) {
	unit, rest, ok := leadUnit(line)
	if !ok {
		return Hold{}, unparseable(line)
	}
	for place, tail := range provinces(rest) {
		tail, ok := requireSpace(tail)
		if !ok {
			continue
		}
		for _, after := range holdKeyword(tail) {
			if after == "" {
				return Hold{Unit: unit, Place: place}, nil
			}
		}
	}
	return Hold{}, unparseable(line)
}

// ParseMove parses "[unit] source (-|to) dest". Whitespace around the
// separator is optional, so "brest-paris" and "brest - paris" both parse.
// Source candidates are the outer loop, destination candidates the inner
// one; the first pair reaching end-of-input wins.
func ParseMove(line string) (Move, error) {
	unit, rest, ok := leadUnit(line)
	if !ok {
		return Move{}, unparseable(line)
	}
	for source, tail := range provinces(rest) {
		_, afterSep, ok := combinator.First(moveSeparator, skipSpace(tail))
		if !ok {
			continue
		}
		for dest, end := range provinces(skipSpace(afterSep)) {
			if end == "" {
				return Move{Unit: unit, Source: source, Dest: dest}, nil
			}
		}
	}
	return Move{}, unparseable(line)
}

// ParseSupport parses "[unit] province (supports|support|s) order", where
// order is a move or a hold on the remainder. A supported hold is recorded
// as a move onto its own province.
func ParseSupport(line string) (Support, error) {
	unit, rest, ok := leadUnit(line)
	if !ok {
		return Support{}, unparseable(line)
	}
	for place, tail := range provinces(rest) {
		tail, ok := requireSpace(tail)
		if !ok {
			continue
		}
		for _, after := range supportKeyword(tail) {
			target, ok := requireSpace(after)
			if !ok {
				continue
			}
			if m, err := ParseMove(target); err == nil {
				return Support{Unit: unit, Place: place, Target: m}, nil
			}
			if h, err := ParseHold(target); err == nil {
				held := Move{Unit: h.Unit, Source: h.Place, Dest: h.Place}
				return Support{Unit: unit, Place: place, Target: held}, nil
			}
		}
	}
	return Support{}, unparseable(line)
}

// ParseConvoy parses "[unit] province (convoys|convoy|c) move". Unlike
// support, only a move can follow.
func ParseConvoy(line string) (Convoy, error) {
	unit, rest, ok := leadUnit(line)
	if !ok {
		return Convoy{}, unparseable(line)
	}
	for place, tail := range provinces(rest) {
		tail, ok := requireSpace(tail)
		if !ok {
			continue
		}
		for _, after := range convoyKeyword(tail) {
			target, ok := requireSpace(after)
			if !ok {
				continue
			}
			if m, err := ParseMove(target); err == nil {
				return Convoy{Unit: unit, Place: place, Target: m}, nil
			}
		}
	}
	return Convoy{}, unparseable(line)
}

// Parse tries each order form against the line in priority order: hold,
// move, support, convoy. The line is unparseable only once every rule has
// rejected it.
func Parse(line string) (Order, error) {
	if h, err := ParseHold(line); err == nil {
		return h, nil
	}
	if m, err := ParseMove(line); err == nil {
		return m, nil
	}
	if s, err := ParseSupport(line); err == nil {
		return s, nil
	}
	if c, err := ParseConvoy(line); err == nil {
		return c, nil
	}
	return nil, unparseable(line)
}
