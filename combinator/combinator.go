// Package combinator is a small parsing-combinator framework. A Parser maps
// an input string to a lazy sequence of candidate parses, each pairing a
// value with the input left unconsumed. Every viable interpretation is kept
// rather than collapsing to one, so a grammar built on top can backtrack by
// simply pulling the next candidate. Failure is an empty sequence, never a
// sentinel value.
package combinator

import (
	"iter"
	"strings"
)

// Parser produces, on demand, every candidate parse of its input. The
// remainder in each candidate is always a suffix of the original input.
// Consumers that stop after the first match never pay for the rest.
type Parser[T any] func(input string) iter.Seq2[T, string]

// Pair holds the values of two chained parsers.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Maybe is an optional parse value.
type Maybe[T any] struct {
	Value   T
	Present bool
}

// Some wraps a present value.
func Some[T any](v T) Maybe[T] { return Maybe[T]{Value: v, Present: true} }

// Alt tags a value from Either with the branch that produced it.
type Alt[L, R any] struct {
	Left   L
	Right  R
	IsLeft bool
}

// TakeLeft and TakeRight build tagged Alt values.
func TakeLeft[L, R any](v L) Alt[L, R]  { return Alt[L, R]{Left: v, IsLeft: true} }
func TakeRight[L, R any](v R) Alt[L, R] { return Alt[L, R]{Right: v} }

// Never fails on every input. It is the identity for alternation.
func Never[T any]() Parser[T] {
	return func(string) iter.Seq2[T, string] {
		return func(func(T, string) bool) {}
	}
}

// Empty succeeds exactly once, consuming nothing.
func Empty() Parser[struct{}] {
	return func(input string) iter.Seq2[struct{}, string] {
		return func(yield func(struct{}, string) bool) {
			yield(struct{}{}, input)
		}
	}
}

// Literal matches tag as a case-sensitive prefix of the input. At most one
// candidate: the tag itself, with the prefix stripped from the remainder.
func Literal(tag string) Parser[string] {
	return func(input string) iter.Seq2[string, string] {
		return func(yield func(string, string) bool) {
			if strings.HasPrefix(input, tag) {
				yield(tag, input[len(tag):])
			}
		}
	}
}

// Optional yields every candidate of p wrapped present, then, once p is
// exhausted, exactly one absent candidate with the input unchanged. The
// ordering matters: presence always comes before the fallback.
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	return func(input string) iter.Seq2[Maybe[T], string] {
		return func(yield func(Maybe[T], string) bool) {
			for v, rest := range p(input) {
				if !yield(Some(v), rest) {
					return
				}
			}
			yield(Maybe[T]{}, input)
		}
	}
}

// Either runs both parsers against the same starting input: all of left's
// candidates tagged left, then all of right's tagged right. Alternation,
// not sequencing.
func Either[L, R any](left Parser[L], right Parser[R]) Parser[Alt[L, R]] {
	return func(input string) iter.Seq2[Alt[L, R], string] {
		return func(yield func(Alt[L, R], string) bool) {
			for v, rest := range left(input) {
				if !yield(TakeLeft[L, R](v), rest) {
					return
				}
			}
			for v, rest := range right(input) {
				if !yield(TakeRight[L, R](v), rest) {
					return
				}
			}
		}
	}
}

// Chain sequences two parsers: for each candidate (a, rest) of first, every
// candidate of second on rest, paired. second runs lazily, one first
// candidate at a time, so an early-stopping consumer bounds the search.
func Chain[A, B any](first Parser[A], second Parser[B]) Parser[Pair[A, B]] {
	return func(input string) iter.Seq2[Pair[A, B], string] {
		return func(yield func(Pair[A, B], string) bool) {
			for a, rest := range first(input) {
				for b, rem := range second(rest) {
					if !yield(Pair[A, B]{First: a, Second: b}, rem) {
						return
					}
				}
			}
		}
	}
}

// Map transforms each candidate value through f. Remainders and the number
// of candidates are unchanged.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(input string) iter.Seq2[B, string] {
		return func(yield func(B, string) bool) {
			for v, rest := range p(input) {
				if !yield(f(v), rest) {
					return
				}
			}
		}
	}
}

// First pulls the first candidate p produces on input, if any. This is the
// first-match-wins consumer policy grammars use at commit points.
func First[T any](p Parser[T], input string) (T, string, bool) {
	for v, rest := range p(input) {
		return v, rest, true
	}
	var zero T
	return zero, "", false
}
