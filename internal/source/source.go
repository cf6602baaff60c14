// Package source provides the immutable character buffer the lexer and
// parser read from, plus the Position/Range arithmetic they share.
package source

import "strings"

// Position is a nonnegative character (rune) offset into a Source buffer.
// It is not a byte offset: a Source position counts Unicode scalars.
type Position int

// Start is the Position of the beginning of any Source.
const Start Position = 0

// Advance returns the position moved forward by n runes.
func (p Position) Advance(n int) Position {
	return p + Position(n)
}

// Backward returns the position moved back by n runes. It panics if the
// result would be negative: callers must never ask a Position to underflow.
func (p Position) Backward(n int) Position {
	if int(p)-n < 0 {
		panic("source: Position.Backward underflowed")
	}
	return p - Position(n)
}

// Distance returns lhs - rhs, the number of runes between rhs and lhs.
func Distance(lhs, rhs Position) int {
	return int(lhs - rhs)
}

// Range is a half-open span [Start, End) of Positions. The invariant
// Start <= End must hold for every Range in the system.
type Range struct {
	Start Position
	End   Position
}

// Width returns the number of runes the range covers.
func (r Range) Width() int {
	return Distance(r.End, r.Start)
}

// IsEmpty reports whether the range covers zero runes.
func (r Range) IsEmpty() bool {
	return r.Width() == 0
}

// SkipUntil advances r.Start one rune at a time until pred holds for the
// current range or the range empties.
func (r Range) SkipUntil(pred func(Range) bool) Range {
	for !r.IsEmpty() && !pred(r) {
		r.Start = r.Start.Advance(1)
	}
	return r
}

// Source is an immutable, indexable sequence of characters. Line endings are
// normalized on construction: every conceptual line is stored with exactly
// one trailing '\n', so an input missing a final newline gets one appended.
type Source struct {
	buffer []rune
}

// New builds a Source from raw text, normalizing line endings.
func New(text string) *Source {
	var buffer []rune
	for _, line := range splitLines(text) {
		buffer = append(buffer, []rune(line)...)
		buffer = append(buffer, '\n')
	}
	return &Source{buffer: buffer}
}

// splitLines mirrors Rust's str::lines(): split on '\n', trim a trailing
// '\r' from each piece, and drop a final empty piece produced by a trailing
// newline in the input (lines() does not yield a trailing empty line).
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}

// At returns the character at pos. The caller must ensure pos is within
// [0, Len()); callers that don't already know this should check Range()
// first.
func (s *Source) At(pos Position) rune {
	return s.buffer[pos]
}

// Len returns the number of runes in the buffer.
func (s *Source) Len() int {
	return len(s.buffer)
}

// Range returns the full span of the source.
func (s *Source) Range() Range {
	return Range{Start: Start, End: Position(len(s.buffer))}
}

// Get returns the characters covered by r as a string.
func (s *Source) Get(r Range) string {
	return string(s.buffer[r.Start:r.End])
}

// StartsWith reports whether the text at r.Start begins with literal. It
// reports false when r is narrower than literal.
func StartsWith(s *Source, literal string, r Range) bool {
	cur := r
	for _, expected := range literal {
		if cur.IsEmpty() {
			return false
		}
		if s.At(cur.Start) != expected {
			return false
		}
		cur.Start = cur.Start.Advance(1)
	}
	return true
}
