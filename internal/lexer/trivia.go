package lexer

import (
	"unicode"

	"github.com/denvl-lang/denvl/internal/source"
)

// LeadingTriviaWidth is triviaWidth exported for the parser's top-level
// entry point, which must consume the source's leading trivia before any
// production runs.
func LeadingTriviaWidth(src *source.Source, r source.Range) int {
	return triviaWidth(src, r)
}

// triviaWidth consumes a run of whitespace, line comments ("// ... \n"), and
// block comments ("/* ... */") starting at r.Start and returns how many
// runes it consumed. A block comment missing its terminator is tolerated
// silently: trivia then runs to the end of input.
func triviaWidth(src *source.Source, r source.Range) int {
	start := r.Start
	for !r.IsEmpty() {
		ch := src.At(r.Start)
		switch {
		case unicode.IsSpace(ch) || ch == '\t':
			r.Start = r.Start.Advance(1)
		case source.StartsWith(src, "//", r):
			r.Start = r.Start.Advance(2)
			r = r.SkipUntil(func(cur source.Range) bool {
				return source.StartsWith(src, "\n", cur)
			})
			if source.StartsWith(src, "\n", r) {
				r.Start = r.Start.Advance(1)
			}
		case source.StartsWith(src, "/*", r):
			r.Start = r.Start.Advance(2)
			r = r.SkipUntil(func(cur source.Range) bool {
				return source.StartsWith(src, "*/", cur)
			})
			if source.StartsWith(src, "*/", r) {
				r.Start = r.Start.Advance(2)
			}
		default:
			return source.Distance(r.Start, start)
		}
	}
	return source.Distance(r.Start, start)
}
