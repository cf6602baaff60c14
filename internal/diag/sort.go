package diag

import "sort"

// SortByPosition stable-sorts diagnostics by their anchor position. Applied
// once, before pretty-printing; duplicates (expected when recovery re-enters
// a failing production) are preserved in emission order for equal positions.
func SortByPosition(diagnostics []Diagnostic) {
	sort.SliceStable(diagnostics, func(i, j int) bool {
		return diagnostics[i].Position() < diagnostics[j].Position()
	})
}
