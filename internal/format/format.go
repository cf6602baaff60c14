// Package format renders diagnostics as a single walk over the source
// counting line/column, colorized when the output is a terminal.
package format

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/denvl-lang/denvl/internal/config"
	"github.com/denvl-lang/denvl/internal/diag"
	"github.com/denvl-lang/denvl/internal/source"
)

// Styles holds the lipgloss styles used to colorize a rendered diagnostic.
type Styles struct {
	Header lipgloss.Style
	Gutter lipgloss.Style
	Caret  lipgloss.Style
}

// DefaultStyles mirrors a typical compiler's red-header, dim-gutter,
// yellow-caret palette.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true),
		Gutter: lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		Caret:  lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308")).Bold(true),
	}
}

// Formatter renders diagnostics against one Source. useColor decides
// whether lipgloss styling is applied; NewFormatter defaults it to
// whether w is a terminal, but a caller piping to a file can still force
// plain text via WithColor(false). tabWidth and contextLines come from
// config.Config (WithConfig) and default to config.Default()'s values.
type Formatter struct {
	src          *source.Source
	filename     string
	styles       Styles
	useColor     bool
	tabWidth     int
	contextLines int
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithColor forces color on or off, overriding the terminal auto-detection.
func WithColor(on bool) Option {
	return func(f *Formatter) { f.useColor = on }
}

// WithStyles overrides the default palette.
func WithStyles(s Styles) Option {
	return func(f *Formatter) { f.styles = s }
}

// WithConfig applies a loaded config.Config: cfg.TabWidth sets the column
// width of a literal tab (falling back to config.Default()'s width when
// cfg.TabWidth is 0), cfg.ContextLines sets how many source lines of
// context precede the caret line, and cfg.Color, when non-nil, overrides
// the terminal auto-detection the same way WithColor does.
func WithConfig(cfg config.Config) Option {
	return func(f *Formatter) {
		f.tabWidth = cfg.TabWidth
		if f.tabWidth == 0 {
			f.tabWidth = config.Default().TabWidth
		}
		f.contextLines = cfg.ContextLines
		if cfg.Color != nil {
			f.useColor = *cfg.Color
		}
	}
}

// NewFormatter builds a Formatter for src, identified as filename in
// output. Color defaults on when w is an interactive terminal; tab width
// and context line count default to config.Default() until WithConfig
// overrides them.
func NewFormatter(src *source.Source, filename string, w io.Writer, opts ...Option) *Formatter {
	defaults := config.Default()
	f := &Formatter{
		src:          src,
		filename:     filename,
		styles:       DefaultStyles(),
		useColor:     isTerminal(w),
		tabWidth:     defaults.TabWidth,
		contextLines: defaults.ContextLines,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// locate walks src once, counting '\n' as a line break and a literal '\t'
// as f.tabWidth columns, and returns the 1-based line and 0-based column of
// pos, the text of that line up to (but not including) pos, and up to
// f.contextLines immediately preceding complete lines.
func (f *Formatter) locate(pos source.Position) (line, col int, context []string, linePrefix string) {
	line = 1
	col = 0
	var lines []string
	var buf strings.Builder
	for p := source.Start; p < pos; p = p.Advance(1) {
		ch := f.src.At(p)
		if ch == '\n' {
			lines = append(lines, buf.String())
			buf.Reset()
			line++
			col = 0
			continue
		}
		if ch == '\t' {
			col += f.tabWidth
		} else {
			col++
		}
		buf.WriteRune(ch)
	}

	start := len(lines) - f.contextLines
	if start < 0 {
		start = 0
	}
	return line, col, lines[start:], buf.String()
}

// Render writes one diagnostic to w in the form:
//
//	error at <filename>(<line>:<column>) <message>
//	> <line prefix through the diagnostic position>
//	  <column+2 spaces>^
//
// preceded by up to f.contextLines lines of "> "-prefixed context.
func (f *Formatter) Render(w io.Writer, d diag.Diagnostic) {
	line, col, context, prefix := f.locate(d.Position())
	header := fmt.Sprintf("error at %s(%d:%d) %s", f.filename, line, col, d.Message())
	caret := strings.Repeat(" ", col+2) + "^"

	gutter := ">"
	if f.useColor {
		header = f.styles.Header.Render(header)
		caret = f.styles.Caret.Render(caret)
		gutter = f.styles.Gutter.Render(">")
	}

	fmt.Fprintln(w, header)
	for _, l := range context {
		fmt.Fprintf(w, "%s %s\n", gutter, l)
	}
	fmt.Fprintf(w, "%s %s\n%s\n", gutter, prefix, caret)
}

// RenderAll stable-sorts diagnostics by position and renders each in turn,
// separated by a blank line.
func (f *Formatter) RenderAll(w io.Writer, diagnostics []diag.Diagnostic) {
	sorted := append([]diag.Diagnostic{}, diagnostics...)
	diag.SortByPosition(sorted)
	for i, d := range sorted {
		if i > 0 {
			fmt.Fprintln(w)
		}
		f.Render(w, d)
	}
}
