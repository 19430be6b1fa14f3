package pre2tex

import "fmt"

// Default markup constants.
const (
	DefaultHeaderMarker   = '#'
	DefaultAlignMarker    = '>'
	DefaultBreakSentinel  = "~~"
	DefaultSplitSentinel  = "~~"
	DefaultMaxHeaderLevel = 5
)

// maxSupportedHeaderLevel is the highest level the renderer has a rule for.
const maxSupportedHeaderLevel = 5

// LineClass is the outer tag of a line's kind.
type LineClass int

// Line classes.
const (
	ClassNormal LineClass = iota // prose
	ClassHeader                  // heading, carries a level
	ClassAlign                   // alignment/equation
)

// String returns the class name for error messages and test output.
func (c LineClass) String() string {
	switch c {
	case ClassNormal:
		return "normal"
	case ClassHeader:
		return "header"
	case ClassAlign:
		return "align"
	}
	return fmt.Sprintf("LineClass(%d)", int(c))
}

// LineKind is the grouping key for segmentation. Two lines belong to the
// same block iff their kinds compare equal, which includes the header
// level: a level change splits blocks even between two headings.
type LineKind struct {
	Class LineClass
	Level int // heading level; zero for non-header kinds
}

// Line is one classified input line with its marker prefix stripped.
type Line struct {
	Kind LineKind
	Text string
}

// Block is a maximal run of consecutive lines sharing one kind.
// Content is never empty and holds marker-stripped text in input order.
type Block struct {
	Kind    LineKind
	Content []string
}

// Markup holds the injected markup constants: which characters mark
// headings and alignment lines, the in-band sentinels, and the highest
// heading level the document may use.
type Markup struct {
	HeaderMarker   byte   // leading character of heading lines
	AlignMarker    byte   // leading character of alignment lines
	BreakSentinel  string // prose line that becomes a paragraph break
	SplitSentinel  string // formula/comment separator in alignment lines
	MaxHeaderLevel int    // 1 to 5
}

// DefaultMarkup returns the built-in markup constants.
func DefaultMarkup() Markup {
	return Markup{
		HeaderMarker:   DefaultHeaderMarker,
		AlignMarker:    DefaultAlignMarker,
		BreakSentinel:  DefaultBreakSentinel,
		SplitSentinel:  DefaultSplitSentinel,
		MaxHeaderLevel: DefaultMaxHeaderLevel,
	}
}

// Validate checks that the markup constants are usable.
func (m Markup) Validate() error {
	if !isMarkerByte(m.HeaderMarker) {
		return fmt.Errorf("%w: header marker %q", ErrMarkerNotSingleByte, m.HeaderMarker)
	}
	if !isMarkerByte(m.AlignMarker) {
		return fmt.Errorf("%w: alignment marker %q", ErrMarkerNotSingleByte, m.AlignMarker)
	}
	if m.HeaderMarker == m.AlignMarker {
		return fmt.Errorf("%w: both are %q", ErrMarkersEqual, m.HeaderMarker)
	}
	if m.BreakSentinel == "" {
		return fmt.Errorf("%w: break sentinel", ErrEmptySentinel)
	}
	if m.SplitSentinel == "" {
		return fmt.Errorf("%w: split sentinel", ErrEmptySentinel)
	}
	if m.MaxHeaderLevel < 1 || m.MaxHeaderLevel > maxSupportedHeaderLevel {
		return fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidMaxLevel, m.MaxHeaderLevel, maxSupportedHeaderLevel)
	}
	return nil
}

// isMarkerByte reports whether b can serve as a line marker. Control
// characters and spaces would make markers invisible or ambiguous, and a
// multi-byte rune cannot be a single leading byte.
func isMarkerByte(b byte) bool {
	return b > ' ' && b < 0x7f
}

// Option configures a Transpiler.
type Option func(*Transpiler)

// transpilerConfig holds internal configuration for Transpiler.
type transpilerConfig struct {
	header string
	footer string
	markup Markup
}

// WithHeader replaces the static document header emitted before the first
// block. The header must leave the flushleft environment open, since every
// block is rendered assuming it is.
func WithHeader(header string) Option {
	return func(t *Transpiler) {
		t.cfg.header = header
	}
}

// WithFooter replaces the static document footer emitted after the last
// block.
func WithFooter(footer string) Option {
	return func(t *Transpiler) {
		t.cfg.footer = footer
	}
}

// WithMarkup replaces the markup constants. The markup is validated by New.
func WithMarkup(m Markup) Option {
	return func(t *Transpiler) {
		t.cfg.markup = m
	}
}
