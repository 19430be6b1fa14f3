package pre2tex

import (
	"regexp"
	"strings"
)

// crlfOrCR matches Windows and old-Mac line endings for normalization.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// lineClassifier maps one raw input line to a typed Line.
type lineClassifier interface {
	ClassifyLine(raw string) Line
}

// markerClassifier classifies lines by their leading marker character.
type markerClassifier struct {
	markup Markup
}

func newMarkerClassifier(m Markup) *markerClassifier {
	return &markerClassifier{markup: m}
}

// ClassifyLine returns the Line for one raw line without its terminator.
// Alignment wins over heading when the markers are checked in order, and
// every input maps to exactly one Line; classification cannot fail.
func (c *markerClassifier) ClassifyLine(raw string) Line {
	switch {
	case len(raw) > 0 && raw[0] == c.markup.AlignMarker:
		return Line{Kind: LineKind{Class: ClassAlign}, Text: raw[1:]}

	case len(raw) > 0 && raw[0] == c.markup.HeaderMarker:
		level := 1
		for level < len(raw) && raw[level] == c.markup.HeaderMarker {
			level++
		}
		return Line{Kind: LineKind{Class: ClassHeader, Level: level}, Text: raw[level:]}

	default:
		return Line{Kind: LineKind{Class: ClassNormal}, Text: raw}
	}
}

// splitLines normalizes line endings and splits the source into raw lines.
// A trailing newline does not produce a phantom empty line, so an empty
// source yields no lines at all.
func splitLines(source string) []string {
	source = crlfOrCR.ReplaceAllString(source, "\n")
	lines := strings.Split(source, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
