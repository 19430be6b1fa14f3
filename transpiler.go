package pre2tex

import "strings"

// DefaultHeader is the static preamble emitted before the first block.
// It opens the flushleft environment every block fragment assumes open.
const DefaultHeader = `\documentclass[12pt, a4paper]{article}
\usepackage{amsmath}
\usepackage{amsfonts}
\usepackage{amssymb}
\begin{document}
\begin{flushleft}
`

// DefaultFooter closes what DefaultHeader opened.
const DefaultFooter = `\end{flushleft}
\end{document}
`

// Transpiler runs the classify, segment, render, assemble pipeline.
type Transpiler struct {
	cfg        transpilerConfig
	classifier lineClassifier
	segmenter  blockSegmenter
	renderer   blockRenderer
}

// New creates a Transpiler with default configuration.
// Use options to customize behavior (e.g., WithMarkup, WithHeader).
func New(opts ...Option) (*Transpiler, error) {
	t := &Transpiler{
		cfg: transpilerConfig{
			header: DefaultHeader,
			footer: DefaultFooter,
			markup: DefaultMarkup(),
		},
	}

	for _, opt := range opts {
		opt(t)
	}

	if err := t.cfg.markup.Validate(); err != nil {
		return nil, err
	}

	t.classifier = newMarkerClassifier(t.cfg.markup)
	t.segmenter = newRunSegmenter()
	t.renderer = newLatexRenderer(t.cfg.markup)

	return t, nil
}

// Transpile converts one pre document into LaTeX source. It is a pure
// function of its input: no I/O, no shared state, safe to call from
// multiple goroutines on one Transpiler. An empty source yields just the
// header and footer.
func (t *Transpiler) Transpile(source string) string {
	lines := splitLines(source)

	typed := make([]Line, len(lines))
	for i, raw := range lines {
		typed[i] = t.classifier.ClassifyLine(raw)
	}

	blocks := t.segmenter.Segment(typed)

	var sb strings.Builder
	sb.WriteString(t.cfg.header)
	for _, b := range blocks {
		sb.WriteString(t.renderer.RenderBlock(b))
	}
	sb.WriteString(t.cfg.footer)
	return sb.String()
}

// Markup returns the markup constants the transpiler was built with.
func (t *Transpiler) Markup() Markup {
	return t.cfg.markup
}
