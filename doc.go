// Package pre2tex transpiles line-oriented "pre" markup into LaTeX source.
//
// # Markup
//
// Each input line is classified by its leading character:
//
//	# Title          heading (level = number of leading '#')
//	>x = 1~~comment  alignment line (equation, optional inline comment)
//	anything else    prose
//
// Runs of consecutive same-kind lines form blocks. Heading blocks become
// \section, \subsection, and friends; alignment blocks become an align*
// environment with an optional comment column; prose blocks pass through,
// with a lone "~~" line turning into a paragraph break.
//
// # Quick Start
//
// Create a transpiler and feed it a document:
//
//	tp, err := pre2tex.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tex := tp.Transpile("# Hello\nWorld")
//	os.WriteFile("out.tex", []byte(tex), 0644)
//
// The output begins with the document preamble and ends with the document
// closing; both are injectable via WithHeader and WithFooter. The marker
// characters and sentinels are injectable via WithMarkup.
//
// # Concurrency
//
// A Transpiler holds no mutable state. A single instance may be shared
// across goroutines, one document per call.
//
// # Fatal conditions
//
// Two conditions indicate a broken pipeline invariant rather than bad user
// input: rendering a block with no content lines, and a heading level
// outside the supported range. Both panic with *InvariantError instead of
// returning an error, so callers cannot mistake them for recoverable
// failures. See InvariantError.
package pre2tex
