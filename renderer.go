package pre2tex

import (
	"fmt"
	"strings"
)

// blockRenderer converts one block into a LaTeX fragment.
type blockRenderer interface {
	RenderBlock(b Block) string
}

// latexRenderer renders blocks against the configured markup.
//
// Every fragment assumes the flushleft environment is open on entry and
// leaves it open on exit. The level-4 heading is the only case that closes
// it, and only transiently around its centered title.
type latexRenderer struct {
	markup Markup
}

func newLatexRenderer(m Markup) *latexRenderer {
	return &latexRenderer{markup: m}
}

// RenderBlock dispatches on the block kind. It panics with *InvariantError
// when the block has no content or carries an unsupported heading level;
// both are pipeline bugs, not document errors (see InvariantError).
func (r *latexRenderer) RenderBlock(b Block) string {
	if len(b.Content) == 0 {
		invariant("renderer", "%s block has no content lines", b.Kind.Class)
	}

	switch b.Kind.Class {
	case ClassHeader:
		return r.renderHeader(b)
	case ClassAlign:
		return r.renderAlign(b)
	default:
		return r.renderNormal(b)
	}
}

// renderNormal joins prose lines, turning each line that is exactly the
// break sentinel (after trimming) into a paragraph break.
func (r *latexRenderer) renderNormal(b Block) string {
	lines := make([]string, len(b.Content))
	for i, line := range b.Content {
		if strings.TrimSpace(line) == r.markup.BreakSentinel {
			lines[i] = `\par`
		} else {
			lines[i] = line
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}

// renderHeader emits the sectioning command for the block's level. Levels
// above the configured maximum never reach the dispatch because the markup
// caps MaxHeaderLevel at the highest level with a rule here.
func (r *latexRenderer) renderHeader(b Block) string {
	level := b.Kind.Level
	if level < 1 || level > r.markup.MaxHeaderLevel {
		invariant("renderer", "unsupported header level %d (max %d)", level, r.markup.MaxHeaderLevel)
	}

	// Trim each line before joining: the marker strip leaves the space
	// after "# " on every line, and it must not double up in the title.
	parts := make([]string, len(b.Content))
	for i, line := range b.Content {
		parts[i] = strings.TrimSpace(line)
	}
	title := strings.TrimSpace(strings.Join(parts, " "))

	switch level {
	case 1:
		return fmt.Sprintf("\\section{%s}\n", title)
	case 2:
		return fmt.Sprintf("\\subsection{%s}\n", title)
	case 3:
		return fmt.Sprintf("\\subsubsection{%s}\n", title)
	case 4:
		// A centered title interrupts the ambient flushleft environment.
		// Close it, center the title, and reopen it so the next block finds
		// the environment in the state it expects.
		var sb strings.Builder
		sb.WriteString("\\end{flushleft}\n")
		sb.WriteString("\\begin{center}\n")
		fmt.Fprintf(&sb, "{\\Large \\textbf{%s}}\n", title)
		sb.WriteString("\\end{center}\n")
		sb.WriteString("\\begin{flushleft}\n")
		return sb.String()
	default:
		return fmt.Sprintf("\\textbf{%s}\\\\\n", title)
	}
}

// renderAlign emits an align* environment. Whether the block carries a
// comment column is decided for the whole block up front: one commented
// line forces two columns on every row, so uncommented rows get a \quad
// placeholder to keep the column count uniform. The pre-scan cannot be
// folded into the emit loop without re-rendering earlier rows.
func (r *latexRenderer) renderAlign(b Block) string {
	sentinel := r.markup.SplitSentinel

	commented := false
	for _, line := range b.Content {
		if strings.Contains(line, sentinel) {
			commented = true
			break
		}
	}

	var sb strings.Builder
	sb.WriteString("\\begin{align*}\n")
	for _, line := range b.Content {
		if idx := strings.Index(line, sentinel); idx >= 0 {
			formula := strings.TrimSpace(line[:idx])
			comment := line[idx+len(sentinel):] // verbatim, including spaces
			fmt.Fprintf(&sb, "%s && \\text{%s}\\\\\n", formula, comment)
		} else if commented {
			fmt.Fprintf(&sb, "%s && \\quad\\\\\n", line)
		} else {
			fmt.Fprintf(&sb, "%s\\\\\n", line)
		}
	}
	sb.WriteString("\\end{align*}\n")
	return sb.String()
}
