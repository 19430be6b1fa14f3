package pre2tex_test

import (
	"fmt"
	"log"

	pre2tex "github.com/alnah/go-pre2tex"
)

func Example() {
	tp, err := pre2tex.New(
		pre2tex.WithHeader("\\begin{document}\n\\begin{flushleft}\n"),
		pre2tex.WithFooter("\\end{flushleft}\n\\end{document}\n"),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(tp.Transpile("# Greeting\nHello world"))
	// Output:
	// \begin{document}
	// \begin{flushleft}
	// \section{Greeting}
	// Hello world
	// \end{flushleft}
	// \end{document}
}

func ExampleTranspiler_Transpile_alignment() {
	tp, err := pre2tex.New(
		pre2tex.WithHeader(""),
		pre2tex.WithFooter(""),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(tp.Transpile(">x = 1~~initial value\n>y = x + 1"))
	// Output:
	// \begin{align*}
	// x = 1 && \text{initial value}\\
	// y = x + 1 && \quad\\
	// \end{align*}
}

func ExampleWithMarkup() {
	m := pre2tex.DefaultMarkup()
	m.HeaderMarker = '*'

	tp, err := pre2tex.New(
		pre2tex.WithMarkup(m),
		pre2tex.WithHeader(""),
		pre2tex.WithFooter(""),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(tp.Transpile("** Methods"))
	// Output:
	// \subsection{Methods}
}
