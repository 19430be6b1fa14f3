package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pre2tex [flags] <input.pre ...>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Transpile pre markup files to LaTeX.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    One or more .pre or .txt files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>        Output file (one input) or directory")
	fmt.Fprintln(w, "      --stdout               Print LaTeX to standard output")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>          Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markup:")
	fmt.Fprintln(w, "      --header-marker <c>    Heading marker character (default \"#\")")
	fmt.Fprintln(w, "      --align-marker <c>     Alignment marker character (default \">\")")
	fmt.Fprintln(w, "      --break-sentinel <s>   Paragraph break line (default \"~~\")")
	fmt.Fprintln(w, "      --split-sentinel <s>   Formula/comment separator (default \"~~\")")
	fmt.Fprintln(w, "      --max-level <n>        Max heading level (1-5, default 5)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --header-file <path>   LaTeX preamble file")
	fmt.Fprintln(w, "      --footer-file <path>   LaTeX closing file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "      --init-config          Write a default config file and exit")
	fmt.Fprintln(w, "      --version              Show version and exit")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show detailed timing")
	fmt.Fprintln(w, "  -h, --help                 Show this help")
}
