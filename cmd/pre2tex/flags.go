package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across modes.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// markupFlags holds markup override flags.
type markupFlags struct {
	headerMarker  string
	alignMarker   string
	breakSentinel string
	splitSentinel string
	maxLevel      int
}

// documentFlags holds preamble/closing override flags.
type documentFlags struct {
	headerFile string
	footerFile string
}

// transpileFlags holds all flags for the transpile run.
type transpileFlags struct {
	common     commonFlags
	output     string
	workers    int
	toStdout   bool
	initConfig bool
	version    bool
	help       bool
	markup     markupFlags
	document   documentFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addMarkupFlags adds markup override flags to a FlagSet.
func addMarkupFlags(fs *flag.FlagSet, f *markupFlags) {
	fs.StringVar(&f.headerMarker, "header-marker", "", "heading marker character (default \"#\")")
	fs.StringVar(&f.alignMarker, "align-marker", "", "alignment marker character (default \">\")")
	fs.StringVar(&f.breakSentinel, "break-sentinel", "", "paragraph break line (default \"~~\")")
	fs.StringVar(&f.splitSentinel, "split-sentinel", "", "formula/comment separator (default \"~~\")")
	fs.IntVar(&f.maxLevel, "max-level", 0, "max heading level (1-5, default 5)")
}

// addDocumentFlags adds preamble/closing flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.headerFile, "header-file", "", "LaTeX preamble file")
	fs.StringVar(&f.footerFile, "footer-file", "", "LaTeX closing file")
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*transpileFlags, []string, error) {
	fs := flag.NewFlagSet("pre2tex", flag.ContinueOnError)
	f := &transpileFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.toStdout, "stdout", false, "print LaTeX to standard output")
	fs.BoolVar(&f.initConfig, "init-config", false, "write a default config file and exit")
	fs.BoolVar(&f.version, "version", false, "show version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help and exit")

	addCommonFlags(fs, &f.common)
	addMarkupFlags(fs, &f.markup)
	addDocumentFlags(fs, &f.document)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
