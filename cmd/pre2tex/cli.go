package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	pre2tex "github.com/alnah/go-pre2tex"
	"github.com/alnah/go-pre2tex/internal/config"
	"github.com/alnah/go-pre2tex/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input files specified")
	ErrReadInput        = errors.New("failed to read input file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidExtension = errors.New("file must have .pre or .txt extension")
	ErrOutputNotDir     = errors.New("output must be a directory when transpiling multiple files")
)

// texExt is the extension of generated files.
const texExt = ".tex"

// run executes the CLI and returns the process exit code.
func run(args []string, env *Environment) int {
	flags, inputs, err := parseFlags(args[1:])
	if err != nil {
		return ExitUsage
	}

	switch {
	case flags.help:
		printUsage(env.Stdout)
		return ExitSuccess
	case flags.version:
		fmt.Fprintf(env.Stdout, "pre2tex %s\n", Version)
		return ExitSuccess
	case flags.initConfig:
		if err := writeDefaultConfig(env); err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	}

	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
	}

	opts, err := buildOptions(cfg, flags)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	tp, err := pre2tex.New(opts...)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	files, err := resolveFiles(inputs, flags.output, cfg.Output.DefaultDir)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	workers := resolveWorkers(flags.workers, len(files))
	results := transpileBatch(tp, files, workers, flags.toStdout)

	failed := printResults(results, flags, env)
	if failed > 0 {
		return ExitGeneral
	}
	return ExitSuccess
}

// buildOptions merges config and flags into transpiler options.
// Flags win over config values; config values win over defaults.
func buildOptions(cfg *config.Config, flags *transpileFlags) ([]pre2tex.Option, error) {
	markup := pre2tex.DefaultMarkup()

	for _, m := range []struct{ flag, value string }{
		{"--header-marker", flags.markup.headerMarker},
		{"--align-marker", flags.markup.alignMarker},
	} {
		if len(m.value) > 1 {
			return nil, fmt.Errorf("%w: %s %q", config.ErrInvalidMarker, m.flag, m.value)
		}
	}

	applyMarker := func(dst *byte, s string) {
		if s != "" {
			*dst = s[0]
		}
	}
	applyMarker(&markup.HeaderMarker, cfg.Markup.HeaderMarker)
	applyMarker(&markup.AlignMarker, cfg.Markup.AlignMarker)
	applyMarker(&markup.HeaderMarker, flags.markup.headerMarker)
	applyMarker(&markup.AlignMarker, flags.markup.alignMarker)

	applyString := func(dst *string, values ...string) {
		for _, v := range values {
			if v != "" {
				*dst = v
			}
		}
	}
	applyString(&markup.BreakSentinel, cfg.Markup.BreakSentinel, flags.markup.breakSentinel)
	applyString(&markup.SplitSentinel, cfg.Markup.SplitSentinel, flags.markup.splitSentinel)

	if cfg.Markup.MaxHeaderLevel != 0 {
		markup.MaxHeaderLevel = cfg.Markup.MaxHeaderLevel
	}
	if flags.markup.maxLevel != 0 {
		markup.MaxHeaderLevel = flags.markup.maxLevel
	}

	opts := []pre2tex.Option{pre2tex.WithMarkup(markup)}

	header, err := resolveDocumentPart(cfg.Document.Header, cfg.Document.HeaderFile, flags.document.headerFile)
	if err != nil {
		return nil, err
	}
	if header != "" {
		opts = append(opts, pre2tex.WithHeader(header))
	}

	footer, err := resolveDocumentPart(cfg.Document.Footer, cfg.Document.FooterFile, flags.document.footerFile)
	if err != nil {
		return nil, err
	}
	if footer != "" {
		opts = append(opts, pre2tex.WithFooter(footer))
	}

	return opts, nil
}

// resolveDocumentPart picks the header or footer override. Precedence:
// flag file, then inline config, then config file, then "" for default.
func resolveDocumentPart(inline, configFile, flagFile string) (string, error) {
	path := flagFile
	if path == "" {
		if inline != "" {
			return inline, nil
		}
		path = configFile
	}
	if path == "" {
		return "", nil
	}
	content, err := fileutil.ReadTextFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return content, nil
}

// resolveFiles validates inputs and derives an output path for each.
func resolveFiles(inputs []string, output, defaultDir string) ([]FileToTranspile, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}

	for _, in := range inputs {
		if err := validateInputExtension(in); err != nil {
			return nil, err
		}
	}

	// -o names the output file directly for a single input, unless it is an
	// existing directory.
	if len(inputs) == 1 && output != "" && !isDir(output) {
		return []FileToTranspile{{InputPath: inputs[0], OutputPath: output}}, nil
	}

	outDir := output
	if outDir == "" {
		outDir = defaultDir
	}
	if output != "" && len(inputs) > 1 && !isDir(output) {
		return nil, fmt.Errorf("%w: %s", ErrOutputNotDir, output)
	}

	files := make([]FileToTranspile, len(inputs))
	for i, in := range inputs {
		out := fileutil.ReplaceExt(in, texExt)
		if outDir != "" {
			out = filepath.Join(outDir, filepath.Base(out))
		}
		files[i] = FileToTranspile{InputPath: in, OutputPath: out}
	}
	return files, nil
}

// validateInputExtension checks that the file has a .pre or .txt extension.
func validateInputExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".pre" && ext != ".txt" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// isDir returns true if path exists and is a directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// writeDefaultConfig writes pre2tex.yaml with default values to the
// current directory.
func writeDefaultConfig(env *Environment) error {
	const path = "pre2tex.yaml"
	if fileutil.FileExists(path) {
		return fmt.Errorf("%w: %s already exists", os.ErrExist, path)
	}
	data, err := defaultConfigYAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", path)
	return nil
}
