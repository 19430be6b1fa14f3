package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	pre2tex "github.com/alnah/go-pre2tex"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// FileToTranspile pairs an input path with its derived output path.
type FileToTranspile struct {
	InputPath  string
	OutputPath string
}

// TranspileResult holds the outcome of a single transpilation.
type TranspileResult struct {
	InputPath  string
	OutputPath string
	LaTeX      string // populated only in stdout mode
	Err        error
	Duration   time.Duration
}

// resolveWorkers picks the worker count: the explicit flag value, else one
// per CPU (automaxprocs has already sized GOMAXPROCS), capped by the number
// of files.
func resolveWorkers(requested, files int) int {
	workers := requested
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > files {
		workers = files
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// transpileBatch processes files concurrently over a jobs channel. One
// Transpiler is shared by all workers; it is stateless and safe for
// concurrent use. Results keep the input order regardless of completion
// order.
func transpileBatch(tp *pre2tex.Transpiler, files []FileToTranspile, workers int, toStdout bool) []TranspileResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]TranspileResult, len(files))
	jobs := make(chan int, len(files))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = transpileFile(tp, files[idx], toStdout)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// transpileFile processes a single file and returns the result. A fatal
// *InvariantError from the pipeline is recovered here so one broken file
// cannot take down the rest of the batch; anything else keeps panicking.
func transpileFile(tp *pre2tex.Transpiler, f FileToTranspile, toStdout bool) (result TranspileResult) {
	start := time.Now()
	result = TranspileResult{InputPath: f.InputPath, OutputPath: f.OutputPath}
	defer func() {
		result.Duration = time.Since(start)
		if r := recover(); r != nil {
			ie, ok := r.(*pre2tex.InvariantError)
			if !ok {
				panic(r)
			}
			result.Err = ie
		}
	}()

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- user-provided input path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadInput, err)
		return result
	}

	latex := tp.Transpile(string(content))

	if toStdout {
		result.LaTeX = latex
		return result
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		return result
	}

	// #nosec G306 -- generated LaTeX is meant to be readable
	if err := os.WriteFile(f.OutputPath, []byte(latex), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return result
	}

	return result
}

// printResults outputs per-file results in input order and returns the
// number of failures. In stdout mode the rendered LaTeX itself goes to
// stdout, status lines to stderr.
func printResults(results []TranspileResult, flags *transpileFlags, env *Environment) int {
	quiet, verbose := flags.common.quiet, flags.common.verbose

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if flags.toStdout {
			fmt.Fprint(env.Stdout, r.LaTeX)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && !flags.toStdout && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", len(results)-failed, failed)
	}

	return failed
}
