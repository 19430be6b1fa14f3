package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-pre2tex/internal/config"
	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
		want    *config.Config
	}{
		{
			name: "full config",
			content: `output:
  defaultDir: out
markup:
  headerMarker: "*"
  alignMarker: "$"
  breakSentinel: "--"
  splitSentinel: "::"
  maxHeaderLevel: 3
document:
  header: "\\begin{document}\n"
  footer: "\\end{document}\n"
`,
			want: &config.Config{
				Output: config.OutputConfig{DefaultDir: "out"},
				Markup: config.MarkupConfig{
					HeaderMarker:   "*",
					AlignMarker:    "$",
					BreakSentinel:  "--",
					SplitSentinel:  "::",
					MaxHeaderLevel: 3,
				},
				Document: config.DocumentConfig{
					Header: "\\begin{document}\n",
					Footer: "\\end{document}\n",
				},
			},
		},
		{
			name:    "partial config keeps zero values",
			content: "markup:\n  headerMarker: \"@\"\n",
			want: &config.Config{
				Markup: config.MarkupConfig{HeaderMarker: "@"},
			},
		},
		{
			name:    "unknown field rejected",
			content: "bogus: true\n",
			wantErr: config.ErrConfigParse,
		},
		{
			name:    "invalid YAML rejected",
			content: "markup: [unclosed\n",
			wantErr: config.ErrConfigParse,
		},
		{
			name:    "multi-character marker rejected",
			content: "markup:\n  headerMarker: \"##\"\n",
			wantErr: config.ErrInvalidMarker,
		},
		{
			name:    "max level out of range rejected",
			content: "markup:\n  maxHeaderLevel: 9\n",
			wantErr: config.ErrInvalidMaxLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, "cfg.yaml", tt.content)
			got, err := config.LoadConfig(path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadConfig_EmptyName(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig("")
	if !errors.Is(err, config.ErrEmptyConfigName) {
		t.Fatalf("error = %v, want ErrEmptyConfigName", err)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Fatalf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfig_NameResolvesInCurrentDir(t *testing.T) {
	// Not parallel: changes the working directory.
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "myconf.yml"), []byte("output:\n  defaultDir: build\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := config.LoadConfig("myconf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.DefaultDir != "build" {
		t.Errorf("DefaultDir = %q, want %q", cfg.Output.DefaultDir, "build")
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if diff := cmp.Diff(&config.Config{}, cfg); diff != "" {
		t.Errorf("default config is not neutral (-want +got):\n%s", diff)
	}
}
