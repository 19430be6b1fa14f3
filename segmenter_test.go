package pre2tex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func normal(text string) Line { return Line{Kind: LineKind{Class: ClassNormal}, Text: text} }
func header(text string, level int) Line {
	return Line{Kind: LineKind{Class: ClassHeader, Level: level}, Text: text}
}
func align(text string) Line { return Line{Kind: LineKind{Class: ClassAlign}, Text: text} }

func TestRunSegmenter_Segment(t *testing.T) {
	t.Parallel()

	s := newRunSegmenter()

	tests := []struct {
		name  string
		lines []Line
		want  []Block
	}{
		{
			name:  "empty input yields zero blocks",
			lines: nil,
			want:  nil,
		},
		{
			name:  "single line",
			lines: []Line{normal("a")},
			want:  []Block{{Kind: LineKind{Class: ClassNormal}, Content: []string{"a"}}},
		},
		{
			name:  "run of same kind stays together",
			lines: []Line{normal("a"), normal("b"), normal("c")},
			want:  []Block{{Kind: LineKind{Class: ClassNormal}, Content: []string{"a", "b", "c"}}},
		},
		{
			name:  "kind change splits",
			lines: []Line{normal("a"), align("x=1"), align("y=2"), normal("b")},
			want: []Block{
				{Kind: LineKind{Class: ClassNormal}, Content: []string{"a"}},
				{Kind: LineKind{Class: ClassAlign}, Content: []string{"x=1", "y=2"}},
				{Kind: LineKind{Class: ClassNormal}, Content: []string{"b"}},
			},
		},
		{
			name:  "header level change splits headers",
			lines: []Line{header("One", 1), header("Two", 2), header("More", 2)},
			want: []Block{
				{Kind: LineKind{Class: ClassHeader, Level: 1}, Content: []string{"One"}},
				{Kind: LineKind{Class: ClassHeader, Level: 2}, Content: []string{"Two", "More"}},
			},
		},
		{
			name:  "non-adjacent runs are not merged",
			lines: []Line{align("a"), normal("p"), align("b")},
			want: []Block{
				{Kind: LineKind{Class: ClassAlign}, Content: []string{"a"}},
				{Kind: LineKind{Class: ClassNormal}, Content: []string{"p"}},
				{Kind: LineKind{Class: ClassAlign}, Content: []string{"b"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := s.Segment(tt.lines)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Segment mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestRunSegmenter_StablePartition checks the partition laws directly:
// concatenating the blocks reproduces the input, lines inside one block
// share a kind, and adjacent blocks differ in kind.
func TestRunSegmenter_StablePartition(t *testing.T) {
	t.Parallel()

	lines := []Line{
		header("T", 1), header("T2", 1),
		normal("a"), normal(""), normal("b"),
		align("x"), align("y"),
		header("S", 2),
		normal("c"),
		align("z"),
	}

	blocks := newRunSegmenter().Segment(lines)

	var flattened []string
	for i, b := range blocks {
		if len(b.Content) == 0 {
			t.Fatalf("block %d has empty content", i)
		}
		flattened = append(flattened, b.Content...)
		if i > 0 && blocks[i-1].Kind == b.Kind {
			t.Errorf("adjacent blocks %d and %d share kind %+v", i-1, i, b.Kind)
		}
	}

	want := make([]string, len(lines))
	for i, l := range lines {
		want[i] = l.Text
	}
	if diff := cmp.Diff(want, flattened); diff != "" {
		t.Errorf("flattened content mismatch (-want +got):\n%s", diff)
	}
}
