package pre2tex

// blockSegmenter groups classified lines into blocks.
type blockSegmenter interface {
	Segment(lines []Line) []Block
}

// runSegmenter splits on every kind change, producing maximal runs.
type runSegmenter struct{}

func newRunSegmenter() *runSegmenter {
	return &runSegmenter{}
}

// Segment partitions lines into blocks in input order. Concatenating the
// blocks' content reproduces the input line texts exactly; adjacent lines
// land in the same block iff their kinds are equal, header level included.
// An empty input yields zero blocks rather than one empty block.
func (s *runSegmenter) Segment(lines []Line) []Block {
	if len(lines) == 0 {
		return nil
	}

	blocks := make([]Block, 0, 4)
	current := Block{Kind: lines[0].Kind}

	for _, line := range lines {
		if line.Kind != current.Kind {
			blocks = append(blocks, current)
			current = Block{Kind: line.Kind}
		}
		current.Content = append(current.Content, line.Text)
	}

	return append(blocks, current)
}
