package stdlib

import (
	"bytes"

	"github.com/patlang/patlib"
	"github.com/patlang/patlib/literal"
)

// findSequence scans candidate start offsets left to right and returns the
// start offset of the match whose ordinal equals occurrence, or -1 when the
// scan ends first. Matches are counted progressively with no overlap
// skipping. The effective end offset is the data size when offsetTo is not
// past offsetFrom, otherwise the smaller of the two bounds; a range shorter
// than the sequence yields an empty scan.
func findSequence(ctx patlib.EvaluationContext, occurrence, offsetFrom, offsetTo uint64, sequence []byte) literal.Value {
	dataSize := ctx.DataSize()
	endOffset := dataSize
	if offsetTo > offsetFrom && offsetTo < dataSize {
		endOffset = offsetTo
	}

	n := uint64(len(sequence))
	if n == 0 || endOffset < n {
		return literal.S64(-1)
	}
	limit := endOffset - n

	buf := make([]byte, n)
	var seen uint64
	for offset := offsetFrom; offset < limit; offset++ {
		ctx.ReadData(offset, buf)
		if !bytes.Equal(buf, sequence) {
			continue
		}
		if seen < occurrence {
			seen++
			continue
		}
		return literal.U64(offset)
	}
	return literal.S64(-1)
}
