package transaction

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/qm4/xtid/internal/document"
)

// frameIDPrefix marks the SVG loading animations that carry the frame
// data inside the homepage markup.
const frameIDPrefix = "loading-x-anim"

// fallbackFrameRow keeps the pipeline operable when the homepage markup
// drifts and no usable frame data can be extracted.
var fallbackFrameRow = []int{0, 0, 0, 255, 255, 255, 120, 100, 100, 0, 0, 1}

// extractFramePaths collects the data-bearing path description of every
// loading animation element. Each element carries two paths; the second
// one holds the packed frame table.
func extractFramePaths(doc *document.Document) []string {
	var paths []string
	for _, el := range doc.ElementsByIDPrefix(frameIDPrefix) {
		ds := el.FindAll("path")
		if len(ds) > 1 {
			paths = append(paths, ds[1].Attr("d"))
		} else if len(ds) == 1 {
			paths = append(paths, ds[0].Attr("d"))
		}
	}
	return paths
}

// buildFrameTable parses the homepage's animation markup into the 2-D
// frame table. The frame element is chosen by siteKey[5] mod the number
// of frames; its path data is stripped of the 9-character move prefix
// and split on curve segments, one row per segment. Any shape drift
// (no frames, short path, no row with at least 7 values) degrades to a
// single fixed fallback row.
func buildFrameTable(doc *document.Document, siteKey []byte) [][]int {
	if len(siteKey) < 6 {
		return [][]int{fallbackFrameRow}
	}

	paths := extractFramePaths(doc)
	if len(paths) == 0 {
		return [][]int{fallbackFrameRow}
	}

	d := paths[int(siteKey[5])%len(paths)]
	if len(d) <= 9 {
		return [][]int{fallbackFrameRow}
	}

	segments := strings.Split(d[9:], "C")
	table := make([][]int, 0, len(segments))
	usable := false
	for _, seg := range segments {
		row := extractInts(seg)
		if len(row) >= 7 {
			usable = true
		}
		table = append(table, row)
	}
	if !usable {
		return [][]int{fallbackFrameRow}
	}
	return table
}

// extractInts pulls every embedded integer out of a curve segment by
// blanking non-digit runes and splitting on whitespace.
func extractInts(segment string) []int {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, segment)

	fields := strings.Fields(cleaned)
	row := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			continue
		}
		row = append(row, n)
	}
	return row
}
