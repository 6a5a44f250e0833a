package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qm4/xtid/internal/document"
)

func TestBuildFrameTableFromFixture(t *testing.T) {
	doc := parseFixture(t)
	gen := newFixtureGenerator(t)

	table := buildFrameTable(doc, gen.keyBytes)
	require.Len(t, table, 16)
	for i, row := range table {
		assert.Len(t, row, 13, "row %d", i)
	}
	// keyBytes[5] selects frame 1; its third curve segment.
	assert.Equal(t, []int{42, 27, 184, 145, 246, 247, 100, 205, 130, 147, 208, 201, 206}, table[2])
}

func TestBuildFrameTableNoAnimationMarkup(t *testing.T) {
	doc, err := document.Parse("<html><body><p>nothing here</p></body></html>")
	require.NoError(t, err)

	table := buildFrameTable(doc, make([]byte, 32))
	assert.Equal(t, [][]int{fallbackFrameRow}, table)
}

func TestBuildFrameTableShortSiteKey(t *testing.T) {
	doc := parseFixture(t)
	table := buildFrameTable(doc, []byte{1, 2, 3})
	assert.Equal(t, [][]int{fallbackFrameRow}, table)
}

func TestBuildFrameTableShortPathData(t *testing.T) {
	doc, err := document.Parse(`<html><body>
		<svg id="loading-x-anim-0"><g><path d="M1 2"/></g></svg>
	</body></html>`)
	require.NoError(t, err)

	table := buildFrameTable(doc, make([]byte, 32))
	assert.Equal(t, [][]int{fallbackFrameRow}, table)
}

func TestBuildFrameTableNoUsableRows(t *testing.T) {
	// Segments with fewer than 7 integers each.
	doc, err := document.Parse(`<html><body>
		<svg id="loading-x-anim-0"><g><path d="M31 14.5C1 2 3C4 5 6"/></g></svg>
	</body></html>`)
	require.NoError(t, err)

	table := buildFrameTable(doc, make([]byte, 32))
	assert.Equal(t, [][]int{fallbackFrameRow}, table)
}

func TestExtractInts(t *testing.T) {
	assert.Equal(t, []int{10, 20, 5, 5, 0, 150}, extractInts("10,20 5.5 0 -150"))
	assert.Empty(t, extractInts("no digits at all"))
}
