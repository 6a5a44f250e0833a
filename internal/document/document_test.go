package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<meta name="twitter-site-verification" content="dGVzdA=="/>
<meta content="backwards" name="attr-order"/>
</head>
<body>
<svg id="loading-x-anim-0"><g><path d="M1 1"/><path d="M2 2"/></g></svg>
<svg id="loading-x-anim-1"><g><path d="M3 3"/></g></svg>
<div id="other"></div>
<form name="f" action="/migrate"><input name="tok" value="abc"/><input type="submit"/></form>
</body>
</html>`

func mustParse(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(sampleHTML)
	require.NoError(t, err)
	return doc
}

func TestMetaContent(t *testing.T) {
	doc := mustParse(t)
	assert.Equal(t, "dGVzdA==", doc.MetaContent("twitter-site-verification"))
	// Attribute order in the markup does not matter.
	assert.Equal(t, "backwards", doc.MetaContent("attr-order"))
	assert.Equal(t, "", doc.MetaContent("missing"))
}

func TestElementsByIDPrefix(t *testing.T) {
	doc := mustParse(t)

	els := doc.ElementsByIDPrefix("loading-x-anim")
	require.Len(t, els, 2)
	assert.Equal(t, "loading-x-anim-0", els[0].Attr("id"))
	assert.Equal(t, "loading-x-anim-1", els[1].Attr("id"))

	assert.Empty(t, doc.ElementsByIDPrefix("nope"))
}

func TestFindAll(t *testing.T) {
	doc := mustParse(t)

	els := doc.ElementsByIDPrefix("loading-x-anim")
	require.Len(t, els, 2)

	paths := els[0].FindAll("path")
	require.Len(t, paths, 2)
	assert.Equal(t, "M1 1", paths[0].Attr("d"))
	assert.Equal(t, "M2 2", paths[1].Attr("d"))

	require.Len(t, els[1].FindAll("path"), 1)
}

func TestFind(t *testing.T) {
	doc := mustParse(t)

	form := doc.Find("form", "name", "f")
	require.NotNil(t, form)
	assert.Equal(t, "/migrate", form.Attr("action"))

	inputs := form.FindAll("input")
	require.Len(t, inputs, 2)
	assert.Equal(t, "tok", inputs[0].Attr("name"))
	assert.Equal(t, "abc", inputs[0].Attr("value"))

	assert.Nil(t, doc.Find("form", "name", "missing"))
}

func TestParseGarbage(t *testing.T) {
	doc, err := Parse("<<<not really html")
	require.NoError(t, err)
	assert.Equal(t, "", doc.MetaContent("anything"))
	assert.Empty(t, doc.ElementsByIDPrefix("x"))
}

func TestNilElementAttr(t *testing.T) {
	var e *Element
	assert.Equal(t, "", e.Attr("id"))
	assert.Nil(t, e.FindAll("path"))
}
