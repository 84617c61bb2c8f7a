package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionise(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			"nesting by rank",
			`<h1>A</h1><p>1</p><h2>B</h2><p>2</p><h1>C</h1>`,
			"section(h1,p,section(h2,p)),section(h1)",
		},
		{
			"lower rank first",
			`<h2>A</h2><h1>B</h1><p>x</p>`,
			"section(h2),section(h1,p)",
		},
		{
			"deep nesting",
			`<h1>A</h1><h2>B</h2><h3>C</h3><p>x</p><h2>D</h2>`,
			"section(h1,section(h2,section(h3,p)),section(h2))",
		},
		{
			"leading content untouched",
			`<p>intro</p><h1>A</h1><p>x</p>`,
			"p,section(h1,p)",
		},
		{
			"hgroup as entry",
			`<hgroup><h1>A</h1><h2>B</h2></hgroup><p>1</p><h2>C</h2><p>2</p>`,
			"section(hgroup(h1,h2),p,section(h2,p))",
		},
		{
			"stays in its container",
			`<div><h1>A</h1><p>1</p></div><p>2</p>`,
			"div(section(h1,p)),p",
		},
		{
			"existing section skipped",
			`<section><h1>A</h1><p>1</p></section><h2>B</h2>`,
			"section(h1,p),section(h2)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, body := parseBody(t, tt.html)
			require.NoError(t, Sectionise(tr, body))
			assert.Equal(t, tt.want, shape(tr, body))
		})
	}
}

func TestSectioniseIdempotent(t *testing.T) {
	tr, body := parseBody(t, `<h1>A</h1><p>1</p><h2>B</h2><p>2</p><h3>C</h3><h1>D</h1><p>3</p>`)

	require.NoError(t, Sectionise(tr, body))
	once := shape(tr, body)
	require.NoError(t, Sectionise(tr, body))

	assert.Equal(t, once, shape(tr, body))
}

func TestSectioniseKeepsContent(t *testing.T) {
	tr, body := parseBody(t, `<h1>A</h1>t1<p>1</p>t2<!--c--><h2>B</h2><p>2</p>`)
	before := tr.TextContent(body)
	elements := len(tr.Descendants(body))

	require.NoError(t, Sectionise(tr, body))

	assert.Equal(t, before, tr.TextContent(body))
	assert.Len(t, tr.Descendants(body), elements+2)
}

func TestSectioniseEmptyGroup(t *testing.T) {
	tr, body := parseBody(t, `<h1>A</h1><hgroup><hgroup><h2>B</h2></hgroup></hgroup>`)

	err := Sectionise(tr, body)

	require.ErrorIs(t, err, ErrEmptyHeadingGroup)
	var pe *PassError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, PassSection, pe.Pass)
}
