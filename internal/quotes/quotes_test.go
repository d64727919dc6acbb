package quotes

import (
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "double quotes", in: "He said, “hello”", want: `He said, "hello"`},
		{name: "single quotes", in: "It’s a ‘test’", want: "It's a 'test'"},
		{name: "plain text", in: `already "plain" text's`, want: `already "plain" text's`},
		{name: "empty", in: "", want: ""},
		{name: "other unicode kept", in: "«café» — „x“", want: "«café» — „x\""},
		{name: "only quotes", in: "‘’“”", want: `''""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, utf8.RuneCountInString(tt.in), utf8.RuneCountInString(got))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	in := "“One” and ‘two’ and it’s done"
	once := Normalize(in)
	assert.Equal(t, once, Normalize(once))
	assert.Zero(t, Count(once).Total())
}

func TestNormalize_OrderIndependent(t *testing.T) {
	in := "‘a’ “b” ’c‘ ”d“"
	forward := in
	for _, s := range Table() {
		forward = strings.ReplaceAll(forward, string(s.From), string(s.To))
	}
	backward := in
	tbl := Table()
	for i := len(tbl) - 1; i >= 0; i-- {
		backward = strings.ReplaceAll(backward, string(tbl[i].From), string(tbl[i].To))
	}
	assert.Equal(t, forward, backward)
	assert.Equal(t, forward, Normalize(in))
}

func TestCount(t *testing.T) {
	counts := Count("“Don’t” ‘go’ ’round")
	assert.Equal(t, 1, counts[LeftDouble])
	assert.Equal(t, 1, counts[RightDouble])
	assert.Equal(t, 1, counts[LeftSingle])
	assert.Equal(t, 3, counts[RightSingle])
	assert.Equal(t, 6, counts.Total())
}

func TestCount_IncludesZeroEntries(t *testing.T) {
	counts := Count("nothing to see")
	require.Len(t, counts, 4)
	for _, s := range Table() {
		assert.Zero(t, counts[s.From], s.Name)
	}
}

func TestTable_ReturnsCopy(t *testing.T) {
	tbl := Table()
	require.Len(t, tbl, 4)
	tbl[0].To = 'x'
	assert.Equal(t, '\'', Table()[0].To)
}

func TestTransformer_Streams(t *testing.T) {
	r := transform.NewReader(strings.NewReader("a “b” c"), Transformer())
	var sb strings.Builder
	_, err := io.Copy(&sb, r)
	require.NoError(t, err)
	assert.Equal(t, `a "b" c`, sb.String())
}
