package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"humansize/internal/size"
)

func TestParseTableSpec(t *testing.T) {
	table, err := ParseTableSpec("X=1,KX=1000,MX=1e6")
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())
	assert.Equal(t, size.SuffixEntry{Symbol: "X", Factor: 1}, table.Base())
	assert.Equal(t, size.SuffixEntry{Symbol: "MX", Factor: 1e6}, table.Entries()[2])

	// Whitespace around pairs and separators is tolerated.
	table, err = ParseTableSpec(" X = 1 , KX = 1000 ")
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}

func TestParseTableSpecRoundTrip(t *testing.T) {
	table, err := ParseTableSpec("X=1,KX=1000,MX=1e6")
	require.NoError(t, err)

	c := size.New(size.WithTable(table))

	s, err := c.Format(5000)
	require.NoError(t, err)
	assert.Equal(t, "5.00 KX", s)

	n, err := c.Parse("5 KX")
	require.NoError(t, err)
	assert.Equal(t, int64(5000), n)
}

func TestParseTableSpecErrors(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{name: "empty", spec: ""},
		{name: "whitespace", spec: "   "},
		{name: "missing equals", spec: "X=1,KX"},
		{name: "bad factor", spec: "X=1,KX=lots"},
		{name: "base not one", spec: "X=2,KX=1000"},
		{name: "non-increasing", spec: "X=1,KX=1000,MX=1000"},
		{name: "duplicate symbol", spec: "X=1,x=1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTableSpec(tt.spec)
			require.Error(t, err)
		})
	}
}
