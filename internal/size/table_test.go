package size

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []SuffixEntry
		wantErr string
	}{
		{
			name:    "empty",
			entries: nil,
			wantErr: "must not be empty",
		},
		{
			name:    "base factor not one",
			entries: []SuffixEntry{{"B", 2}, {"KB", 1000}},
			wantErr: "base unit",
		},
		{
			name:    "non-increasing factors",
			entries: []SuffixEntry{{"B", 1}, {"KB", 1000}, {"MB", 1000}},
			wantErr: "must exceed",
		},
		{
			name:    "duplicate symbol",
			entries: []SuffixEntry{{"B", 1}, {"KB", 1000}, {"kb", 1e6}},
			wantErr: "duplicate symbol",
		},
		{
			name:    "empty symbol",
			entries: []SuffixEntry{{"B", 1}, {"", 1000}},
			wantErr: "empty symbol",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.entries)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewTableCopiesEntries(t *testing.T) {
	entries := []SuffixEntry{{"X", 1}, {"KX", 1000}}
	table, err := NewTable(entries)
	require.NoError(t, err)

	entries[1].Symbol = "ZZ"
	assert.Equal(t, "KX", table.Entries()[1].Symbol, "table must not alias the caller's slice")

	got := table.Entries()
	got[0].Symbol = "ZZ"
	assert.Equal(t, "X", table.Base().Symbol, "Entries must return a copy")
}

func TestBuiltinTables(t *testing.T) {
	iec := IEC.Table()
	require.Equal(t, 6, iec.Len())
	assert.Equal(t, SuffixEntry{"B", 1}, iec.Base())
	assert.Equal(t, SuffixEntry{"PiB", 1 << 50}, iec.Entries()[5])

	si := SI.Table()
	require.Equal(t, 6, si.Len())
	assert.Equal(t, SuffixEntry{"B", 1}, si.Base())
	assert.Equal(t, SuffixEntry{"PB", 1e15}, si.Entries()[5])
}

func TestParseStandard(t *testing.T) {
	for in, want := range map[string]Standard{
		"iec": IEC, "IEC": IEC, "binary": IEC,
		"si": SI, " SI ": SI, "decimal": SI,
	} {
		got, err := ParseStandard(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := ParseStandard("metric")
	require.Error(t, err)
}
