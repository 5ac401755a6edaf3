package dna

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Sequence
		wantErr bool
	}{
		{name: "plain sequence", raw: "acgtacgt", want: "acgtacgt"},
		{name: "line wrapped", raw: "acgt\nacgt\n", want: "acgtacgt"},
		{name: "crlf line endings", raw: "acgt\r\nacgt\r\n", want: "acgtacgt"},
		{name: "empty input", raw: "", want: ""},
		{name: "uppercase rejected", raw: "ACGT", wantErr: true},
		{name: "ambiguity code rejected", raw: "acgn", wantErr: true},
		{name: "whitespace rejected", raw: "acgt acgt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.raw))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrAlphabet)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "seq.txt")
	require.NoError(t, os.WriteFile(path, []byte("acgt\ntgca\n"), 0o644))

	seq, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Sequence("acgttgca"), seq)
	assert.Equal(t, 8, seq.Len())

	_, err = Load(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("acgtX"), 0o644))
	_, err = Load(bad)
	require.ErrorIs(t, err, ErrAlphabet)
}
