package stream

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubmission(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]interface{}
		want    string
		wantErr bool
	}{
		{
			name:   "complete submission",
			values: map[string]interface{}{"label": "sample-1", "sequence": "acgtacgt"},
			want:   "acgtacgt",
		},
		{
			name:   "label optional",
			values: map[string]interface{}{"sequence": "acgt"},
			want:   "acgt",
		},
		{
			name:    "missing sequence",
			values:  map[string]interface{}{"label": "sample-2"},
			wantErr: true,
		},
		{
			name:    "non-string sequence ignored",
			values:  map[string]interface{}{"sequence": 42},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := &redis.XMessage{ID: "1-0", Values: tt.values}
			submission, err := parseSubmission(msg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, submission.Sequence)
		})
	}
}
