package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		expr     string
		expected Sort
		wantErr  bool
	}{
		{"", Sort{Field: "created_at", Desc: true}, false},
		{"  ", Sort{Field: "created_at", Desc: true}, false},
		{"urgency", Sort{Field: "urgency"}, false},
		{"-urgency", Sort{Field: "urgency", Desc: true}, false},
		{"-updated_at", Sort{Field: "updated_at", Desc: true}, false},
		{"internal_notes", Sort{}, true},
		{"-", Sort{}, true},
		{"--id", Sort{}, true},
		{"id; drop table intakes", Sort{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := ParseSort(tt.expr)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSort_String(t *testing.T) {
	assert.Equal(t, "-created_at", DefaultSort().String())
	assert.Equal(t, "name", Sort{Field: "name"}.String())
	assert.Len(t, SortableFields(), 8)
}
