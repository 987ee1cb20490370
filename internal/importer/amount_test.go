package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRinggit(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"150", 15000, false},
		{"150.5", 15050, false},
		{"1,250.50", 125050, false},
		{"RM 80.00", 8000, false},
		{"rm1 000", 100000, false},
		{"0.005", 1, false},
		{"", 0, true},
		{"RM", 0, true},
		{"0", 0, true},
		{"-20.00", 0, true},
		{"dua puluh", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseRinggit(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
