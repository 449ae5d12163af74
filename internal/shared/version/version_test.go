package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
		{" 0.4.0 ", "v0.4.0"},
		{"dev", "dev"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}

func TestIsRelease(t *testing.T) {
	assert.True(t, IsRelease("1.0.0"))
	assert.True(t, IsRelease("v2.3.1"))
	assert.False(t, IsRelease("v1.0.0-rc.1"))
	assert.False(t, IsRelease("dev"))
}
