package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"5s", 5 * time.Second},
		{"12h", 12 * time.Hour},
		{"", time.Minute},
		{"soon", time.Minute},
		{"-3s", time.Minute},
		{"0s", time.Minute},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDuration(tt.in, time.Minute), tt.in)
	}
}
