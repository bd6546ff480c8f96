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
		{"500ms", 500 * time.Millisecond},
		{" 2h ", 2 * time.Hour},
		{"", 10 * time.Second},
		{"ten seconds", 10 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDuration(tt.in, 10*time.Second), tt.in)
	}
}
