package diffview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanReadableSize(t *testing.T) {
	tests := []struct {
		size int
		want string
	}{
		{size: 0, want: "0 B"},
		{size: 1, want: "1 B"},
		{size: 1023, want: "1023 B"},
		{size: 1024, want: "1 KB"},
		{size: 1536, want: "1.5 KB"},
		{size: 1590, want: "1.5 KB"}, // truncated, not rounded
		{size: 10240, want: "10 KB"},
		{size: 1 << 20, want: "1 MB"},
		{size: 3*(1<<20) + (1 << 19), want: "3.5 MB"},
		{size: 1 << 30, want: "1 GB"},
		{size: 1 << 40, want: "1 TB"},
		{size: 1 << 50, want: "1 PB"},
		{size: 1 << 60, want: "1 EB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanReadableSize(tt.size), "size %d", tt.size)
	}
}
