package impl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageOffset(t *testing.T) {
	tests := []struct {
		name string
		page int
		size int
		want int
	}{
		{name: "first page", page: 0, size: 20, want: 0},
		{name: "third page", page: 2, size: 20, want: 40},
		{name: "negative page", page: -3, size: 20, want: 0},
		{name: "huge page does not wrap", page: math.MaxInt / 10, size: 20, want: (math.MaxInt / 20) * 20},
		{name: "max page", page: math.MaxInt, size: 20, want: (math.MaxInt / 20) * 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pageOffset(tt.page, tt.size)

			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}
