package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordScore(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"FIT", 3},
		{"SHIP", 4},
		{"", 0},
		{"ÉTÉ", 3},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, WordScore(tt.word))
		})
	}
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 7, Total([]string{"FIT", "SHIP"}))
	assert.Equal(t, 0, Total(nil))
}
