package bom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHas(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{"nil", nil, false},
		{"empty", []byte{}, false},
		{"short prefix", []byte{0xEF, 0xBB}, false},
		{"bom only", []byte{0xEF, 0xBB, 0xBF}, true},
		{"bom then text", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, true},
		{"plain text", []byte("hi"), false},
		{"utf16 le bom", []byte{0xFF, 0xFE, 'h', 0}, false},
		{"bom not at start", []byte{'x', 0xEF, 0xBB, 0xBF}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Has(tt.content))
		})
	}
}

func TestStrip(t *testing.T) {
	t.Run("removes exactly one marker", func(t *testing.T) {
		in := []byte{0xEF, 0xBB, 0xBF, 0xEF, 0xBB, 0xBF, 'a'}
		assert.Equal(t, []byte{0xEF, 0xBB, 0xBF, 'a'}, Strip(in))
	})

	t.Run("hi with bom", func(t *testing.T) {
		assert.Equal(t, []byte{0x68, 0x69}, Strip([]byte{0xEF, 0xBB, 0xBF, 0x68, 0x69}))
	})

	t.Run("bom only becomes empty", func(t *testing.T) {
		assert.Empty(t, Strip([]byte{0xEF, 0xBB, 0xBF}))
	})

	t.Run("no bom is unchanged", func(t *testing.T) {
		in := []byte("{\"name\": \"app\"}\r\n")
		assert.Equal(t, in, Strip(in))
	})
}
