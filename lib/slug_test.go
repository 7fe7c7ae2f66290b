package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "Ceramic Mug", "ceramic-mug"},
		{"already a slug", "ceramic-mug", "ceramic-mug"},
		{"mixed case and digits", "USB Cable 2m", "usb-cable-2m"},
		{"punctuation collapses", "Hello, World!", "hello-world"},
		{"consecutive separators", "a  --  b", "a-b"},
		{"leading and trailing junk", "  ...product...  ", "product"},
		{"empty input", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
