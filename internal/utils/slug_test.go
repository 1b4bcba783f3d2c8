package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Storing Root Vegetables Through Winter", "storing-root-vegetables-through-winter"},
		{"  Leading & trailing!  ", "leading-trailing"},
		{"UPPER case 123", "upper-case-123"},
		{"---", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}
