package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("kofi@example.com"))
	assert.True(t, ValidEmail("kofi.mensah+farm@co.example.org"))
	assert.False(t, ValidEmail("kofi@"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail(""))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("+233201234567"))
	assert.True(t, ValidPhone("0201234567"))
	// Phone is optional; empty passes.
	assert.True(t, ValidPhone(""))
	assert.False(t, ValidPhone("abc"))
	assert.False(t, ValidPhone("12"))
}

func TestValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"long with special", "orchard!2026", true},
		{"too short", "ab!c", false},
		{"long but no special", "plainpassword", false},
		{"exactly eight with special", "abcdefg!", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPassword(tt.password))
		})
	}
}

func TestStruct(t *testing.T) {
	type form struct {
		Name  string  `json:"name" validate:"required,min=2"`
		Price float64 `json:"price" validate:"gt=0"`
	}

	assert.Nil(t, Struct(&form{Name: "Cassava", Price: 3.5}))

	fields := Struct(&form{Name: "C", Price: -1})
	if assert.NotNil(t, fields) {
		assert.Contains(t, fields, "Name")
		assert.Contains(t, fields, "Price")
	}
}
