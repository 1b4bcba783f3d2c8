package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func parse(t *testing.T, target string) Pagination {
	t.Helper()
	var got Pagination
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParseFromRequest(c)
		return c.SendStatus(fiber.StatusOK)
	})
	_, err := app.Test(httptest.NewRequest("GET", target, nil))
	assert.NoError(t, err)
	return got
}

func TestParseFromRequest(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "/", 1, 20, 0},
		{"explicit", "/?page=3&limit=10", 3, 10, 20},
		{"limit capped", "/?limit=5000", 1, 100, 0},
		{"negative page falls back", "/?page=-2", 1, 20, 0},
		{"garbage falls back", "/?page=abc&limit=xyz", 1, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parse(t, tt.target)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}

func TestResponse(t *testing.T) {
	p := Pagination{Page: 2, Limit: 10, Total: 25}
	out := Response(p, []string{"a"})

	meta := out["meta"].(fiber.Map)
	assert.Equal(t, int64(3), meta["total_pages"])
	assert.Equal(t, int64(25), meta["total_items"])
	assert.Equal(t, 2, meta["current_page"])
}
