package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePagingDefaultsAndClamp(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})

	cases := []struct {
		url           string
		page, perPage int
		offset        int
	}{
		{"/items", 1, 20, 0},
		{"/items?page=3&per_page=10", 3, 10, 20},
		{"/items?page=-1", 1, 20, 0},
		{"/items?per_page=9999", 1, 100, 0},
		{"/items?limit=5", 1, 5, 0},
	}
	for _, tc := range cases {
		_, err := app.Test(httptest.NewRequest("GET", tc.url, nil))
		require.NoError(t, err, tc.url)
		assert.Equal(t, tc.page, got.Page, tc.url)
		assert.Equal(t, tc.perPage, got.PerPage, tc.url)
		assert.Equal(t, tc.offset, got.Offset, tc.url)
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	first := BuildPaginationFromPage(45, 1, 20)
	assert.False(t, first.HasPrev)

	empty := BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages, "total 0 tetap satu halaman")
	assert.False(t, empty.HasNext)
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "UNAUTHORIZED", statusToErrorCode(fiber.StatusUnauthorized))
	assert.Equal(t, "FORBIDDEN", statusToErrorCode(fiber.StatusForbidden))
	assert.Equal(t, "VALIDATION_ERROR", statusToErrorCode(fiber.StatusUnprocessableEntity))
	assert.Equal(t, "CONFLICT", statusToErrorCode(fiber.StatusConflict))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(502))
}
