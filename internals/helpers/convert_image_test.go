package helper

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResizeToFitShrinksLargeImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2048, 1024))
	out := ResizeToFit(img, 512)

	b := out.Bounds()
	assert.Equal(t, 512, b.Dx())
	assert.LessOrEqual(t, b.Dy(), 512)
}

func TestResizeToFitKeepsSmallImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 80))
	out := ResizeToFit(img, 512)

	b := out.Bounds()
	assert.Equal(t, 100, b.Dx())
	assert.Equal(t, 80, b.Dy())
}

func TestGenerateUniqueFilename(t *testing.T) {
	a := GenerateUniqueFilename("profile", "Foto Budi.jpg")
	b := GenerateUniqueFilename("profile", "Foto Budi.jpg")

	assert.NotEqual(t, a, b, "dua upload nama sama tidak boleh bertabrakan")
	assert.False(t, strings.Contains(a, " "), "spasi harus dibuang: %s", a)
}
