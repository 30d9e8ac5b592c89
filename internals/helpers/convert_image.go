package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	photoMaxSide    = 512 // px, sisi terpanjang foto profil
	photoMaxWebPLen = 90  // kualitas encode webp
)

// SaveUploadAsWebP membaca gambar upload (jpeg/png/webp), resize ke maksimal
// photoMaxSide, encode ulang ke WebP, lalu simpan di dir. Mengembalikan path
// relatif file hasil.
func SaveUploadAsWebP(dir, folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		// fallback: mungkin sudah webp
		f, openErr := fileHeader.Open()
		if openErr != nil {
			return "", fmt.Errorf("file bukan gambar yang dikenal: %w", err)
		}
		defer f.Close()
		img, err = webp.Decode(f)
		if err != nil {
			return "", fmt.Errorf("file bukan gambar yang dikenal: %w", err)
		}
	}

	resized := ResizeToFit(img, photoMaxSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, resized, &webp.Options{Quality: photoMaxWebPLen}); err != nil {
		return "", fmt.Errorf("gagal encode webp: %w", err)
	}

	rel := GenerateUniqueFilename(folder, fileHeader.Filename) + ".webp"
	full := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}
	if err := os.WriteFile(full, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan gambar: %w", err)
	}
	return rel, nil
}

// ResizeToFit mengecilkan gambar supaya sisi terpanjangnya <= maxSide.
// Gambar yang sudah kecil dikembalikan apa adanya.
func ResizeToFit(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return img
	}
	if w >= h {
		return imaging.Resize(img, maxSide, 0, imaging.Lanczos)
	}
	return imaging.Resize(img, 0, maxSide, imaging.Lanczos)
}

// ✅ Buat nama unik
func sanitizeFilename(filename string) string {
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}
