package storage_test

import (
	"testing"

	"go-jobboard-backend/pkg/storage"

	"github.com/stretchr/testify/assert"
)

var (
	jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 16)...)
	pngBytes  = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 16)...)
	pdfBytes  = append([]byte("%PDF-1.4"), make([]byte, 16)...)
)

func TestValidateFile(t *testing.T) {
	t.Run("Accepts a jpeg with matching magic bytes", func(t *testing.T) {
		result := storage.ValidateFile("photo.jpg", jpegBytes, "image/jpeg")
		assert.True(t, result.Valid)
		assert.Equal(t, ".jpg", result.Extension)
	})

	t.Run("Accepts a pdf resume", func(t *testing.T) {
		result := storage.ValidateFile("resume.PDF", pdfBytes, "application/pdf")
		assert.True(t, result.Valid)
	})

	t.Run("Rejects an extension outside the whitelist", func(t *testing.T) {
		result := storage.ValidateFile("payload.exe", jpegBytes, "image/jpeg")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "not allowed")
	})

	t.Run("Rejects a file with no extension", func(t *testing.T) {
		result := storage.ValidateFile("resume", pdfBytes, "application/pdf")
		assert.False(t, result.Valid)
	})

	t.Run("Rejects content that does not match the extension", func(t *testing.T) {
		result := storage.ValidateFile("photo.png", jpegBytes, "image/png")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "does not match")
	})

	t.Run("Rejects octet-stream for images", func(t *testing.T) {
		result := storage.ValidateFile("photo.jpg", jpegBytes, "application/octet-stream")
		assert.False(t, result.Valid)
	})

	t.Run("Allows octet-stream only for legacy office documents", func(t *testing.T) {
		docxBytes := append([]byte{0x50, 0x4B, 0x03, 0x04}, make([]byte, 16)...)
		result := storage.ValidateFile("resume.docx", docxBytes, "application/octet-stream")
		assert.True(t, result.Valid)
	})

	t.Run("Rejects truncated files", func(t *testing.T) {
		result := storage.ValidateFile("photo.jpg", []byte{0xFF, 0xD8}, "image/jpeg")
		assert.False(t, result.Valid)
	})
}
