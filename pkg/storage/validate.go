package storage

import (
	"bytes"
	"path/filepath"
	"strings"
)

// FileValidationResult contains the result of upload validation.
type FileValidationResult struct {
	Valid        bool
	Extension    string
	DetectedMIME string
	Error        string
}

// Magic byte signatures per allowed extension.
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".webp": {{0x52, 0x49, 0x46, 0x46}}, // RIFF header
	".pdf":  {{0x25, 0x50, 0x44, 0x46}}, // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},
	".docx": {{0x50, 0x4B, 0x03, 0x04}}, // ZIP (PK..)
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// Strict MIME whitelist. application/octet-stream is rejected except for
// legacy Office formats that commonly sniff as it.
var strictMIMETypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"image/webp":         true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/zip": true,
}

// ValidateFile performs 3-layer validation on an uploaded file:
// extension whitelist, magic byte check, MIME whitelist.
func ValidateFile(filename string, data []byte, detectedMIME string) FileValidationResult {
	result := FileValidationResult{DetectedMIME: detectedMIME}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	if !allowedExtensions[ext] {
		result.Error = "file extension not allowed: " + ext
		return result
	}

	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension"
		return result
	}

	if detectedMIME == "application/octet-stream" {
		if ext != ".docx" && ext != ".doc" {
			result.Error = "binary files not allowed; file type could not be determined"
			return result
		}
	} else if !strictMIMETypes[detectedMIME] {
		result.Error = "MIME type not allowed: " + detectedMIME
		return result
	}

	result.Valid = true
	return result
}

func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false
	}
	signatures, ok := magicBytes[ext]
	if !ok || len(signatures) == 0 {
		return false
	}
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}
