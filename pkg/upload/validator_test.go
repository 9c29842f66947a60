package upload_test

import (
	"testing"

	"github.com/Larissacdias1/scib-candidates-platform/pkg/upload"

	"github.com/stretchr/testify/assert"
)

var (
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04, 0x00, 0x00}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

func TestValidateWorkbook(t *testing.T) {
	t.Run("xlsx with spreadsheet MIME", func(t *testing.T) {
		result := upload.ValidateWorkbook("candidate.xlsx", zipMagic,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		assert.True(t, result.Valid)
	})

	t.Run("legacy xls", func(t *testing.T) {
		result := upload.ValidateWorkbook("candidate.xls", oleMagic, "application/vnd.ms-excel")
		assert.True(t, result.Valid)
	})

	t.Run("octet-stream allowed when magic bytes prove a workbook", func(t *testing.T) {
		result := upload.ValidateWorkbook("candidate.xlsx", zipMagic, "application/octet-stream")
		assert.True(t, result.Valid)
	})

	t.Run("extension outside the whitelist", func(t *testing.T) {
		result := upload.ValidateWorkbook("candidate.csv", zipMagic, "text/csv")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "only Excel files")
	})

	t.Run("content does not match extension", func(t *testing.T) {
		result := upload.ValidateWorkbook("candidate.xlsx", []byte("plain text pretending"), "application/vnd.ms-excel")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "does not match")
	})

	t.Run("disallowed MIME type", func(t *testing.T) {
		result := upload.ValidateWorkbook("candidate.xlsx", zipMagic, "text/html")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "MIME type not allowed")
	})

	t.Run("MIME parameters are ignored", func(t *testing.T) {
		result := upload.ValidateWorkbook("candidate.xlsx", zipMagic,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet; charset=UTF-8")
		assert.True(t, result.Valid)
	})

	t.Run("truncated file", func(t *testing.T) {
		result := upload.ValidateWorkbook("candidate.xlsx", []byte{0x50}, "application/zip")
		assert.False(t, result.Valid)
	})
}
