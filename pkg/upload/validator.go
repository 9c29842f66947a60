package upload

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Magic byte signatures per allowed extension. xlsx is a ZIP container,
// legacy xls is an OLE compound document.
var magicBytes = map[string][][]byte{
	".xlsx": {{0x50, 0x4B, 0x03, 0x04}},
	".xls":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},
}

var allowedMIMETypes = map[string]bool{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.ms-excel":                                          true,
	// xlsx is ZIP-based; some clients report the container type.
	"application/zip": true,
}

// Result contains the outcome of workbook upload validation.
type Result struct {
	Valid     bool
	Extension string
	Error     string
}

// ValidateWorkbook checks an uploaded spreadsheet in three layers:
// extension whitelist, magic bytes matching the extension, and the
// declared MIME type. application/octet-stream is accepted only when
// the magic bytes already proved the content is a real workbook.
func ValidateWorkbook(filename string, data []byte, declaredMIME string) Result {
	ext := strings.ToLower(filepath.Ext(filename))
	result := Result{Extension: ext}

	signatures, ok := magicBytes[ext]
	if !ok {
		result.Error = "only Excel files are allowed (.xlsx, .xls)"
		return result
	}

	if !hasSignature(data, signatures) {
		result.Error = "file content does not match its extension"
		return result
	}

	mime := normalizeMIME(declaredMIME)
	if mime != "" && mime != "application/octet-stream" && !allowedMIMETypes[mime] {
		result.Error = "MIME type not allowed: " + mime
		return result
	}

	result.Valid = true
	return result
}

func hasSignature(data []byte, signatures [][]byte) bool {
	if len(data) < 4 {
		return false
	}
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

func normalizeMIME(mime string) string {
	// Strip parameters like "; charset=..."
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	return strings.ToLower(strings.TrimSpace(mime))
}
