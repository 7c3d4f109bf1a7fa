package batch

import (
	"os"
	"strings"
	"unicode/utf8"

	"htmlconv/internal/logger"
)

// ReadTextFile reads path as UTF-8 text. When the file is not valid UTF-8
// the undecodable bytes are dropped instead of failing the file, and a
// warning is logged. Output files are always written back as UTF-8.
func ReadTextFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		logger.Warn("input is not valid UTF-8, dropping undecodable bytes", "path", path)
		return strings.ToValidUTF8(string(raw), ""), nil
	}
	return string(raw), nil
}
