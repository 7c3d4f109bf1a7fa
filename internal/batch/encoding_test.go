package batch

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"htmlconv/internal/logger"
)

func TestReadTextFile_ValidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.html")
	content := "<p>héllo wörld</p>"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadTextFile(path)
	if err != nil {
		t.Fatalf("ReadTextFile() error = %v", err)
	}
	if got != content {
		t.Errorf("ReadTextFile() = %q, want %q", got, content)
	}
}

func TestReadTextFile_DropsUndecodableBytes(t *testing.T) {
	buf := &bytes.Buffer{}
	logger.Init(logger.Options{Output: buf})
	defer logger.Init(logger.Options{})

	path := filepath.Join(t.TempDir(), "bad.html")
	raw := append([]byte("<p>ok"), 0xff, 0xfe)
	raw = append(raw, []byte("still ok</p>")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadTextFile(path)
	if err != nil {
		t.Fatalf("ReadTextFile() error = %v, want fallback instead", err)
	}
	if got != "<p>okstill ok</p>" {
		t.Errorf("ReadTextFile() = %q, want undecodable bytes dropped", got)
	}
	if !strings.Contains(buf.String(), "UTF-8") {
		t.Errorf("expected a decode warning, log output: %q", buf.String())
	}
}

func TestReadTextFile_MissingFile(t *testing.T) {
	if _, err := ReadTextFile(filepath.Join(t.TempDir(), "nope.html")); err == nil {
		t.Fatal("ReadTextFile() expected error for missing file")
	}
}
