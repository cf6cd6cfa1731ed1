package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// TTMLDocument renders a minimal namespaced TTML document with one paragraph
// per entry of texts, each four seconds after the previous.
func TTMLDocument(texts ...string) string {
	body := ""
	for i, text := range texts {
		body += fmt.Sprintf("    <p begin=\"%d.0s\">%s</p>\n", i*4, text)
	}
	return "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
		"<tt xmlns=\"http://www.w3.org/ns/ttml\">\n  <body>\n    <div>\n" +
		body +
		"    </div>\n  </body>\n</tt>\n"
}

// WriteTranscript places a TTML document at root/segments.../name.ttml and
// returns its path.
func WriteTranscript(t testing.TB, root string, segments []string, name, content string) string {
	t.Helper()

	dir := filepath.Join(append([]string{root}, segments...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name+".ttml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
