package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// LoadFile reads a corpus from disk. Files with a .pdf extension have their
// text extracted page by page; everything else is treated as UTF-8 plain
// text.
func LoadFile(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return loadPDF(path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read corpus file: %w", err)
	}
	return string(raw), nil
}

func loadPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			// Pages with broken content streams are skipped rather than
			// failing the whole corpus.
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("no extractable text in pdf %s", path)
	}
	return sb.String(), nil
}
