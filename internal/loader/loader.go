// Package loader converts a profile document into a single flat text string,
// preserving nested list structure as indented bullet lines so that the
// chunker and the language model see the document the way a reader would.
package loader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"

	"richbot/internal/models"
)

// Load reads a document from disk and flattens it to text.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrDocumentLoad, err)
	}
	return LoadBytes(path, data)
}

// LoadBytes flattens an in-memory document. The name is only used to pick
// the format by extension; uploads pass the original filename through.
func LoadBytes(name string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	var (
		text string
		err  error
	)
	switch ext {
	case ".docx":
		text, err = flattenDocx(data)
	case ".pdf":
		text, err = flattenPDF(data)
	case ".txt":
		text = string(data)
	default:
		return "", fmt.Errorf("%w: unsupported file format %q", models.ErrDocumentLoad, ext)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrDocumentLoad, err)
	}
	log.Debug().Str("name", name).Int("bytes", len(data)).Msg("document flattened")
	return text, nil
}

func flattenPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		pageText, err := reader.Page(i).GetPlainText(nil)
		if err != nil {
			return "", err
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
