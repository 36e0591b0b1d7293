package builder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ogsdata/dashgen/pkg/models"
)

// WriteDocument encodes the document as JSON and writes it to path,
// creating parent directories as needed.
func WriteDocument(path string, document models.Document) error {
	data, err := models.EncodeDocument(document)
	if err != nil {
		return fmt.Errorf("encoding dashboard document: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing dashboard document: %w", err)
	}
	return nil
}
