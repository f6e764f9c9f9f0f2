package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	exportout "courseforge/internal/modules/export/port/out"
)

// JSONDocumentStore writes pretty-printed JSON export documents.
type JSONDocumentStore struct{}

func NewJSONDocumentStore() exportout.DocumentStore {
	return &JSONDocumentStore{}
}

func (s *JSONDocumentStore) WriteJSON(ctx context.Context, path string, doc any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write document %s: %w", path, err)
	}
	return nil
}
