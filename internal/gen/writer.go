package gen

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes generated files under outputDir, creating it if needed.
// Each file is run through goimports before writing so stale imports from
// template edits never reach the tree.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		content, err := imports.Process(outputPath, file.Content, nil)
		if err != nil {
			return fmt.Errorf("formatting %s: %w", file.Filename, err)
		}

		err = os.WriteFile(outputPath, content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}
