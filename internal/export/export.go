package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"
)

const baseName = "pr-workflow-data"

// FileName builds the download file name. A non-empty project name is
// slugified into the stem; otherwise the stock name is used.
func FileName(projectName, ext string) string {
	if s := slug.Make(projectName); s != "" {
		return fmt.Sprintf("%s-%s.%s", baseName, s, ext)
	}
	return fmt.Sprintf("%s.%s", baseName, ext)
}

// WriteFile writes data under dir with the given name and returns the
// full path.
func WriteFile(dir, name string, data []byte) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating export directory: %w", err)
		}
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
