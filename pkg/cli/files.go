package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/getfolio/folio/pkg/portfolio"
)

// readImage loads a file to attach to an image-bearing draft.
func readImage(path string) (*portfolio.ImageFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return &portfolio.ImageFile{Name: filepath.Base(path), Data: data}, nil
}

// joinMax joins up to n items, appending an ellipsis when truncated.
func joinMax(items []string, n int) string {
	if len(items) <= n {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:n], ", ") + ", ..."
}
