// file: internal/organizer/stats.go
// version: 1.0.0
// guid: 0d2e4f6a-8b0c-4d2e-9f1a-3b5c7d9e0f1a

package organizer

import (
	"fmt"
	"os"
	"path/filepath"
)

// AggregateExtensions counts the immediate entries of dir by file
// extension. Entries without an extension are grouped under "".
func AggregateExtensions(dir string) (map[string]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	counts := make(map[string]int)
	for _, entry := range entries {
		counts[filepath.Ext(entry.Name())]++
	}
	return counts, nil
}
