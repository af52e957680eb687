// file: internal/metadata/write_taglib.go
// version: 1.0.0
// guid: 6d8e0f2a-4b6c-4d8e-9f1a-2b3c4d5e6f7a

//go:build taglib

package metadata

import (
	"fmt"
	"path/filepath"

	taglib "go.senan.xyz/taglib"
)

// writeBasicTags performs native tag writing using TagLib.
func writeBasicTags(path, title, artist, album string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	tags := make(map[string][]string)
	if title != "" {
		tags[taglib.Title] = []string{title}
	}
	if artist != "" {
		tags[taglib.Artist] = []string{artist}
	}
	if album != "" {
		tags[taglib.Album] = []string{album}
	}
	if len(tags) == 0 {
		return fmt.Errorf("no writable tags supplied")
	}

	if err := taglib.WriteTags(abs, tags, 0); err != nil {
		return fmt.Errorf("writing tags to %s: %w", path, err)
	}
	return nil
}
