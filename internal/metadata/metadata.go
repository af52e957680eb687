// file: internal/metadata/metadata.go
// version: 1.1.0
// guid: 7c2d9e4f-1a5b-4c8d-9e0f-3b6a7c8d9e1f

package metadata

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dhowden/tag"

	"github.com/jdfalk/music-unflattener/internal/config"
)

// Tag keys used for placement
const (
	KeyArtist = "artist"
	KeyAlbum  = "album"
	KeyTitle  = "title"
)

// ErrMissingArtist indicates the required artist tag is absent
var ErrMissingArtist = errors.New("artist tag missing")

// Tags holds the placement-relevant metadata of a single audio file as an
// explicit key/value mapping. Absent keys are simply not present in the map.
type Tags struct {
	Path   string
	fields map[string]string
}

// NewTags builds a Tags value from an already-populated mapping
func NewTags(path string, fields map[string]string) *Tags {
	if fields == nil {
		fields = make(map[string]string)
	}
	return &Tags{Path: path, fields: fields}
}

// Extract reads the placement-relevant tags from the audio file at path.
// Files the tag library cannot parse return an error; the caller treats
// that as fatal for this file only.
func Extract(path string) (*Tags, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("reading tags from %s: %w", path, err)
	}

	fields := make(map[string]string)
	if v := m.Artist(); v != "" {
		fields[KeyArtist] = v
	}
	if v := m.Album(); v != "" {
		fields[KeyAlbum] = v
	}
	if v := m.Title(); v != "" {
		fields[KeyTitle] = v
	}
	return &Tags{Path: path, fields: fields}, nil
}

// Optional returns the sanitized value for key, or "" when the key is
// absent. Absence is not an error for optional tags.
func (t *Tags) Optional(key string) string {
	v, ok := t.fields[key]
	if !ok {
		if config.AppConfig.Verbose {
			log.Printf("[DEBUG] %s is missing key: %s", t.Path, key)
		}
		return ""
	}
	return SanitizeSegment(v)
}

// Required returns the sanitized value for key, or ErrMissingArtist when
// absent. The artist tag is the only required one.
func (t *Tags) Required(key string) (string, error) {
	v, ok := t.fields[key]
	if !ok {
		return "", fmt.Errorf("%s: %w", t.Path, ErrMissingArtist)
	}
	return SanitizeSegment(v), nil
}
