// file: internal/organizer/plan.go
// version: 1.0.0
// guid: 8e1f3a5b-7c9d-4e1f-a3b5-c7d9e0f1a2b3

package organizer

import (
	"path/filepath"
	"strings"

	"github.com/jdfalk/music-unflattener/internal/metadata"
)

// AudioExt is the single audio container this tool organizes
const AudioExt = ".mp3"

// ImageExt marks sidecar files that are counted but never moved
const ImageExt = ".jpg"

// UnknownAlbum is substituted when a track carries no album tag
const UnknownAlbum = "Unknown Album"

// Target is the computed destination for one track. It is derived from the
// tags every time, never stored.
type Target struct {
	ArtistDir string
	AlbumDir  string
	Path      string
}

// Plan derives the Artist/Album/Track destination under destRoot from the
// file's tags. Pure computation, no filesystem access. Fails with
// metadata.ErrMissingArtist when the artist tag is absent.
func Plan(tags *metadata.Tags, destRoot string) (Target, error) {
	artist, err := tags.Required(metadata.KeyArtist)
	if err != nil {
		return Target{}, err
	}

	album := tags.Optional(metadata.KeyAlbum)
	if album == "" {
		album = UnknownAlbum
	}
	// Malformed tags sometimes leak the file extension into the album title.
	album = strings.ReplaceAll(album, AudioExt, "")

	// May be empty; that yields a bare ".mp3" filename, which is accepted.
	title := tags.Optional(metadata.KeyTitle)

	artistDir := filepath.Join(destRoot, artist)
	albumDir := filepath.Join(artistDir, album)
	return Target{
		ArtistDir: artistDir,
		AlbumDir:  albumDir,
		Path:      filepath.Join(albumDir, title+AudioExt),
	}, nil
}

// IsAudioFile reports whether name carries the audio extension.
func IsAudioFile(name string) bool {
	return strings.HasSuffix(name, AudioExt)
}

// IsImageFile reports whether name carries the image sidecar extension.
func IsImageFile(name string) bool {
	return strings.HasSuffix(name, ImageExt)
}
