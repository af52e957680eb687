// file: internal/metadata/write.go
// version: 1.0.0
// guid: 9b3c5d7e-2f4a-4b6c-8d0e-1f2a3b4c5d6e

package metadata

import "errors"

// ErrTaglibUnavailable is returned by WriteBasicTags when the binary was
// built without the taglib tag
var ErrTaglibUnavailable = errors.New("taglib support not compiled in (build with -tags taglib)")

// WriteBasicTags sets the title, artist, and album tags on the audio file
// at path. Empty values leave the corresponding tag untouched.
func WriteBasicTags(path, title, artist, album string) error {
	return writeBasicTags(path, title, artist, album)
}
