// file: internal/metadata/write_test.go
// version: 1.0.0
// guid: 5e7f9a1b-3c4d-4e5f-8a9b-0c1d2e3f4a5b

//go:build !taglib

package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteBasicTags_WithoutTaglib(t *testing.T) {
	err := WriteBasicTags("/music/track.mp3", "Title", "Artist", "Album")
	assert.ErrorIs(t, err, ErrTaglibUnavailable)
}
