// file: internal/repair/repair.go
// version: 1.0.0
// guid: 7f9a1b3c-5d7e-4f9a-8b0c-2d4e6f8a0b1c

package repair

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jdfalk/music-unflattener/internal/organizer"
)

// Repair walks the two-level artist/album tree under rootDir and appends
// the audio extension to every track file that lacks it. In a dry run the
// old/new pair is only reported. No collision check is performed; this
// fixes a known one-time mistake, it is not a general-purpose tool.
func Repair(rootDir string, dryRun bool) error {
	artists, err := os.ReadDir(rootDir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", rootDir, err)
	}

	for _, artist := range artists {
		if !artist.IsDir() {
			continue
		}
		artistDir := filepath.Join(rootDir, artist.Name())

		albums, err := os.ReadDir(artistDir)
		if err != nil {
			return fmt.Errorf("reading %s: %w", artistDir, err)
		}

		for _, album := range albums {
			if !album.IsDir() {
				continue
			}
			albumDir := filepath.Join(artistDir, album.Name())

			tracks, err := os.ReadDir(albumDir)
			if err != nil {
				return fmt.Errorf("reading %s: %w", albumDir, err)
			}

			for _, track := range tracks {
				if organizer.IsAudioFile(track.Name()) {
					continue
				}
				old := filepath.Join(albumDir, track.Name())
				renamed := old + organizer.AudioExt
				log.Printf("[INFO] old: %s", old)
				log.Printf("[INFO] new: %s", renamed)
				if !dryRun {
					if err := os.Rename(old, renamed); err != nil {
						return fmt.Errorf("renaming %s: %w", old, err)
					}
				}
			}
		}
	}
	return nil
}
