// file: internal/organizer/unflatten.go
// version: 1.0.0
// guid: 5c7d9e1f-0a2b-4c5d-8e9f-1a2b3c4d5e6f

package organizer

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/jdfalk/music-unflattener/internal/metadata"
)

// ensureDir creates path if it does not exist. Single-level create: the
// parent must already exist. Idempotent, "already exists" is not an error.
func ensureDir(path string) error {
	err := os.Mkdir(path, 0755)
	if err == nil || errors.Is(err, fs.ErrExist) {
		return nil
	}
	return fmt.Errorf("creating %s: %w", path, err)
}

// Unflatten moves the file at sourcePath into its Artist/Album slot under
// destRoot. Returns true when the file was moved (or would be, in a dry
// run), false when the destination already exists. Never overwrites: the
// existence check makes re-running over an already-organized tree a no-op.
//
// If directory creation succeeds but the rename fails, the created empty
// directories are left behind; a later successful run reuses them.
func Unflatten(tags *metadata.Tags, sourcePath, destRoot string, dryRun bool) (bool, error) {
	target, err := Plan(tags, destRoot)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(target.Path); err == nil {
		log.Printf("[INFO] file exists: %s", target.Path)
		return false, nil
	}

	if !dryRun {
		if err := ensureDir(target.ArtistDir); err != nil {
			return false, err
		}
		if err := ensureDir(target.AlbumDir); err != nil {
			return false, err
		}
		if err := os.Rename(sourcePath, target.Path); err != nil {
			return false, fmt.Errorf("moving %s: %w", sourcePath, err)
		}
	}
	return true, nil
}
