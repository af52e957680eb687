// file: internal/organizer/run.go
// version: 1.0.0
// guid: 3a5b7c9d-1e2f-4a3b-9c8d-7e6f5a4b3c2d

package organizer

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/jdfalk/music-unflattener/internal/metadata"
)

// Summary aggregates the outcome of one unflatten pass. Created fresh per
// run and only logged at the end.
type Summary struct {
	Total   int
	Moved   int
	Images  int
	Skipped int
	Errors  int
}

// Runner drives one batch pass over a flat source directory.
type Runner struct {
	SourceDir string
	DestRoot  string
	DryRun    bool
	// Extract parses the tags of one file. Defaults to metadata.Extract.
	Extract func(path string) (*metadata.Tags, error)
}

// NewRunner returns a Runner that unflattens sourceDir into destRoot.
func NewRunner(sourceDir, destRoot string, dryRun bool) *Runner {
	return &Runner{
		SourceDir: sourceDir,
		DestRoot:  destRoot,
		DryRun:    dryRun,
		Extract:   metadata.Extract,
	}
}

// Run enumerates the immediate entries of the source directory and moves
// every audio file into its Artist/Album slot. Image sidecars are counted
// but never moved; everything else is ignored. A single file's failure is
// logged and counted, never aborts the batch.
func (r *Runner) Run() (*Summary, error) {
	entries, err := os.ReadDir(r.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", r.SourceDir, err)
	}

	log.Printf("[INFO] unflattening %s (%d entries, dry run: %v)", r.SourceDir, len(entries), r.DryRun)
	sum := &Summary{Total: len(entries)}
	bar := progressbar.Default(int64(len(entries)))

	for _, entry := range entries {
		name := entry.Name()
		switch {
		case IsAudioFile(name):
			r.handleTrack(name, sum)
		case IsImageFile(name):
			sum.Images++
		}
		bar.Add(1)
	}

	log.Printf("[INFO] finished: total=%d moved=%d images=%d existing=%d errors=%d",
		sum.Total, sum.Moved, sum.Images, sum.Skipped, sum.Errors)
	return sum, nil
}

func (r *Runner) handleTrack(name string, sum *Summary) {
	path := filepath.Join(r.SourceDir, name)

	tags, err := r.Extract(path)
	if err != nil {
		log.Printf("[ERROR] error with %s: %v", name, err)
		sum.Errors++
		return
	}

	moved, err := Unflatten(tags, path, r.DestRoot, r.DryRun)
	if err != nil {
		log.Printf("[ERROR] error with %s: %v", name, err)
		sum.Errors++
		return
	}
	if moved {
		sum.Moved++
	} else {
		sum.Skipped++
	}
}
