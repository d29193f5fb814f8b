package indexing

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/standardbeagle/searchidx/internal/config"
	"github.com/standardbeagle/searchidx/internal/errors"
)

// walk traverses cfg.Root and pushes every accepted file path onto paths.
// It is the pipeline's sole producer; it closes paths on return, so the
// coordinator's range loop terminates naturally whether walk finished
// cleanly or was cut short by ctx cancellation.
//
// paths is bounded, as are the tasks and results channels downstream (all
// sized in Build in pipeline.go): a slow coordinator, worker, or merger
// stage fills them in turn and makes WalkDir block on the send below.
func walk(ctx context.Context, cfg *config.Config, f *filter, paths chan<- string) error {
	defer close(paths)

	err := filepath.WalkDir(cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsPermission(err) {
				log.Printf("skipping unreadable entry %s: %v", path, err)
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			return err
		}

		if d.IsDir() {
			if path != cfg.Root && f.excludeDir(path) {
				return filepath.SkipDir
			}
			return nil
		}

		if !cfg.FollowSymlinks && d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			log.Printf("skipping %s: stat failed: %v", path, err)
			return nil
		}
		if !f.acceptFile(path, info) {
			return nil
		}

		select {
		case paths <- path:
		case <-ctx.Done():
			return ctx.Err()
		}
		return nil
	})

	if err != nil {
		return errors.Wrap(errors.KindWalkDir, "directory walk failed", err).WithPath(cfg.Root)
	}
	return nil
}
