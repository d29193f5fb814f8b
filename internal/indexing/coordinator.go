package indexing

import (
	"context"

	"github.com/standardbeagle/searchidx/internal/pathindex"
)

// coordinate is the single thread that converts walker paths into dense
// file-ids. It is the only writer of the path registry -- workers never
// touch it, they receive an already-assigned file_id. Sequential
// registration here is what keeps file-ids dense and reproducible
// regardless of worker completion order.
func coordinate(ctx context.Context, reg *pathindex.Registry, paths <-chan string, tasks chan<- fileTask) error {
	defer close(tasks)

	for path := range paths {
		id := reg.Register(path)
		select {
		case tasks <- fileTask{id: id, path: path}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
