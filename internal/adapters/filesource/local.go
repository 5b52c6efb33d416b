package filesource

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sk9212k/opaltech-aws/internal/core/domain"
)

// Local is a file on the local disk, sized when it was picked
type Local struct {
	path string
	name string
	size int64
}

// NewLocal stats path and returns it as an upload source
func NewLocal(path string) (*Local, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	return &Local{
		path: path,
		name: filepath.Base(path),
		size: info.Size(),
	}, nil
}

func (l *Local) Name() string {
	return l.name
}

func (l *Local) Size() int64 {
	return l.size
}

func (l *Local) Open() (io.ReadCloser, error) {
	return os.Open(l.path)
}

// FromPaths builds sources for every path. Paths that cannot be read are
// returned separately so the caller can report them.
func FromPaths(paths []string) ([]domain.FileSource, map[string]error) {
	sources := make([]domain.FileSource, 0, len(paths))
	failed := make(map[string]error)
	for _, path := range paths {
		src, err := NewLocal(path)
		if err != nil {
			failed[path] = err
			continue
		}
		sources = append(sources, src)
	}
	return sources, failed
}
