package filesink

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fernandojoseee/garageonline/internal/invoice/domain"
)

// ErrBadFilename is returned for a document filename that would land
// outside the sink directory.
var ErrBadFilename = errors.New("invoice filename escapes sink directory")

// Sink writes invoice documents under a directory, using the
// document's own filename. Regenerating for the same customer
// overwrites the previous artifact, matching the stable-name contract.
type Sink struct {
	dir string
}

func New(dir string) *Sink {
	return &Sink{dir: dir}
}

func (s *Sink) Save(ctx context.Context, doc domain.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Documents live flat in the sink directory; a filename carrying
	// separators or ".." segments would resolve elsewhere.
	dir := filepath.Clean(s.dir)
	path := filepath.Join(dir, doc.Filename)
	if filepath.Dir(path) != dir {
		return "", fmt.Errorf("%w: %q", ErrBadFilename, doc.Filename)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create invoice dir: %w", err)
	}
	if err := os.WriteFile(path, doc.Body, 0o644); err != nil {
		return "", fmt.Errorf("write invoice: %w", err)
	}
	return path, nil
}
