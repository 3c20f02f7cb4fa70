// internal/app/system/storage/local.go
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local stores objects under a directory on disk and serves them from a URL
// prefix mounted on the router.
type Local struct {
	root      string
	urlPrefix string
}

// NewLocal creates a Local store rooted at dir, served under urlPrefix
// (e.g. "/files/facilities").
func NewLocal(dir, urlPrefix string) *Local {
	return &Local{
		root:      dir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
	}
}

// Root returns the directory objects are written under.
func (l *Local) Root() string { return l.root }

func (l *Local) Put(ctx context.Context, path string, r io.Reader, opts *PutOptions) error {
	full, err := l.GetFullPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("create object file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("write object: %w", err)
	}
	return nil
}

func (l *Local) URL(path string) string {
	return l.urlPrefix + "/" + strings.TrimLeft(filepath.ToSlash(path), "/")
}

// GetFullPath resolves a stored path to an absolute filesystem path,
// rejecting anything that escapes the storage root.
func (l *Local) GetFullPath(path string) (string, error) {
	clean := filepath.Clean("/" + path) // forces the path to be rooted
	full := filepath.Join(l.root, clean)
	if !strings.HasPrefix(full, filepath.Clean(l.root)+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes storage root", path)
	}
	return full, nil
}
