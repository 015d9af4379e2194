// Package listing produces the package file listing the resolver works
// on: package-relative, "/"-separated paths in a stable order.
package listing

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/arthur-debert/assetsel/pkg/errors"
	"github.com/arthur-debert/assetsel/pkg/logging"
)

// Normalize converts a path to the listing form: forward slashes, no
// leading "./" or "/", surrounding space trimmed.
func Normalize(path string) string {
	p := strings.TrimSpace(path)
	p = strings.ReplaceAll(p, "\\", "/")
	for {
		switch {
		case strings.HasPrefix(p, "./"):
			p = p[2:]
		case strings.HasPrefix(p, "/"):
			p = p[1:]
		default:
			return p
		}
	}
}

// Read reads one path per line. Blank lines and lines starting with "#"
// are skipped, duplicates are dropped and order is kept. filter may be nil.
func Read(r io.Reader, filter *Filter) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p := Normalize(line)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrListingRead, "failed to read listing")
	}

	return filter.Apply(paths), nil
}

// ReadFile reads a listing file
func ReadFile(path string, filter *Filter) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrListingRead, "failed to open listing %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	return Read(f, filter)
}

// Walk lists the regular files of fsys in lexical order. Excluded
// directories are not descended into.
func Walk(fsys fs.FS, filter *Filter) ([]string, error) {
	logger := logging.GetLogger("listing")

	var paths []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." {
			return nil
		}
		if d.IsDir() {
			if filter.Excluded(path) {
				logger.Trace().Str("dir", path).Msg("Skipping excluded directory")
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || filter.Excluded(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrListingRead, "failed to walk package tree")
	}

	logger.Debug().Int("files", len(paths)).Msg("Package tree listed")
	return paths, nil
}

// WalkDir lists the regular files below dir
func WalkDir(dir string, filter *Filter) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrListingRead, "failed to stat %s", dir).
			WithDetail("path", dir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrListingRead, "%s is not a directory", dir).
			WithDetail("path", dir)
	}
	return Walk(os.DirFS(dir), filter)
}
