package snippet

import (
	"io/fs"
	"log"
	"sort"

	"braces.dev/errtrace"
	"github.com/gobwas/glob"
)

// Lister produces the full set of snippet resources for a build.
type Lister interface {
	ListResources() ([]Resource, error)
}

var _ Lister = (*FS)(nil)

// DefaultPattern matches every file at the top level of a directory.
const DefaultPattern = "*"

// FS lists snippets from a file system.
//
// All matching files are read eagerly.
// Symbolic links to files are followed;
// links to directories are not descended into.
// Resources are returned sorted by ID.
type FS struct {
	// FS is the file system to search. Required.
	FS fs.FS

	// Pattern selects which files are snippets.
	// It is matched against slash-separated paths relative to the root,
	// with "*" not crossing "/" and "**" crossing it.
	//
	// Defaults to DefaultPattern.
	Pattern string

	// DebugLog receives a message for each file considered.
	//
	// Use nil to disable debug logging.
	DebugLog *log.Logger
}

// ListResources walks the file system
// and returns every regular file matching the pattern.
//
// Errors from the underlying file system are returned as-is,
// so callers may match them with errors.Is.
func (f *FS) ListResources() ([]Resource, error) {
	pattern := f.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}

	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, errtrace.Errorf("bad snippet pattern %q: %w", pattern, err)
	}

	var resources []Resource
	err = fs.WalkDir(f.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type()&fs.ModeSymlink != 0 {
			info, err := fs.Stat(f.FS, path)
			if err != nil {
				return err
			}
			if !info.Mode().IsRegular() {
				f.debugf("Skipping %v: link to a non-file", path)
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}
		if !g.Match(path) {
			f.debugf("Skipping %v: does not match %q", path, pattern)
			return nil
		}

		body, err := fs.ReadFile(f.FS, path)
		if err != nil {
			return err
		}

		f.debugf("Found snippet %v", path)
		resources = append(resources, Resource{
			ID:      path,
			Content: string(body),
		})
		return nil
	})
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	sort.Slice(resources, func(i, j int) bool {
		return resources[i].ID < resources[j].ID
	})
	return resources, nil
}

func (f *FS) debugf(format string, args ...any) {
	if f.DebugLog != nil {
		f.DebugLog.Printf(format, args...)
	}
}
