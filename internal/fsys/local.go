package fsys

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// skippedDirs are never descended into by FindAll.
var skippedDirs = map[string]bool{
	".git": true,
	".hg":  true,
	".svn": true,
}

// Local is a FileSystem rooted at a directory on disk.
type Local struct {
	dir     string
	filters []string
}

// NewLocal returns a Local rooted at dir. When filterPaths is non-empty, only
// files matching one of the filters (a glob, or a directory prefix) are
// visible to FindAll.
func NewLocal(dir string, filterPaths []string) (*Local, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("target directory is empty")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve target directory %q: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat target directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("target %q is not a directory", abs)
	}

	var filters []string
	for _, f := range filterPaths {
		f = strings.Trim(filepath.ToSlash(strings.TrimSpace(f)), "/")
		if f == "" || f == "." {
			continue
		}
		if !doublestar.ValidatePattern(f) {
			return nil, fmt.Errorf("invalid filter path %q", f)
		}
		filters = append(filters, f)
	}

	return &Local{dir: abs, filters: filters}, nil
}

func (l *Local) TargetDir() string {
	return l.dir
}

func (l *Local) FindAll(patterns []string, ignoreCase bool) ([]string, error) {
	var cleaned []string
	for _, p := range patterns {
		p = strings.TrimPrefix(filepath.ToSlash(strings.TrimSpace(p)), "./")
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid glob pattern %q", p)
		}
		if ignoreCase {
			p = strings.ToLower(p)
		}
		cleaned = append(cleaned, p)
	}
	if len(cleaned) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{})
	err := fs.WalkDir(os.DirFS(l.dir), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && skippedDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if !l.allowed(p) {
			return nil
		}
		candidate := p
		if ignoreCase {
			candidate = strings.ToLower(p)
		}
		for _, pattern := range cleaned {
			if ok, _ := doublestar.Match(pattern, candidate); ok {
				seen[p] = struct{}{}
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", l.dir, err)
	}

	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

func (l *Local) allowed(p string) bool {
	if len(l.filters) == 0 {
		return true
	}
	for _, f := range l.filters {
		if p == f || strings.HasPrefix(p, f+"/") {
			return true
		}
		if ok, _ := doublestar.Match(f, p); ok {
			return true
		}
	}
	return false
}

func (l *Local) Exists(rel string) bool {
	full, err := l.resolve(rel)
	if err != nil {
		return false
	}
	_, err = os.Stat(full)
	return err == nil
}

func (l *Local) ReadFile(rel string) ([]byte, error) {
	full, err := l.resolve(rel)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(full)
}

func (l *Local) WriteFile(rel string, data []byte) error {
	full, err := l.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create parent directory for %s: %w", rel, err)
	}
	return os.WriteFile(full, data, 0o644)
}

func (l *Local) Remove(rel string) error {
	full, err := l.resolve(rel)
	if err != nil {
		return err
	}
	return os.Remove(full)
}

// resolve maps a repository-relative path to an absolute one, refusing paths
// that would escape the target directory.
func (l *Local) resolve(rel string) (string, error) {
	clean := path.Clean(strings.TrimPrefix(filepath.ToSlash(rel), "./"))
	if clean == "." || clean == "" {
		return "", fmt.Errorf("invalid path %q", rel)
	}
	if !filepath.IsLocal(filepath.FromSlash(clean)) {
		return "", fmt.Errorf("path %q escapes the target directory", rel)
	}
	return filepath.Join(l.dir, filepath.FromSlash(clean)), nil
}
