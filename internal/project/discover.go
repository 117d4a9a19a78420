package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/coregx/coregex"
)

// Matcher decides which files belong to a project.
type Matcher struct {
	extensions []string
	exclude    []*coregex.Regexp
	patterns   []string
}

// NewMatcher compiles the exclude patterns of cfg plus extra ones.
func NewMatcher(cfg FilesConfig, extra ...string) (*Matcher, error) {
	m := &Matcher{extensions: cfg.Extensions}
	for _, p := range append(slices.Clone(cfg.Exclude), extra...) {
		re, err := coregex.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		m.exclude = append(m.exclude, re)
		m.patterns = append(m.patterns, p)
	}
	return m, nil
}

// Excluded reports whether rel, a slash-separated path relative to the
// project root, matches an exclude pattern. It returns the pattern.
func (m *Matcher) Excluded(rel string) (string, bool) {
	for i, re := range m.exclude {
		if re.MatchString(rel) {
			return m.patterns[i], true
		}
	}
	return "", false
}

// HasSourceExt reports whether path has one of the configured extensions.
func (m *Matcher) HasSourceExt(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range m.extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// Discover expands targets into source files. Directories are walked
// recursively; hidden directories are skipped. Files named explicitly are
// kept even when they would be excluded. The result is sorted.
func Discover(root string, targets []string, m *Matcher) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(filepath.Clean(target))
			continue
		}
		err = filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != target && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if !m.HasSourceExt(path) {
				return nil
			}
			if _, excluded := m.Excluded(relTo(root, path)); excluded {
				return nil
			}
			add(filepath.Clean(path))
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(out)
	return out, nil
}

func relTo(root, path string) string {
	if root != "" {
		absRoot, err1 := filepath.Abs(root)
		absPath, err2 := filepath.Abs(path)
		if err1 == nil && err2 == nil {
			if rel, err := filepath.Rel(absRoot, absPath); err == nil && !strings.HasPrefix(rel, "..") {
				return filepath.ToSlash(rel)
			}
		}
	}
	return filepath.ToSlash(path)
}
