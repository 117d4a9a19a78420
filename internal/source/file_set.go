package source

import (
	"crypto/sha256"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
)

// FileSet owns every source text of a run. Adding the same path again
// creates a new version with a new FileID; old IDs stay valid.
type FileSet struct {
	mu      sync.RWMutex
	files   []*File
	latest  map[string]FileID
	baseDir string
}

func NewFileSet() *FileSet {
	return &FileSet{latest: map[string]FileID{}}
}

// NewFileSetWithBase returns a set whose relative paths are shown from
// baseDir.
func NewFileSetWithBase(baseDir string) *FileSet {
	fs := NewFileSet()
	fs.baseDir = baseDir
	return fs
}

func (fs *FileSet) SetBaseDir(dir string) { fs.baseDir = dir }

// BaseDir is the display root; the working directory when unset.
func (fs *FileSet) BaseDir() string {
	if fs.baseDir != "" {
		return fs.baseDir
	}
	wd, _ := os.Getwd()
	return wd
}

// Add stores content under path and returns the new version's ID. It
// panics past 4 GiB, which offsets cannot address.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	if uint64(len(content)) > math.MaxUint32 {
		panic(fmt.Sprintf("source: %s is too large (%d bytes)", path, len(content)))
	}
	f := &File{
		Path:     filepath.ToSlash(filepath.Clean(path)),
		Content:  content,
		Hash:     sha256.Sum256(content),
		Flags:    flags,
		newlines: indexNewlines(content),
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if uint64(len(fs.files)) >= math.MaxUint32 {
		panic("source: file set is full")
	}
	f.ID = FileID(len(fs.files)) //nolint:gosec // checked above
	fs.files = append(fs.files, f)
	fs.latest[f.Path] = f.ID
	return f.ID
}

// AddVirtual stores an in-memory text.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// Load reads path from disk. BOM-marked UTF-16 is transcoded to UTF-8;
// anything else is stored byte for byte.
func (fs *FileSet) Load(path string) (FileID, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- caller-chosen input
	if err != nil {
		return 0, err
	}
	content, wide, err := decodeUTF16(content)
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", path, err)
	}
	var flags FileFlags
	if wide {
		flags = FileTranscoded
	}
	return fs.Add(path, content, flags), nil
}

// Get returns the file with the given ID. The ID must come from this set.
func (fs *FileSet) Get(id FileID) *File {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.files[id]
}

// Len is the number of stored versions.
func (fs *FileSet) Len() int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return len(fs.files)
}

// GetLatest returns the newest version stored under path.
func (fs *FileSet) GetLatest(path string) (FileID, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	id, ok := fs.latest[filepath.ToSlash(filepath.Clean(path))]
	return id, ok
}

// Resolve maps both ends of span to line and column.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.Get(span.File)
	return f.Locate(span.Start), f.Locate(span.End)
}
