package diagfmt

import (
	"path/filepath"

	"lunar/internal/source"
)

// PathMode controls how file names appear in rendered diagnostics.
type PathMode uint8

const (
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative // to the file set's base directory
	PathModeBasename
)

var pathModeNames = [...]string{"auto", "absolute", "relative", "basename"}

func (m PathMode) String() string {
	if int(m) < len(pathModeNames) {
		return pathModeNames[m]
	}
	return "auto"
}

// ParsePathMode maps a flag value to a PathMode. Empty means auto.
func ParsePathMode(s string) (PathMode, bool) {
	if s == "" {
		return PathModeAuto, true
	}
	for i, name := range pathModeNames {
		if s == name {
			return PathMode(i), true
		}
	}
	return PathModeAuto, false
}

// autoPathLimit is the longest absolute path auto mode prints in full.
const autoPathLimit = 40

func (m PathMode) path(f *source.File, fs *source.FileSet) string {
	switch m {
	case PathModeAbsolute:
		return f.Abs()
	case PathModeRelative:
		return f.RelTo(fs.BaseDir())
	case PathModeBasename:
		return f.Base()
	}
	if len(f.Path) < autoPathLimit || !filepath.IsAbs(filepath.FromSlash(f.Path)) {
		return f.Path
	}
	return f.Base()
}

// PrettyOpts configures Pretty.
type PrettyOpts struct {
	Color     bool
	Context   int8 // source lines shown around the primary line
	PathMode  PathMode
	Width     uint8 // truncate source lines to this many columns; 0 keeps them whole
	ShowNotes bool
}

// JSONOpts configures JSON and BuildDiagnosticsOutput.
type JSONOpts struct {
	IncludePositions bool
	IncludeNotes     bool
	PathMode         PathMode
	Max              int // caps the emitted list; the bag is untouched
}

// SarifRunMeta describes the tool invocation recorded in a SARIF run.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InvocationArgs []string
}
